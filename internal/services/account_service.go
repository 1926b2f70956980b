package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"cityinfo/internal/models/db_models"
	"cityinfo/internal/models/request_models"
	"cityinfo/internal/models/response_models"
	"cityinfo/internal/repositories"
	"cityinfo/pkg/utils"
)

type AccountServiceInterface interface {
	Authenticate(ctx context.Context, request request_models.AuthenticationRequest) (response_models.TokenResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
}

// dummyPasswordHash is compared against when the user name is unknown, so a
// failed login costs one bcrypt comparison whether or not the account exists.
var dummyPasswordHash = sync.OnceValue(func() string {
	hash, err := utils.HashPassword("cityinfo-unknown-account")
	if err != nil {
		panic(fmt.Sprintf("hash dummy password: %v", err))
	}
	return hash
})

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenService
	validate    *validator.Validate
	lggr        *zap.SugaredLogger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenService, lggr *zap.SugaredLogger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		validate:    validator.New(),
		lggr:        lggr.Named("accounts"),
	}
}

func (a *AccountService) Authenticate(ctx context.Context, request request_models.AuthenticationRequest) (response_models.TokenResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByUserName(ctx, request.UserName)
	if err != nil {
		a.lggr.Errorw("Failed to look up account", "user_name", request.UserName, "error", err)
		return response_models.TokenResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		_ = utils.ComparePasswords(dummyPasswordHash(), request.Password)
		a.lggr.Infow("Authentication failed: unknown user", "user_name", request.UserName)
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		a.lggr.Infow("Authentication failed: wrong password", "user_name", request.UserName)
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.CreateToken(utils.TokenSubject{
		AccountID:  account.ID,
		GivenName:  account.FirstName,
		FamilyName: account.LastName,
		City:       account.City,
	})
	if err != nil {
		return response_models.TokenResponse{}, err
	}

	a.lggr.Debugw("Token issued", "user_name", request.UserName, "took", time.Since(startTime))
	return response_models.TokenResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	if err := a.validate.Struct(request); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}

	existingAccount, err := a.accountRepo.FindByUserName(ctx, request.UserName)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existingAccount != nil {
		return utils.ErrAccountExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return err
	}

	newAccount := &db_models.Account{
		UserName:     request.UserName,
		PasswordHash: hashedPassword,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		City:         request.City,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	a.lggr.Infow("Account created", "user_name", newAccount.UserName, "account_id", newAccount.ID)
	return nil
}
