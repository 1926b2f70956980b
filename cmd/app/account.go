package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cityinfo/internal/config"
	"cityinfo/internal/infra"
	"cityinfo/internal/models/request_models"
	"cityinfo/internal/repositories"
	"cityinfo/internal/services"
	"cityinfo/pkg/logger"
	"cityinfo/pkg/utils"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage API accounts",
	}
	cmd.AddCommand(newAccountAddCmd())
	return cmd
}

func newAccountAddCmd() *cobra.Command {
	var req request_models.SignUpRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account that can request bearer tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			lggr, err := logger.New(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			db, err := infra.OpenDatabase(cfg.Database, lggr)
			if err != nil {
				return err
			}
			defer infra.CloseDatabase(db, lggr)

			if err := infra.Migrate(db, cfg.Database.Driver); err != nil {
				return err
			}

			tokens, err := utils.NewTokenService(utils.JWTConfig{
				Secret:   cfg.Auth.Secret,
				Issuer:   cfg.Auth.Issuer,
				Audience: cfg.Auth.Audience,
				Lifetime: cfg.Auth.TokenLifetime,
			})
			if err != nil {
				return err
			}

			svc := services.NewAccountService(repositories.NewAccountRepository(db), tokens, lggr)
			if err := svc.CreateAccount(cmd.Context(), req); err != nil {
				return fmt.Errorf("create account %q: %w", req.UserName, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "account %s created for city %s\n", req.UserName, req.City)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.UserName, "user", "", "user name")
	flags.StringVar(&req.Password, "password", "", "password, at least 8 characters")
	flags.StringVar(&req.City, "city", "", "city claim carried by issued tokens")
	flags.StringVar(&req.FirstName, "first-name", "", "given name")
	flags.StringVar(&req.LastName, "last-name", "", "family name")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}
