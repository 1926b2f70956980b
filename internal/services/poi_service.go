package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"cityinfo/internal/models/db_models"
	"cityinfo/internal/models/request_models"
	"cityinfo/internal/models/response_models"
	"cityinfo/internal/repositories"
	"cityinfo/pkg/utils"
)

type POIServiceInterface interface {
	// ListPointsOfInterest returns the points of interest of a city. cityClaim
	// is the caller's city and must name the requested city.
	ListPointsOfInterest(ctx context.Context, cityID int, cityClaim string) ([]response_models.PointOfInterest, error)
	GetPointOfInterest(ctx context.Context, cityID, poiID int) (response_models.PointOfInterest, error)
	CreatePointOfInterest(ctx context.Context, cityID int, req request_models.PointOfInterestForCreation) (response_models.PointOfInterest, error)
	UpdatePointOfInterest(ctx context.Context, cityID, poiID int, req request_models.PointOfInterestForUpdate) error
	// PatchPointOfInterest applies an RFC 6902 document to the updatable
	// representation of a point of interest.
	PatchPointOfInterest(ctx context.Context, cityID, poiID int, patch []byte) error
	DeletePointOfInterest(ctx context.Context, cityID, poiID int) error
}

type PoiService struct {
	repo     repositories.CityInfoRepository
	mail     IMailService
	validate *validator.Validate
	lggr     *zap.SugaredLogger
}

func NewPoiService(repo repositories.CityInfoRepository, mail IMailService, lggr *zap.SugaredLogger) POIServiceInterface {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &PoiService{
		repo:     repo,
		mail:     mail,
		validate: v,
		lggr:     lggr.Named("pois"),
	}
}

func (p *PoiService) dbError(msg string, err error, keysAndValues ...interface{}) error {
	p.lggr.Errorw(msg, append(keysAndValues, "error", err)...)
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}

func (p *PoiService) ensureCityExists(ctx context.Context, cityID int) error {
	exists, err := p.repo.CityExists(ctx, cityID)
	if err != nil {
		return p.dbError("Failed to check city", err, "city_id", cityID)
	}
	if !exists {
		p.lggr.Infow("City not found when accessing points of interest", "city_id", cityID)
		return utils.ErrCityNotFound
	}
	return nil
}

// findPointOfInterest loads a point of interest scoped to its city.
func (p *PoiService) findPointOfInterest(ctx context.Context, cityID, poiID int) (*db_models.PointOfInterest, error) {
	if err := p.ensureCityExists(ctx, cityID); err != nil {
		return nil, err
	}
	poi, err := p.repo.GetPointOfInterestForCity(ctx, cityID, poiID)
	if err != nil {
		return nil, p.dbError("Failed to get point of interest", err, "city_id", cityID, "poi_id", poiID)
	}
	if poi == nil {
		return nil, utils.ErrPointOfInterestNotFound
	}
	return poi, nil
}

func (p *PoiService) ListPointsOfInterest(ctx context.Context, cityID int, cityClaim string) ([]response_models.PointOfInterest, error) {
	if err := p.ensureCityExists(ctx, cityID); err != nil {
		return nil, err
	}

	matches, err := p.repo.CityNameMatchesCityID(ctx, cityClaim, cityID)
	if err != nil {
		return nil, p.dbError("Failed to check city claim", err, "city_id", cityID)
	}
	if !matches {
		p.lggr.Warnw("City claim does not match requested city", "city_id", cityID, "city_claim", cityClaim)
		return nil, utils.ErrCityAccessDenied
	}

	pois, err := p.repo.GetPointsOfInterestForCity(ctx, cityID)
	if err != nil {
		return nil, p.dbError("Failed to list points of interest", err, "city_id", cityID)
	}
	return toPointOfInterestResponses(pois), nil
}

func (p *PoiService) GetPointOfInterest(ctx context.Context, cityID, poiID int) (response_models.PointOfInterest, error) {
	poi, err := p.findPointOfInterest(ctx, cityID, poiID)
	if err != nil {
		return response_models.PointOfInterest{}, err
	}
	return toPointOfInterestResponse(*poi), nil
}

func (p *PoiService) CreatePointOfInterest(ctx context.Context, cityID int, req request_models.PointOfInterestForCreation) (response_models.PointOfInterest, error) {
	if err := p.validateStruct(req); err != nil {
		return response_models.PointOfInterest{}, err
	}
	if err := p.ensureCityExists(ctx, cityID); err != nil {
		return response_models.PointOfInterest{}, err
	}

	poi := fromPointOfInterestForCreation(req)
	if err := p.repo.AddPointOfInterestForCity(ctx, cityID, poi); err != nil {
		return response_models.PointOfInterest{}, p.dbError("Failed to create point of interest", err, "city_id", cityID)
	}

	p.lggr.Infow("Point of interest created", "city_id", cityID, "poi_id", poi.ID)
	return toPointOfInterestResponse(*poi), nil
}

func (p *PoiService) UpdatePointOfInterest(ctx context.Context, cityID, poiID int, req request_models.PointOfInterestForUpdate) error {
	if err := p.validateStruct(req); err != nil {
		return err
	}
	poi, err := p.findPointOfInterest(ctx, cityID, poiID)
	if err != nil {
		return err
	}

	applyPointOfInterestUpdate(poi, req)
	if err := p.repo.UpdatePointOfInterest(ctx, poi); err != nil {
		if errors.Is(err, utils.ErrPointOfInterestNotFound) {
			return err
		}
		return p.dbError("Failed to update point of interest", err, "city_id", cityID, "poi_id", poiID)
	}
	return nil
}

func (p *PoiService) PatchPointOfInterest(ctx context.Context, cityID, poiID int, patch []byte) error {
	decoded, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidPatch, err)
	}

	poi, err := p.findPointOfInterest(ctx, cityID, poiID)
	if err != nil {
		return err
	}

	patched, err := applyPatch(toPointOfInterestForUpdate(*poi), decoded)
	if err != nil {
		return err
	}
	if err := p.validateStruct(patched); err != nil {
		return err
	}

	applyPointOfInterestUpdate(poi, patched)
	if err := p.repo.UpdatePointOfInterest(ctx, poi); err != nil {
		if errors.Is(err, utils.ErrPointOfInterestNotFound) {
			return err
		}
		return p.dbError("Failed to patch point of interest", err, "city_id", cityID, "poi_id", poiID)
	}
	return nil
}

// applyPatch runs the patch against the JSON form of doc. Paths outside the
// document's fields are rejected.
func applyPatch(doc request_models.PointOfInterestForUpdate, patch jsonpatch.Patch) (request_models.PointOfInterestForUpdate, error) {
	original, err := json.Marshal(doc)
	if err != nil {
		return doc, err
	}

	modified, err := patch.Apply(original)
	if err != nil {
		return doc, fmt.Errorf("%w: %v", utils.ErrInvalidPatch, err)
	}

	var patched request_models.PointOfInterestForUpdate
	dec := json.NewDecoder(bytes.NewReader(modified))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patched); err != nil {
		return doc, fmt.Errorf("%w: %v", utils.ErrInvalidPatch, err)
	}
	return patched, nil
}

func (p *PoiService) DeletePointOfInterest(ctx context.Context, cityID, poiID int) error {
	poi, err := p.findPointOfInterest(ctx, cityID, poiID)
	if err != nil {
		return err
	}

	if err := p.repo.DeletePointOfInterest(ctx, poi); err != nil {
		return p.dbError("Failed to delete point of interest", err, "city_id", cityID, "poi_id", poiID)
	}

	// The point of interest is gone either way; a failed notification is only logged.
	err = p.mail.Send(ctx,
		"Point of interest deleted.",
		fmt.Sprintf("Point of interest %s with id %d", poi.Name, poi.ID))
	if err != nil {
		p.lggr.Warnw("Failed to send delete notification", "poi_id", poi.ID, "error", err)
	}
	return nil
}

func (p *PoiService) validateStruct(s interface{}) error {
	err := p.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q rule", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", utils.ErrValidation, strings.Join(msgs, "; "))
}
