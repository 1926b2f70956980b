package services

import (
	"cityinfo/internal/models/db_models"
	"cityinfo/internal/models/request_models"
	"cityinfo/internal/models/response_models"
)

func toCityWithoutPointsOfInterest(city db_models.City) response_models.CityWithoutPointsOfInterest {
	return response_models.CityWithoutPointsOfInterest{
		ID:          city.ID,
		Name:        city.Name,
		Description: city.Description,
	}
}

func toCityResponse(city db_models.City) response_models.City {
	pois := toPointOfInterestResponses(city.PointsOfInterest)
	return response_models.City{
		ID:                       city.ID,
		Name:                     city.Name,
		Description:              city.Description,
		NumberOfPointsOfInterest: len(pois),
		PointsOfInterest:         pois,
	}
}

func toPointOfInterestResponse(poi db_models.PointOfInterest) response_models.PointOfInterest {
	return response_models.PointOfInterest{
		ID:          poi.ID,
		Name:        poi.Name,
		Description: poi.Description,
	}
}

func toPointOfInterestResponses(pois []db_models.PointOfInterest) []response_models.PointOfInterest {
	out := make([]response_models.PointOfInterest, 0, len(pois))
	for _, poi := range pois {
		out = append(out, toPointOfInterestResponse(poi))
	}
	return out
}

func fromPointOfInterestForCreation(req request_models.PointOfInterestForCreation) *db_models.PointOfInterest {
	return &db_models.PointOfInterest{
		Name:        req.Name,
		Description: req.Description,
	}
}

func toPointOfInterestForUpdate(poi db_models.PointOfInterest) request_models.PointOfInterestForUpdate {
	return request_models.PointOfInterestForUpdate{
		Name:        poi.Name,
		Description: poi.Description,
	}
}

// applyPointOfInterestUpdate copies every updatable field onto the entity.
func applyPointOfInterestUpdate(poi *db_models.PointOfInterest, req request_models.PointOfInterestForUpdate) {
	poi.Name = req.Name
	poi.Description = req.Description
}
