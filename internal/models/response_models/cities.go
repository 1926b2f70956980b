package response_models

import "encoding/xml"

type CityWithoutPointsOfInterest struct {
	XMLName     xml.Name `json:"-" xml:"City"`
	ID          int      `json:"id" xml:"id"`
	Name        string   `json:"name" xml:"name"`
	Description *string  `json:"description" xml:"description,omitempty"`
}

type City struct {
	XMLName                  xml.Name          `json:"-" xml:"City"`
	ID                       int               `json:"id" xml:"id"`
	Name                     string            `json:"name" xml:"name"`
	Description              *string           `json:"description" xml:"description,omitempty"`
	NumberOfPointsOfInterest int               `json:"numberOfPointsOfInterest" xml:"numberOfPointsOfInterest"`
	PointsOfInterest         []PointOfInterest `json:"pointsOfInterest" xml:"pointsOfInterest>PointOfInterest"`
}
