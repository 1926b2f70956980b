package request_models

import "encoding/xml"

type PointOfInterestForCreation struct {
	XMLName     xml.Name `json:"-" xml:"PointOfInterestForCreation"`
	Name        string   `json:"name" xml:"name" binding:"required,max=50" validate:"required,max=50"`
	Description *string  `json:"description" xml:"description,omitempty" binding:"omitempty,max=200" validate:"omitempty,max=200"`
}

// PointOfInterestForUpdate is also the document a JSON Patch is applied to,
// so its json names are the patchable paths.
type PointOfInterestForUpdate struct {
	XMLName     xml.Name `json:"-" xml:"PointOfInterestForUpdate"`
	Name        string   `json:"name" xml:"name" binding:"required,max=50" validate:"required,max=50"`
	Description *string  `json:"description" xml:"description,omitempty" binding:"omitempty,max=200" validate:"omitempty,max=200"`
}
