package response_models

import "encoding/xml"

type PointOfInterest struct {
	XMLName     xml.Name `json:"-" xml:"PointOfInterest"`
	ID          int      `json:"id" xml:"id"`
	Name        string   `json:"name" xml:"name"`
	Description *string  `json:"description" xml:"description,omitempty"`
}
