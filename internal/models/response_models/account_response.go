package response_models

import "encoding/xml"

type TokenResponse struct {
	XMLName   xml.Name `json:"-" xml:"Token"`
	Token     string   `json:"token" xml:"token"`
	ExpiresAt int64    `json:"expiresAt" xml:"expiresAt"`
}
