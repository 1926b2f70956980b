package request_models

import "encoding/xml"

type AuthenticationRequest struct {
	XMLName  xml.Name `json:"-" xml:"AuthenticationRequest"`
	UserName string   `json:"userName" xml:"userName" binding:"required,max=50"`
	Password string   `json:"password" xml:"password" binding:"required"`
}

// SignUpRequest creates an account. Only the CLI issues it.
type SignUpRequest struct {
	UserName  string `validate:"required,max=50"`
	Password  string `validate:"required,min=8"`
	FirstName string `validate:"max=50"`
	LastName  string `validate:"max=50"`
	City      string `validate:"required,max=50"`
}
