package email

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid email request")
	ErrSendFailed     = errors.New("failed to send email")
	ErrMissingAPIKey  = errors.New("resend api key is empty")
)
