package domain

import "errors"

var (
	MessageMissingCredentials = "Username e password sono richiesti"
	MessageInvalidCredentials = "Credenziali non valide"
	MessageLogoutError        = "Errore durante il logout"

	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	AuthStatusResponse struct {
		Authenticated bool `json:"authenticated"`
	}
)
