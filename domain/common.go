package domain

import "errors"

var (
	MessageUnauthorized  = "Non autorizzato"
	MessageInternalError = "Errore interno del server"

	ErrUnauthorized = errors.New("unauthorized")
)
