package auth

import (
	"time"

	"github.com/EdoFendy/lanadot-restaurant/domain"
)

// The admin panel is single-tenant: one fixed credential pair and one
// sentinel cookie value shared by every authorized request. The admin_users
// table exists but is not consulted here.
const (
	SessionCookieName = "admin-session"
	sessionSentinel   = "authenticated"
	SessionMaxAge     = 24 * time.Hour

	adminUsername = "admin"
	adminPassword = "admin123"
)

type (
	SessionService interface {
		Login(username, password string) (string, error)
		Verify(cookieValue string) bool
		CookieName() string
	}

	sessionService struct{}
)

func NewSessionService() SessionService {
	return &sessionService{}
}

// Login checks the submitted credentials and returns the cookie value to
// set. Anything but an exact match is rejected.
func (s *sessionService) Login(username, password string) (string, error) {
	if username != adminUsername || password != adminPassword {
		return "", domain.ErrInvalidCredentials
	}
	return sessionSentinel, nil
}

// Verify authorizes a request: the cookie must equal the sentinel exactly.
// A missing cookie arrives as the empty string and fails the comparison.
func (s *sessionService) Verify(cookieValue string) bool {
	return cookieValue == sessionSentinel
}

func (s *sessionService) CookieName() string {
	return SessionCookieName
}
