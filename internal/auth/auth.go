// Package auth verifies the single admin credential. There is no user
// table: the site has exactly one administrative account, configured as
// a bcrypt hash in the environment, and every authenticated action runs
// as the static admin principal.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/bandland/bandland/internal/ratelimit"
	"github.com/bandland/bandland/internal/utils"
)

// Principal is the identity every successful sign-in resolves to.
const Principal = "admin"

// Failure reasons, in the order Authorize checks them. Handlers map
// these to coded sign-in messages; neither the submitted password nor
// the stored hash ever appears in a message.
var (
	// ErrInvalidInput means the submitted credential payload was malformed.
	ErrInvalidInput = errors.New("invalid credential input")
	// ErrMissingConfiguration means no password hash (or signing secret)
	// is configured. Fatal to the auth flow until the operator fixes the
	// deployment; bandctl setup generates both values.
	ErrMissingConfiguration = errors.New("auth configuration missing")
	// ErrRateLimited means the client key exhausted its sign-in window.
	ErrRateLimited = errors.New("too many sign-in attempts")
	// ErrMissingInput means the password was empty after trimming.
	ErrMissingInput = errors.New("password required")
	// ErrInvalidCredential means the password did not match the hash.
	ErrInvalidCredential = errors.New("invalid password")
)

// Verifier checks a submitted password against the configured hash,
// throttling attempts per client key. Construct one per process and
// inject it into the sign-in handler.
type Verifier struct {
	passwordHash string
	limiter      *ratelimit.Limiter
}

// NewVerifier returns a verifier for the given bcrypt hash. An empty
// hash is tolerated at construction so the process can boot and report
// ErrMissingConfiguration at sign-in time instead of crash-looping.
func NewVerifier(passwordHash string, limiter *ratelimit.Limiter) *Verifier {
	return &Verifier{passwordHash: strings.TrimSpace(passwordHash), limiter: limiter}
}

// Authorize runs the sign-in ladder for one attempt and returns the
// admin principal on success. The rate-limit hit is recorded before the
// password is inspected, so failed and successful attempts both count
// against the window.
func (v *Verifier) Authorize(password, clientKey string) (string, error) {
	if v.passwordHash == "" {
		return "", ErrMissingConfiguration
	}
	if res := v.limiter.Check(clientKey, time.Now()); !res.Allowed {
		return "", ErrRateLimited
	}
	password = strings.TrimSpace(password)
	if password == "" {
		return "", ErrMissingInput
	}
	if !utils.VerifyPassword(v.passwordHash, password) {
		return "", ErrInvalidCredential
	}
	return Principal, nil
}
