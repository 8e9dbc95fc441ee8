package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

// PIN attempt throttling: wrong guesses are cheap to type and bcrypt alone
// does not stop a brute force at the lock screen.
const (
	attemptRate  = rate.Limit(0.5)
	attemptBurst = 5
)

var (
	ErrInvalidPIN      = errors.New("invalid PIN")
	ErrTooManyAttempts = errors.New("too many PIN attempts")
)

// PinChecker answers the supervisor PIN challenge used by the lock screen
// and the unit-price unlock in the line-edit dialog.
type PinChecker struct {
	hash    []byte
	limiter *rate.Limiter
}

func NewPinChecker(bcryptHash string) *PinChecker {
	return &PinChecker{
		hash:    []byte(bcryptHash),
		limiter: rate.NewLimiter(attemptRate, attemptBurst),
	}
}

// Check verifies a candidate PIN. A wrong PIN keeps the challenge open for
// retry; a burst of attempts is throttled before bcrypt is consulted.
func (c *PinChecker) Check(candidate string) error {
	if !c.limiter.Allow() {
		return ErrTooManyAttempts
	}

	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(candidate)); err != nil {
		return ErrInvalidPIN
	}
	return nil
}

// HashPin produces the bcrypt hash stored in SUPERVISOR_PIN_HASH.
func HashPin(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(bytes), err
}
