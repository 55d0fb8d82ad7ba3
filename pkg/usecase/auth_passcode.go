package usecase

import (
	"context"
	"crypto/subtle"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"
)

// PasscodeAuthenticator gates the journal behind a static passcode. It is
// the built-in stand-in for platform biometric backends, which implement
// the same interface.
type PasscodeAuthenticator struct {
	passcode string
}

var _ interfaces.Authenticator = &PasscodeAuthenticator{}

func NewPasscodeAuthenticator(passcode string) *PasscodeAuthenticator {
	return &PasscodeAuthenticator{passcode: passcode}
}

func (a *PasscodeAuthenticator) Available() bool {
	return a.passcode != ""
}

func (a *PasscodeAuthenticator) Kind() string {
	return "passcode"
}

func (a *PasscodeAuthenticator) Authenticate(ctx context.Context, credential string) error {
	if subtle.ConstantTimeCompare([]byte(a.passcode), []byte(credential)) != 1 {
		return goerr.New("incorrect passcode")
	}
	return nil
}
