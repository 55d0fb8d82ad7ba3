package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"
)

// SessionUseCase is the single owner of the journal's lock state. With no
// authenticator configured the gate is disabled and the journal is always
// unlocked.
type SessionUseCase struct {
	auth interfaces.Authenticator

	mu       sync.RWMutex
	unlocked bool
}

func NewSessionUseCase(auth interfaces.Authenticator) *SessionUseCase {
	return &SessionUseCase{auth: auth}
}

// Enabled reports whether a lock gate is configured
func (uc *SessionUseCase) Enabled() bool {
	return uc.auth != nil
}

// Kind describes the configured authentication method, empty when disabled
func (uc *SessionUseCase) Kind() string {
	if uc.auth == nil {
		return ""
	}
	return uc.auth.Kind()
}

// Available reports whether the configured method can currently be used
func (uc *SessionUseCase) Available() bool {
	if uc.auth == nil {
		return false
	}
	return uc.auth.Available()
}

// Unlocked reports whether the journal may be accessed
func (uc *SessionUseCase) Unlocked() bool {
	if uc.auth == nil {
		return true
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.unlocked
}

// Unlock verifies the credential against the authenticator. On success the
// session stays unlocked until Lock is called.
func (uc *SessionUseCase) Unlock(ctx context.Context, credential string) error {
	if uc.auth == nil {
		return nil
	}
	if !uc.auth.Available() {
		return goerr.New("authentication method is not available", goerr.V("kind", uc.auth.Kind()))
	}

	if err := uc.auth.Authenticate(ctx, credential); err != nil {
		return goerr.Wrap(err, "authentication failed", goerr.V("kind", uc.auth.Kind()))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.unlocked = true
	return nil
}

// Lock resets the session to locked, e.g. when the app is backgrounded
func (uc *SessionUseCase) Lock() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.unlocked = false
}
