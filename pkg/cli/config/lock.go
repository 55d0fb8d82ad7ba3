package config

import (
	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"
	"github.com/oneirolab/dreamvault/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Lock holds CLI flags for the journal lock gate
type Lock struct {
	passcode string
}

// Flags returns CLI flags for lock configuration
func (l *Lock) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "lock-passcode",
			Usage:       "Passcode required to unlock the journal (lock is disabled when empty)",
			Category:    "Lock",
			Sources:     cli.EnvVars("DREAMVAULT_LOCK_PASSCODE"),
			Destination: &l.passcode,
		},
	}
}

// Configured reports whether a passcode was provided
func (l *Lock) Configured() bool {
	return l.passcode != ""
}

// Configure returns the authenticator, or nil when the lock is disabled
func (l *Lock) Configure() interfaces.Authenticator {
	if !l.Configured() {
		return nil
	}
	return usecase.NewPasscodeAuthenticator(l.passcode)
}
