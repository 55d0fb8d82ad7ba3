package interfaces

import "context"

// Authenticator is the device/credential gate consulted before the journal
// unlocks. Platform biometric backends implement this interface; the
// built-in implementation checks a static passcode.
type Authenticator interface {
	// Available reports whether this authentication method can be used
	Available() bool

	// Kind describes the method (e.g. "passcode", "faceid", "fingerprint")
	Kind() string

	// Authenticate verifies the supplied credential. It returns nil on
	// success and an error carrying the failure reason otherwise.
	Authenticate(ctx context.Context, credential string) error
}
