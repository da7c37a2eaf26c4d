package nfsengine

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Config holds the Router-level knobs spec §4.7 assigns to the Server
// Façade rather than to any single procedure. PATHCONF is the only
// handler that currently reads one of these back (CaseSensitive).
type Config struct {
	// CaseSensitive reports whether the backing Dispatcher treats names
	// case-sensitively. PATHCONF's case_insensitive field is derived from
	// its negation.
	CaseSensitive bool `validate:"-"`

	// RequestTimeoutMillis is checked by Validate (it must not be negative)
	// and carried in the Config; neither the Router nor the Façade applies
	// it to DispatchRPC calls.
	RequestTimeoutMillis int64 `validate:"gte=0"`
}

// Validate checks Config's field-level constraints. It does not (and
// cannot) check anything about the Dispatcher itself.
func (c Config) Validate() error {
	return validate.Struct(c)
}
