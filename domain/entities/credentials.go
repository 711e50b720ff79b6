package entities

import "errors"

// ErrPartialCredentials is returned when a request supplies only one
// half of the username/password pair. Environment defaults are applied
// only when both fields are absent, never merged into a partial pair.
var ErrPartialCredentials = errors.New("credentials must be supplied as a complete username/password pair")

// Credentials carries the PACS login pair for a single request.
// It is never persisted; its lifetime is one request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Complete reports whether both fields are set.
func (c Credentials) Complete() bool {
	return c.Username != "" && c.Password != ""
}

// Empty reports whether both fields are absent.
func (c Credentials) Empty() bool {
	return c.Username == "" && c.Password == ""
}

// Resolve returns the request pair when it is complete, the defaults
// when the request pair is entirely absent, and ErrPartialCredentials
// when only one field was supplied.
func (c Credentials) Resolve(defaults Credentials) (Credentials, error) {
	if c.Complete() {
		return c, nil
	}
	if c.Empty() {
		return defaults, nil
	}
	return Credentials{}, ErrPartialCredentials
}
