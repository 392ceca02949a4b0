package yaerrors

import "errors"

// ErrTeapot reports that somebody dereferenced a nil Error. It is substituted
// by the nil-safety check instead of letting the call panic.
var ErrTeapot = errors.New("backend developer is a teapot")
