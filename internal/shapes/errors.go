package shapes

import "errors"

// ErrUnknownShape indicates a menu code that maps to no shape.
var ErrUnknownShape = errors.New("shapes: unknown shape code")
