package navigation

import "errors"

// Registry errors. ErrRouteNotFound is returned by resolution; the rest
// are construction defects reported by New.
var (
	ErrRouteNotFound = errors.New("navigation: route not found")

	ErrDuplicateName = errors.New("navigation: duplicate route name")
	ErrDuplicatePath = errors.New("navigation: duplicate route path")
	ErrInvalidName   = errors.New("navigation: route name required")
	ErrInvalidPath   = errors.New("navigation: route path must begin with /")
	ErrNilView       = errors.New("navigation: route view required")
)
