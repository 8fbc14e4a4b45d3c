package app

import "github.com/ayoisaiah/tempus/internal/apperr"

var errInvalidDate = &apperr.Error{
	Message: "unable to understand the date %q",
}
