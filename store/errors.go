package store

import "github.com/ayoisaiah/tempus/internal/apperr"

var (
	// ErrTempusRunning is returned when another process holds the database.
	ErrTempusRunning = &apperr.Error{
		Message: "is Tempus already running? Only one instance can be active at a time",
	}

	// ErrDecodeState is returned by Load, together with the defaults, when
	// the stored record cannot be decoded. The record is kept under the
	// backup key named in the message.
	ErrDecodeState = &apperr.Error{
		Message: "stored state in %s is corrupt (a copy was kept under %s)",
	}

	errBackupState = &apperr.Error{
		Message: "unable to back up the corrupt state in %s",
	}

	errClosed = &apperr.Error{
		Message: "database is closed",
	}
)
