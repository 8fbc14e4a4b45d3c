package config

import "github.com/ayoisaiah/tempus/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %v",
	}

	errInvalidPhaseDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes, got %d",
	}

	errInvalidSimpleDuration = &apperr.Error{
		Message: "timer duration must be between %v and %v, got %v",
	}

	errLongBreakTooShort = &apperr.Error{
		Message: "long break duration (%dm) must not be shorter than the short break duration (%dm)",
	}

	errInvalidLongBreakInterval = &apperr.Error{
		Message: "long break interval must be between %d and %d sessions, got %d",
	}

	errUnknownMode = &apperr.Error{
		Message: "unknown timer mode: %s (must be simple or pomodoro)",
	}

	errUnknownTag = &apperr.Error{
		Message: "unknown tag: %s",
	}

	errUnknownAmbientSound = &apperr.Error{
		Message: "unknown ambient sound: %s",
	}

	errInvalidVolume = &apperr.Error{
		Message: "volume must be between 0 and 1, got %v",
	}

	errUnknownTheme = &apperr.Error{
		Message: "unknown theme: %s (must be dark or light)",
	}

	errUnknownAccentColor = &apperr.Error{
		Message: "unknown accent color: %s",
	}
)
