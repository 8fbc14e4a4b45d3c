package timer

import "github.com/ayoisaiah/tempus/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file %s must be in mp3, ogg, flac, or wav format",
	}

	errSoundNotFound = &apperr.Error{
		Message: "no %s sound file found in %s",
	}

	errDecodeSound = &apperr.Error{
		Message: "unable to decode sound file %s",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise the audio output",
	}

	errParseSessionCmd = &apperr.Error{
		Message: "unable to parse session_cmd option: %s",
	}

	errReadStatus = &apperr.Error{
		Message: "unable to read the timer status from %s",
	}
)
