package common

import (
	"errors"
)

var ErrInvalidAudio = errors.New("audio track is empty or unreadable")
var ErrUnsupportedAudio = errors.New("unsupported audio format")
var ErrInvalidVideo = errors.New("video cannot be opened or has no frames")
