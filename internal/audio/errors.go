package audio

import "errors"

var (
	ErrDisabled          = errors.New("audio disabled")
	ErrUnsupportedFormat = errors.New("unsupported audio file type")
)
