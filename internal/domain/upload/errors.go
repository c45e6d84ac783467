package upload

import "errors"

var (
	ErrNoFile          = errors.New("no file")
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file is not a supported image")
)
