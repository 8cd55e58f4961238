package review

import "errors"

var (
	ErrInvalidInput       = errors.New("review: invalid input")
	ErrUnknownPlatform    = errors.New("review: unknown platform")
	ErrFileNotFound       = errors.New("review: file not found")
	ErrFileDownloadFailed = errors.New("review: file download failed")
	ErrFileParseFailed    = errors.New("review: file parse failed")
	ErrStoreFailed        = errors.New("review: store failed")
	ErrListFailed         = errors.New("review: list failed")
)
