package annotation

import "errors"

var (
	ErrClassifierFailed = errors.New("annotation: classifier failed")
)
