package target

import "errors"

var (
	ErrTargetNotFound   = errors.New("target not found")
	ErrTargetNameExists = errors.New("target name already exists")
)
