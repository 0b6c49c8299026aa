package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrInvalidRole        = errors.New("role must be admin or staff")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own employee record")
)
