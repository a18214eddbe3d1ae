package prompt

import "errors"

var (
	ErrInvalidTemplate = errors.New("template must contain exactly one {input} placeholder")
	ErrDuplicateName   = errors.New("duplicate prompt name")
	ErrEmptyName       = errors.New("prompt name is empty")
	ErrReservedName    = errors.New("prompt name is reserved")
)
