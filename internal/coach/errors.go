package coach

import "errors"

var (
	ErrEmptyText = errors.New("text is empty")
)
