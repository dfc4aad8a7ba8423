package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrBadJSON     = fmt.Errorf("%w: invalid json", ErrParse)
	ErrNotAMapping = fmt.Errorf("%w: document is not a mapping", ErrParse)
	ErrFormat      = fmt.Errorf("%w: format cannot be parsed", ErrParse)
)
