package merge

import "errors"

var (
	ErrJoinConfig = errors.New("join config error")
	ErrBadOp      = errors.New("bad merge op")
)
