package tree

import (
	"errors"
	"fmt"
)

var (
	ErrPathNotFound       = errors.New("path not found")
	ErrAttributeNotFound  = errors.New("attribute not found")
	ErrModificationDenied = errors.New("modification denied: node is frozen")
	ErrStructural         = errors.New("structural error")
	ErrInvalidKey         = errors.New("invalid key")
	ErrNotANode           = errors.New("not a node")
)

// PathError reports the first segment of Path which could not be resolved.
type PathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	if e.Path == e.Segment {
		return fmt.Sprintf("%s: %q", e.Err, e.Segment)
	}
	return fmt.Sprintf("%s: %q in %q", e.Err, e.Segment, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func pathNotFound(path, seg string) error {
	return &PathError{Path: path, Segment: seg, Err: ErrPathNotFound}
}

// AttributeError is the attribute-access form of a missing path segment. It
// matches both ErrAttributeNotFound and ErrPathNotFound.
type AttributeError struct {
	Name string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrAttributeNotFound, e.Name)
}

func (e *AttributeError) Unwrap() []error {
	return []error{ErrAttributeNotFound, ErrPathNotFound}
}

func structuralErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrStructural}, args...)...)
}

func deniedErr(n *Node) error {
	return fmt.Errorf("%w (at %q)", ErrModificationDenied, n.Path())
}

// frozenTargetErr is returned when a subtree is moved onto a frozen node.
// It matches both ErrStructural and ErrModificationDenied.
func frozenTargetErr(n *Node) error {
	return fmt.Errorf("%w: %w (at %q)", ErrStructural, ErrModificationDenied, n.Path())
}
