package patch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/signadot/lattice/encode"
	"github.com/signadot/lattice/libdiff"
)

type op struct {
	Op    string       `json:"op"`
	Path  string       `json:"path"`
	Value *encode.JSON `json:"value,omitempty"`
}

// FromChanges converts structural changes into an RFC 6902 JSON Patch. A
// Moved change becomes a remove followed by an add.
func FromChanges(changes []libdiff.Change) ([]byte, error) {
	var ops []op
	for i := range changes {
		c := &changes[i]
		p := Pointer(c.Path)
		switch c.Kind {
		case libdiff.Added:
			ops = append(ops, op{Op: "add", Path: p, Value: &encode.JSON{V: c.To}})
		case libdiff.Removed:
			ops = append(ops, op{Op: "remove", Path: p})
		case libdiff.Modified:
			ops = append(ops, op{Op: "replace", Path: p, Value: &encode.JSON{V: c.To}})
		case libdiff.Moved:
			ops = append(ops,
				op{Op: "remove", Path: p},
				op{Op: "add", Path: p, Value: &encode.JSON{V: c.To}})
		default:
			return nil, fmt.Errorf("%w: unknown change kind %d", ErrPatch, c.Kind)
		}
	}
	if ops == nil {
		ops = []op{}
	}
	return json.Marshal(ops)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders keys as an RFC 6901 JSON Pointer.
func Pointer(keys []any) string {
	buf := &strings.Builder{}
	for _, k := range keys {
		buf.WriteByte('/')
		buf.WriteString(pointerEscaper.Replace(fmt.Sprint(k)))
	}
	return buf.String()
}
