package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/signadot/lattice/tree"
)

// JSON wraps a node value (or a tree.Map) so that encoding/json writes
// mappings as objects in entry order. Non string keys are written in
// their printed form.
type JSON struct {
	V any
}

func (j JSON) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, j.V); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case *tree.Node:
		buf.WriteByte('{')
		i := 0
		for k, cv := range x.All() {
			if i != 0 {
				buf.WriteByte(',')
			}
			i++
			kd, err := json.Marshal(keyString(k))
			if err != nil {
				return err
			}
			buf.Write(kd)
			buf.WriteByte(':')
			if err := writeJSON(buf, cv); err != nil {
				return fmt.Errorf("%v: %w", k, err)
			}
		}
		buf.WriteByte('}')
		return nil
	case tree.Map:
		buf.WriteByte('{')
		for i := range x {
			if i != 0 {
				buf.WriteByte(',')
			}
			kd, err := json.Marshal(keyString(x[i].Key))
			if err != nil {
				return err
			}
			buf.Write(kd)
			buf.WriteByte(':')
			if err := writeJSON(buf, x[i].Value); err != nil {
				return fmt.Errorf("%v: %w", x[i].Key, err)
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i := range x {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, x[i]); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func marshalJSON(node *tree.Node, indent int) ([]byte, error) {
	d, err := JSON{V: node}.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if indent <= 0 {
		return d, nil
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
