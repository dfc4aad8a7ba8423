package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromPlainOrder(t *testing.T) {
	n := MustFromPlain(Map{{"b", 1}, {"a", Map{{"z", 1}, {"y", 2}}}})
	if diff := cmp.Diff([]any{"b", "a"}, n.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	a, _ := n.Node("a")
	if diff := cmp.Diff([]any{"z", "y"}, a.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	m := MustFromPlain(map[string]any{"b": 1, "a": 2, "c": 3})
	if diff := cmp.Diff([]any{"a", "b", "c"}, m.Keys()); diff != "" {
		t.Errorf("go map keys not sorted (-want +got):\n%s", diff)
	}
	k := MustFromPlain(map[any]any{"x": 1, 2: 1, 1: 1})
	if diff := cmp.Diff([]any{1, 2, "x"}, k.Keys()); diff != "" {
		t.Errorf("mixed keys (-want +got):\n%s", diff)
	}
}

func TestFromPlainErrors(t *testing.T) {
	if _, err := FromPlain(3); !errors.Is(err, ErrStructural) {
		t.Errorf("scalar: got %v", err)
	}
	if _, err := FromPlain(Map{{nil, 1}}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("nil key: got %v", err)
	}
}

func TestFromPlainNodeCopies(t *testing.T) {
	src := MustFromPlain(map[string]any{"a": map[string]any{"b": []any{1}}})
	dst := MustFromPlain(src)
	if !Equal(src, dst) {
		t.Fatalf("copy differs: %v vs %v", src, dst)
	}
	sa, _ := src.Node("a")
	da, _ := dst.Node("a")
	if sa == da {
		t.Errorf("copy aliases the source")
	}
	if err := da.Set("b", 2); err != nil {
		t.Fatal(err)
	}
	if Equal(src, dst) {
		t.Errorf("copy mutation visible in source")
	}
}

func TestNormalizer(t *testing.T) {
	times10 := NormalizerFunc(func(v any) any {
		if i, ok := v.(int); ok {
			return i * 10
		}
		return v
	})
	n, err := FromPlain(map[string]any{"a": 1, "b": map[string]any{"c": 2}, "l": []any{3}}, WithNormalizer(times10))
	if err != nil {
		t.Fatal(err)
	}
	want := map[any]any{"a": 10, "b": map[any]any{"c": 20}, "l": []any{30}}
	if diff := cmp.Diff(want, n.ToPlain()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToMap(t *testing.T) {
	in := Map{
		{"b", Map{{"y", 1}, {"x", 2}}},
		{"a", []any{Map{{"k", "v"}}, 3}},
	}
	n := MustFromPlain(in)
	if diff := cmp.Diff(in, n.ToMap()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTypedSlices(t *testing.T) {
	n := MustFromPlain(map[string]any{
		"strs": []string{"a", "b"},
		"maps": []map[string]any{{"k": 1}},
	})
	v, _ := n.Get("strs")
	if _, ok := v.([]string); !ok {
		t.Errorf("scalar slice converted to %T", v)
	}
	v, _ = n.Get("maps")
	seq, ok := v.([]any)
	if !ok || len(seq) != 1 {
		t.Fatalf("got %T", v)
	}
	if _, ok := seq[0].(*Node); !ok {
		t.Errorf("mapping element not promoted: %T", seq[0])
	}
}
