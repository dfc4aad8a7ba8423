package tree

import "testing"

func TestEqual(t *testing.T) {
	a := MustFromPlain(Map{{"x", 1}, {"y", Map{{"z", []any{1, "s"}}}}})
	b := MustFromPlain(Map{{"y", Map{{"z", []any{1, "s"}}}}, {"x", 1}})
	if !Equal(a, b) {
		t.Errorf("order must not matter")
	}
	c := MustFromPlain(Map{{"x", 1}, {"y", Map{{"z", []any{1, "t"}}}}})
	if Equal(a, c) {
		t.Errorf("different leaves compare equal")
	}
	d := MustFromPlain(Map{{"x", 1}, {"y", 2}})
	if Equal(a, d) {
		t.Errorf("node compares equal to leaf")
	}
}

func TestClone(t *testing.T) {
	n := MustFromPlain(Map{{"a", Map{{"b", []any{Map{{"c", 1}}}}}}}, WithLocking(true), WithLazyCreate(true))
	n.Freeze()
	c := n.Clone()
	if !Equal(n, c) {
		t.Fatalf("clone differs")
	}
	if c.Frozen() || c.Lock() == nil || c.Lock() == n.Lock() {
		t.Errorf("clone: frozen %v lock %v", c.Frozen(), c.Lock())
	}
	if err := c.Set("a/b", 2); err != nil {
		t.Fatal(err)
	}
	if Equal(n, c) {
		t.Errorf("clone aliases the source")
	}
}

func TestString(t *testing.T) {
	n := MustFromPlain(Map{{"a", 1}, {"b", Map{{"c", "x"}}}, {"l", []any{1, nil}}})
	want := `{"a": 1, "b": {"c": "x"}, "l": [1, null]}`
	if got := n.String(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}
