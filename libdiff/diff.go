package libdiff

import (
	"strings"

	"github.com/signadot/lattice/tree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes which turn from into to, depth first in the
// key order of to. Keys of both trees are aligned as sequences so that a
// key kept at a different position is reported as Moved.
func Diff(from, to *tree.Node) []Change {
	var res []Change
	diffNode(nil, from, to, &res)
	return res
}

func diffNode(path []any, from, to *tree.Node, res *[]Change) {
	keyMap := map[any]rune{}
	runeMap := map[rune]any{}
	fromRunes := mapKeysTo(keyMap, runeMap, from)
	toRunes := mapKeysTo(keyMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	deleted := map[any]bool{}
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffDelete {
			continue
		}
		for _, r := range diffs[i].Text {
			deleted[runeMap[r]] = true
		}
	}
	inserted := map[any]bool{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				k := runeMap[r]
				fv, _ := from.Lookup(k)
				tv, _ := to.Lookup(k)
				diffValue(sub(path, k), fv, tv, res)
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				k := runeMap[r]
				inserted[k] = true
				tv, _ := to.Lookup(k)
				if !deleted[k] {
					*res = append(*res, Change{Path: sub(path, k), Kind: Added, To: tree.CloneValue(tv)})
					continue
				}
				fv, _ := from.Lookup(k)
				*res = append(*res, Change{
					Path: sub(path, k),
					Kind: Moved,
					From: tree.CloneValue(fv),
					To:   tree.CloneValue(tv),
				})
			}
		}
	}
	for k, fv := range from.All() {
		if deleted[k] && !inserted[k] {
			*res = append(*res, Change{Path: sub(path, k), Kind: Removed, From: tree.CloneValue(fv)})
		}
	}
}

func diffValue(path []any, fv, tv any, res *[]Change) {
	fn, fok := fv.(*tree.Node)
	tn, tok := tv.(*tree.Node)
	if fok && tok {
		diffNode(path, fn, tn, res)
		return
	}
	if tree.ValuesEqual(fv, tv) {
		return
	}
	c := Change{Path: path, Kind: Modified, From: tree.CloneValue(fv), To: tree.CloneValue(tv)}
	fs, fok := fv.(string)
	ts, tok := tv.(string)
	if fok && tok {
		c.Text = DiffString(fs, ts)
	}
	*res = append(*res, c)
}

// DiffString renders a character level diff of two strings.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffCleanupSemantic(diffCfg.DiffMain(from, to, doMultiLine))
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + diff.Text + "+}")
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		}
	}
	return buf.String()
}

func sub(path []any, k any) []any {
	res := make([]any, len(path)+1)
	copy(res, path)
	res[len(path)] = k
	return res
}

func mapKeysTo(m map[any]rune, im map[rune]any, node *tree.Node) []rune {
	rs := make([]rune, 0, node.Len())
	for k := range node.All() {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs = append(rs, r)
	}
	return rs
}
