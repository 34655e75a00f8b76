package builder

import (
	"fmt"

	"github.com/vk/archgridgo/internal/model"
)

// tree owns the element value tree during a build, plus an id→path arena so
// the current version of any element (and its ancestor spine) can be located
// without searching. Paths are index chains from the model's root slice;
// replacement never changes indices, so the arena only needs re-syncing on
// inserts.
type tree struct {
	m     model.Model
	paths map[string][]int
}

func newTree() *tree {
	return &tree{paths: make(map[string][]int)}
}

// elementAt reads the element at an index path in the current tree.
func (t *tree) elementAt(path []int) model.Element {
	el := t.m.Elements[path[0]]
	for _, i := range path[1:] {
		el = el.Children[i]
	}
	return el
}

// lookup returns the current version of an element in the tree.
func (t *tree) lookup(id string) (model.Element, bool) {
	path, ok := t.paths[id]
	if !ok {
		return model.Element{}, false
	}
	return t.elementAt(path), true
}

// insert appends el under its parent (or at the root when parentID is
// empty), rebuilding the ancestor spine, and records el's path. It returns
// the updated versions of every ancestor, nearest first, so the caller can
// re-register them in the symbol table.
func (t *tree) insert(parentID string, el model.Element) []model.Element {
	if parentID == "" {
		t.m.Elements = appendCopy(t.m.Elements, el)
		t.paths[el.ID] = []int{len(t.m.Elements) - 1}
		return nil
	}
	path, ok := t.paths[parentID]
	if !ok {
		panic(fmt.Sprintf("internal error: inserting %q under unknown parent %q", el.ID, parentID))
	}
	parent := t.elementAt(path).WithChild(el)
	t.paths[el.ID] = append(append([]int{}, path...), len(parent.Children)-1)
	return t.writeBack(path, parent)
}

// remove detaches an element and its subtree from the tree, rebuilding the
// ancestor spine and re-indexing every path (detaching shifts the indices of
// later siblings). It returns the removed element plus the updated ancestors
// so the caller can re-register them.
func (t *tree) remove(id string) (model.Element, []model.Element, bool) {
	path, ok := t.paths[id]
	if !ok {
		return model.Element{}, nil, false
	}
	removed := t.elementAt(path)

	var updated []model.Element
	if len(path) == 1 {
		roots := make([]model.Element, 0, len(t.m.Elements)-1)
		roots = append(roots, t.m.Elements[:path[0]]...)
		roots = append(roots, t.m.Elements[path[0]+1:]...)
		t.m.Elements = roots
	} else {
		parentPath := path[:len(path)-1]
		parent := t.elementAt(parentPath)
		i := path[len(path)-1]
		children := make([]model.Element, 0, len(parent.Children)-1)
		children = append(children, parent.Children[:i]...)
		children = append(children, parent.Children[i+1:]...)
		parent.Children = children
		updated = t.writeBack(parentPath, parent)
	}
	t.reindex()
	return removed, updated, true
}

// reindex rebuilds the id→path arena from the current tree.
func (t *tree) reindex() {
	t.paths = make(map[string][]int)
	var rec func(el model.Element, path []int)
	rec = func(el model.Element, path []int) {
		t.paths[el.ID] = path
		for i, c := range el.Children {
			rec(c, append(append([]int{}, path...), i))
		}
	}
	for i, el := range t.m.Elements {
		rec(el, []int{i})
	}
}

// replaceAndPropagate swaps in a new version of an existing element and
// rebuilds every ancestor up to the root collection, sharing untouched
// siblings structurally. It returns the new versions of the element and its
// ancestors, element first.
func (t *tree) replaceAndPropagate(el model.Element) []model.Element {
	path, ok := t.paths[el.ID]
	if !ok {
		panic(fmt.Sprintf("internal error: replacing unknown element %q", el.ID))
	}
	return t.writeBack(path, el)
}

// writeBack installs el at path, producing a new version of each ancestor.
// Ancestor reads happen against the pre-write tree; the root slice is
// swapped once at the end.
func (t *tree) writeBack(path []int, el model.Element) []model.Element {
	updated := []model.Element{el}
	for depth := len(path) - 1; depth >= 1; depth-- {
		parent := t.elementAt(path[:depth]).WithChildReplaced(path[depth], el)
		updated = append(updated, parent)
		el = parent
	}
	roots := make([]model.Element, len(t.m.Elements))
	copy(roots, t.m.Elements)
	roots[path[0]] = el
	t.m.Elements = roots
	return updated
}

func appendCopy(es []model.Element, el model.Element) []model.Element {
	out := make([]model.Element, len(es), len(es)+1)
	copy(out, es)
	return append(out, el)
}
