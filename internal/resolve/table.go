package resolve

import (
	"strings"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/archgridgo/internal/diag"
	"github.com/vk/archgridgo/internal/model"
)

// Keywords with context-sensitive resolution.
const (
	KeywordThis   = "this"
	KeywordParent = "parent"
)

// PathSeparator splits composite references into segments.
const PathSeparator = "."

// Scope is the immutable resolution context. The zero value means "no
// current element", which is the state outside any element block.
type Scope struct {
	// CurrentID is the element the `this` keyword resolves to.
	CurrentID string
}

// Enter returns the scope for a traversal level whose current element is id.
func (s Scope) Enter(id string) Scope {
	return Scope{CurrentID: id}
}

// Options tunes a single Resolve call.
type Options struct {
	// SearchByName enables the name-based strategies after the ID match.
	SearchByName bool
	// Subject, when non-nil, is attached to the unresolved-reference
	// diagnostic. A nil Subject suppresses the diagnostic entirely, for
	// probe-style lookups where absence is expected.
	Subject *hcl.Range
}

// Table is the symbol table for one build. It is owned by a single build
// invocation and is not safe for concurrent use.
type Table struct {
	byID    map[string]model.Element
	byName  map[string]string
	aliases map[string]string
	// order preserves registration order so full scans are deterministic.
	order []string
	sink  *diag.Sink
}

// NewTable returns an empty symbol table reporting to sink.
func NewTable(sink *diag.Sink) *Table {
	return &Table{
		byID:    make(map[string]model.Element),
		byName:  make(map[string]string),
		aliases: make(map[string]string),
		sink:    sink,
	}
}

// Register inserts or overwrites the element under its ID and, when the
// element has a name, under its name. The last registration under a given
// name wins; a rebind to a different element is reported as a warning so the
// precedence is visible. Container instances are addressable by ID only:
// their display name mirrors the deployed container's and must not shadow it
// in name lookups.
func (t *Table) Register(el model.Element) {
	if _, seen := t.byID[el.ID]; !seen {
		t.order = append(t.order, el.ID)
	}
	t.byID[el.ID] = el
	if el.Name != "" && el.Kind != model.ContainerInstance {
		if prev, bound := t.byName[el.Name]; bound && prev != el.ID {
			t.sink.Warnf(nil, "name %q is declared by both %q and %q; name lookups now resolve to %q", el.Name, prev, el.ID, el.ID)
		}
		t.byName[el.Name] = el.ID
	}
}

// Remove deletes an element and its name binding. Used when a re-declared ID
// replaces an earlier subtree, whose descendants are no longer part of the
// model.
func (t *Table) Remove(id string) {
	el, ok := t.byID[id]
	if !ok {
		return
	}
	delete(t.byID, id)
	if bound, named := t.byName[el.Name]; named && bound == id {
		delete(t.byName, el.Name)
	}
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
}

// RegisterAlias makes alias resolve identically to an ID lookup of target.
func (t *Table) RegisterAlias(alias, target string) {
	t.aliases[alias] = target
}

// Lookup returns the element registered under the exact ID or alias.
func (t *Table) Lookup(id string) (model.Element, bool) {
	if el, ok := t.byID[id]; ok {
		return el, true
	}
	if target, ok := t.aliases[id]; ok {
		el, ok := t.byID[target]
		return el, ok
	}
	return model.Element{}, false
}

// All exposes the full id→element map for bulk operations such as the
// post-build validation scan. Callers must treat it as read-only.
func (t *Table) All() map[string]model.Element {
	return t.byID
}

// IDs returns every registered element ID in registration order.
func (t *Table) IDs() []string {
	return t.order
}

// Resolve turns a raw reference into an element. Absence is returned, never
// raised; when opts.Subject is set the failure is also reported to the sink.
func (t *Table) Resolve(ref string, scope Scope, opts Options) (model.Element, bool) {
	if el, ok := t.resolve(ref, scope, opts.SearchByName); ok {
		return el, true
	}
	if opts.Subject != nil {
		t.sink.Errorf(opts.Subject, "unresolved reference %q", ref)
	}
	return model.Element{}, false
}

func (t *Table) resolve(ref string, scope Scope, byName bool) (model.Element, bool) {
	switch ref {
	case KeywordThis:
		if scope.CurrentID == "" {
			return model.Element{}, false
		}
		return t.Lookup(scope.CurrentID)
	case KeywordParent:
		if scope.CurrentID == "" {
			return model.Element{}, false
		}
		current, ok := t.Lookup(scope.CurrentID)
		if !ok || current.ParentID == "" {
			return model.Element{}, false
		}
		return t.Lookup(current.ParentID)
	}

	if el, ok := t.Lookup(ref); ok {
		return el, true
	}

	if byName {
		if el, ok := t.lookupByName(ref); ok {
			return el, true
		}
	}

	if strings.Contains(ref, PathSeparator) {
		return t.resolvePath(ref, scope, byName)
	}

	return model.Element{}, false
}

// lookupByName tries the registered-name map, then a case-sensitive scan,
// then a case-insensitive scan. Scans keep the last match so their result is
// consistent with the map's last-registration-wins rule, and skip container
// instances for the same reason Register does.
func (t *Table) lookupByName(name string) (model.Element, bool) {
	if id, ok := t.byName[name]; ok {
		if el, ok := t.byID[id]; ok {
			return el, true
		}
	}
	var found model.Element
	ok := false
	for _, id := range t.order {
		el := t.byID[id]
		if el.Kind != model.ContainerInstance && el.Name == name {
			found, ok = el, true
		}
	}
	if ok {
		return found, true
	}
	for _, id := range t.order {
		el := t.byID[id]
		if el.Kind != model.ContainerInstance && strings.EqualFold(el.Name, name) {
			found, ok = el, true
		}
	}
	return found, ok
}

// resolvePath resolves a dot-separated composite reference. The first
// segment resolves like a plain reference; each further segment must match a
// child element's name, with a case-insensitive fallback. The whole path
// fails if any segment is unmatched.
func (t *Table) resolvePath(ref string, scope Scope, byName bool) (model.Element, bool) {
	segments := strings.Split(ref, PathSeparator)
	current, ok := t.resolve(segments[0], scope, byName)
	if !ok {
		return model.Element{}, false
	}
	for _, segment := range segments[1:] {
		current, ok = t.childByName(current.ID, segment)
		if !ok {
			return model.Element{}, false
		}
	}
	return current, true
}

// childByName finds a child of parentID (by ParentID equality) whose name
// matches the segment, preferring an exact match over a case-insensitive one.
func (t *Table) childByName(parentID, segment string) (model.Element, bool) {
	var folded model.Element
	foldedOK := false
	for _, id := range t.order {
		el := t.byID[id]
		if el.ParentID != parentID {
			continue
		}
		if el.Name == segment {
			return el, true
		}
		if strings.EqualFold(el.Name, segment) {
			folded, foldedOK = el, true
		}
	}
	return folded, foldedOK
}
