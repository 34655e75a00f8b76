package model

// Model owns the element tree. Elements holds the root elements (people,
// software systems, deployment environments, and top-level groups) in
// declaration order; everything else is reachable through Children.
type Model struct {
	Elements []Element
}

// walk visits every element reachable from the model, depth first, in
// declaration order.
func (m *Model) walk(visit func(Element)) {
	var rec func(e Element)
	rec = func(e Element) {
		visit(e)
		for _, c := range e.Children {
			rec(c)
		}
	}
	for _, e := range m.Elements {
		rec(e)
	}
}

// AllElements returns every element reachable from the model, depth first.
func (m *Model) AllElements() []Element {
	var out []Element
	m.walk(func(e Element) { out = append(out, e) })
	return out
}

// ElementByID finds an element anywhere in the tree by its unique ID. When
// an ID was declared twice (a reported defect in the input) the later
// declaration wins, matching the symbol table's precedence.
func (m *Model) ElementByID(id string) (Element, bool) {
	var found Element
	ok := false
	m.walk(func(e Element) {
		if e.ID == id {
			found, ok = e, true
		}
	})
	return found, ok
}

// collect returns the reachable elements of one kind, descending into groups
// but not into other containers (a person inside a group is top level for
// display purposes; a component inside a container is not a system).
func (m *Model) collect(k Kind) []Element {
	var out []Element
	var rec func(es []Element)
	rec = func(es []Element) {
		for _, e := range es {
			if e.Kind == k {
				out = append(out, e)
			}
			if e.Kind == Group {
				rec(e.Children)
			}
		}
	}
	rec(m.Elements)
	return out
}

// People returns the model's people, including those declared inside groups.
func (m *Model) People() []Element {
	return m.collect(Person)
}

// SoftwareSystems returns the model's software systems, including those
// declared inside groups.
func (m *Model) SoftwareSystems() []Element {
	return m.collect(SoftwareSystem)
}

// DeploymentEnvironments returns the model's deployment environments.
func (m *Model) DeploymentEnvironments() []Element {
	return m.collect(DeploymentEnvironment)
}

// AllRelationships returns every relationship stored anywhere in the tree,
// in element declaration order.
func (m *Model) AllRelationships() []Relationship {
	var out []Relationship
	m.walk(func(e Element) {
		out = append(out, e.Relationships...)
	})
	return out
}

// ModeledRelationships resolves both endpoints of every relationship. A
// relationship whose endpoint no longer resolves is returned with a zero
// element for that side; the builder's validation pass reports those.
func (m *Model) ModeledRelationships() []ModeledRelationship {
	var out []ModeledRelationship
	for _, r := range m.AllRelationships() {
		src, _ := m.ElementByID(r.SourceID)
		dst, _ := m.ElementByID(r.DestinationID)
		out = append(out, ModeledRelationship{Relationship: r, Source: src, Destination: dst})
	}
	return out
}
