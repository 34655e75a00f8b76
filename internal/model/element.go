package model

// Kind discriminates the closed set of element variants.
type Kind int

const (
	Person Kind = iota
	SoftwareSystem
	Container
	Component
	DeploymentEnvironment
	DeploymentNode
	InfrastructureNode
	ContainerInstance
	Group
)

// String returns the human-readable kind name, which doubles as the default
// tag injected by the element factory.
func (k Kind) String() string {
	switch k {
	case Person:
		return "Person"
	case SoftwareSystem:
		return "Software System"
	case Container:
		return "Container"
	case Component:
		return "Component"
	case DeploymentEnvironment:
		return "Deployment Environment"
	case DeploymentNode:
		return "Deployment Node"
	case InfrastructureNode:
		return "Infrastructure Node"
	case ContainerInstance:
		return "Container Instance"
	case Group:
		return "Group"
	default:
		return "Unknown"
	}
}

// HasTechnology reports whether this kind carries a technology field.
func (k Kind) HasTechnology() bool {
	switch k {
	case Container, Component, DeploymentNode, InfrastructureNode:
		return true
	default:
		return false
	}
}

// Element is a single node of the architecture model. One struct covers all
// kinds; fields that do not apply to a kind stay zero.
type Element struct {
	Kind        Kind
	ID          string
	Name        string
	Description string

	// Technology is set only for kinds where HasTechnology is true.
	Technology string

	// Location defaults to "Internal" for people and software systems.
	Location string

	// Tags preserve insertion order; membership has set semantics.
	Tags       []string
	Properties map[string]string

	// ParentID is a weak reference to the structurally containing element.
	// Empty for root elements.
	ParentID string

	// ContainerID is set only on container instances: the container the
	// instance deploys.
	ContainerID string

	// Relationships are the outgoing relationships, in declaration order.
	Relationships []Relationship

	// Children are the owned child elements, in declaration order.
	Children []Element
}

// HasTag reports whether the element carries the given tag.
func (e Element) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the element carries at least one of the tags.
func (e Element) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if e.HasTag(t) {
			return true
		}
	}
	return false
}

// WithRelationship returns a copy of the element with the relationship
// appended. The receiver's slice is never aliased.
func (e Element) WithRelationship(r Relationship) Element {
	rels := make([]Relationship, len(e.Relationships), len(e.Relationships)+1)
	copy(rels, e.Relationships)
	e.Relationships = append(rels, r)
	return e
}

// WithChild returns a copy of the element with the child appended. The
// receiver's slice is never aliased.
func (e Element) WithChild(child Element) Element {
	children := make([]Element, len(e.Children), len(e.Children)+1)
	copy(children, e.Children)
	e.Children = append(children, child)
	return e
}

// WithChildReplaced returns a copy of the element with the child at index i
// replaced. Untouched siblings are shared structurally via the copied slice
// header's backing array being new but their values unchanged.
func (e Element) WithChildReplaced(i int, child Element) Element {
	children := make([]Element, len(e.Children))
	copy(children, e.Children)
	children[i] = child
	e.Children = children
	return e
}
