package builder

import (
	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/model"
)

// Factory constructors are pure: AST node in, immutable element record out.
// Registration and tree insertion are the builder's responsibility, so every
// call site gets identical default-tag and location handling.

// BaseTag is carried by every element.
const BaseTag = "Element"

// DefaultLocation is assumed for people and software systems that do not
// declare one.
const DefaultLocation = "Internal"

// newElement builds the kind-independent part of an element.
func newElement(kind model.Kind, n *ast.Element, parentID string) model.Element {
	el := model.Element{
		Kind:        kind,
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		ParentID:    parentID,
		Tags:        defaultTags(kind, n.Tags),
		Properties:  copyProperties(n.Properties),
	}
	if el.Name == "" {
		el.Name = n.ID
	}
	if kind.HasTechnology() {
		el.Technology = n.Technology
	}
	if kind == model.Person || kind == model.SoftwareSystem {
		el.Location = n.Location
		if el.Location == "" {
			el.Location = DefaultLocation
		}
	}
	return el
}

// defaultTags prepends the implicit tags ("Element" plus the kind tag) and
// appends the declared ones, keeping insertion order and set semantics.
func defaultTags(kind model.Kind, declared []string) []string {
	tags := []string{BaseTag, kind.String()}
	for _, t := range declared {
		if t == "" {
			continue
		}
		dup := false
		for _, have := range tags {
			if have == t {
				dup = true
				break
			}
		}
		if !dup {
			tags = append(tags, t)
		}
	}
	return tags
}

func copyProperties(props map[string]string) map[string]string {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// NewPerson constructs a person element.
func NewPerson(n *ast.Person, parentID string) model.Element {
	return newElement(model.Person, &n.Element, parentID)
}

// NewSoftwareSystem constructs a software system element.
func NewSoftwareSystem(n *ast.SoftwareSystem, parentID string) model.Element {
	return newElement(model.SoftwareSystem, &n.Element, parentID)
}

// NewContainer constructs a container element.
func NewContainer(n *ast.Container, parentID string) model.Element {
	return newElement(model.Container, &n.Element, parentID)
}

// NewComponent constructs a component element.
func NewComponent(n *ast.Component, parentID string) model.Element {
	return newElement(model.Component, &n.Element, parentID)
}

// NewGroup constructs a group element.
func NewGroup(n *ast.Group, parentID string) model.Element {
	return newElement(model.Group, &n.Element, parentID)
}

// NewDeploymentEnvironment constructs a deployment environment element.
func NewDeploymentEnvironment(n *ast.DeploymentEnvironment, parentID string) model.Element {
	return newElement(model.DeploymentEnvironment, &n.Element, parentID)
}

// NewDeploymentNode constructs a deployment node element.
func NewDeploymentNode(n *ast.DeploymentNode, parentID string) model.Element {
	return newElement(model.DeploymentNode, &n.Element, parentID)
}

// NewInfrastructureNode constructs an infrastructure node element.
func NewInfrastructureNode(n *ast.InfrastructureNode, parentID string) model.Element {
	return newElement(model.InfrastructureNode, &n.Element, parentID)
}

// NewContainerInstance constructs a container instance element. ContainerID
// holds the raw reference until the linking pass resolves it, and the display
// name is copied from the resolved container at the same time. Inheriting the
// reference as a name here would register the instance under the container's
// own name before resolution runs.
func NewContainerInstance(n *ast.ContainerInstance, parentID string) model.Element {
	el := newElement(model.ContainerInstance, &n.Element, parentID)
	el.ContainerID = n.ContainerRef
	return el
}
