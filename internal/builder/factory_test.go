package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/model"
)

func TestFactory_PersonDefaults(t *testing.T) {
	el := NewPerson(&ast.Person{Element: ast.Element{ID: "user"}}, "")

	require.Equal(t, model.Person, el.Kind)
	require.Equal(t, "user", el.Name, "name defaults to the ID")
	require.Equal(t, []string{"Element", "Person"}, el.Tags)
	require.Equal(t, DefaultLocation, el.Location)
}

func TestFactory_DeclaredTagsAppendWithoutDuplicates(t *testing.T) {
	el := NewSoftwareSystem(&ast.SoftwareSystem{Element: ast.Element{
		ID:   "sys",
		Name: "System",
		Tags: []string{"External", "Software System", "External"},
	}}, "")

	require.Equal(t, []string{"Element", "Software System", "External"}, el.Tags)
}

func TestFactory_TechnologyOnlyWhereItApplies(t *testing.T) {
	container := NewContainer(&ast.Container{Element: ast.Element{ID: "api", Technology: "Go"}}, "sys")
	require.Equal(t, "Go", container.Technology)
	require.Equal(t, "sys", container.ParentID)

	person := NewPerson(&ast.Person{Element: ast.Element{ID: "u", Technology: "Go"}}, "")
	require.Empty(t, person.Technology, "people have no technology")
	require.Empty(t, container.Location, "containers have no location default")
}

func TestFactory_ContainerInstance(t *testing.T) {
	el := NewContainerInstance(&ast.ContainerInstance{
		Element:      ast.Element{ID: "api_1"},
		ContainerRef: "api",
	}, "node")

	require.Equal(t, model.ContainerInstance, el.Kind)
	require.Equal(t, "api", el.ContainerID, "raw reference until the linking pass")
	require.Equal(t, "api_1", el.Name, "the display name arrives at linking time, not here")
}
