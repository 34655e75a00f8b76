package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/diag"
	"github.com/vk/archgridgo/internal/model"
)

func person(id, name string, children ...ast.Node) *ast.Person {
	return &ast.Person{Element: ast.Element{ID: id, Name: name, Children: children}}
}

func system(id, name string, children ...ast.Node) *ast.SoftwareSystem {
	return &ast.SoftwareSystem{Element: ast.Element{ID: id, Name: name, Children: children}}
}

func container(id, name string, children ...ast.Node) *ast.Container {
	return &ast.Container{Element: ast.Element{ID: id, Name: name, Children: children}}
}

func rel(source, destination, description string) *ast.Relationship {
	return &ast.Relationship{Source: source, Destination: destination, Description: description}
}

func buildModel(t *testing.T, nodes ...ast.Node) (Result, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	result := New(sink).BuildModel(context.Background(), &ast.Model{Nodes: nodes})
	return result, sink
}

func TestBuildModel_RegistersHierarchy(t *testing.T) {
	result, sink := buildModel(t,
		person("user", "User"),
		system("sys", "System",
			container("api", "API",
				&ast.Component{Element: ast.Element{ID: "ctrl", Name: "Controller"}},
			),
		),
	)

	require.False(t, sink.HasErrors())
	require.Len(t, result.Model.People(), 1)
	require.Len(t, result.Model.SoftwareSystems(), 1)

	sys := result.Model.SoftwareSystems()[0]
	require.Len(t, sys.Children, 1)
	require.Equal(t, "api", sys.Children[0].ID)
	require.Equal(t, "sys", sys.Children[0].ParentID)
	require.Equal(t, "ctrl", sys.Children[0].Children[0].ID)
}

func TestBuildModel_ForwardReference(t *testing.T) {
	// The relationship is declared lexically before its destination exists;
	// the registration pass must not attempt resolution.
	result, sink := buildModel(t,
		person("user", "User",
			rel("", "System", "uses"),
		),
		system("sys", "System"),
	)

	require.False(t, sink.HasErrors())
	user, ok := result.Model.ElementByID("user")
	require.True(t, ok)
	require.Len(t, user.Relationships, 1)
	require.Equal(t, "user", user.Relationships[0].SourceID)
	require.Equal(t, "sys", user.Relationships[0].DestinationID)
	require.NotEmpty(t, user.Relationships[0].ID)
	require.Equal(t, []string{"Relationship"}, user.Relationships[0].Tags)
}

func TestBuildModel_ParentKeywordDestination(t *testing.T) {
	result, sink := buildModel(t,
		system("sys", "System",
			container("api", "API",
				rel("", "parent", "reports to"),
			),
		),
	)

	require.False(t, sink.HasErrors())
	api, ok := result.Model.ElementByID("api")
	require.True(t, ok)
	require.Len(t, api.Relationships, 1)
	require.Equal(t, "sys", api.Relationships[0].DestinationID)
}

func TestBuildModel_SiblingContextsStayIsolated(t *testing.T) {
	// Both nested relationships use the implicit `this` source; each must
	// resolve against its own element, never a sibling's.
	result, sink := buildModel(t,
		person("user", "User"),
		system("a", "A", rel("", "User", "x")),
		system("b", "B", rel("", "User", "y")),
	)

	require.False(t, sink.HasErrors())
	a, _ := result.Model.ElementByID("a")
	b, _ := result.Model.ElementByID("b")
	require.Len(t, a.Relationships, 1)
	require.Len(t, b.Relationships, 1)
	require.Equal(t, "a", a.Relationships[0].SourceID)
	require.Equal(t, "b", b.Relationships[0].SourceID)
}

func TestBuildModel_TopLevelRelationshipNeedsSource(t *testing.T) {
	_, sink := buildModel(t,
		person("user", "User"),
		rel("", "User", "dangling source"),
	)

	require.True(t, sink.HasErrors())
	require.Contains(t, sink.All()[0].Summary, "must declare a source")
}

func TestBuildModel_UnresolvedEndpointSkipsRelationship(t *testing.T) {
	result, sink := buildModel(t,
		person("user", "User", rel("", "Ghost", "nope")),
	)

	require.Equal(t, 1, sink.Count(diag.Error))
	user, _ := result.Model.ElementByID("user")
	require.Empty(t, user.Relationships, "the relationship is dropped, not wired half-resolved")
}

func TestBuildModel_StructuralPlacement(t *testing.T) {
	result, sink := buildModel(t,
		container("api", "API"),
		system("sys", "System",
			person("p", "Nested Person"),
		),
	)

	require.Equal(t, 2, sink.Count(diag.Error))
	_, ok := result.Model.ElementByID("api")
	require.False(t, ok, "misplaced construct is skipped")
	_, ok = result.Model.ElementByID("p")
	require.False(t, ok)
}

func TestBuildModel_GroupsAreTransparentForPlacement(t *testing.T) {
	result, sink := buildModel(t,
		&ast.Group{Element: ast.Element{ID: "g1", Name: "Org", Children: []ast.Node{
			person("user", "User"),
		}}},
		system("sys", "System",
			&ast.Group{Element: ast.Element{ID: "g2", Name: "Backend", Children: []ast.Node{
				container("api", "API"),
			}}},
		),
	)

	require.False(t, sink.HasErrors())
	api, ok := result.Model.ElementByID("api")
	require.True(t, ok)
	require.Equal(t, "g2", api.ParentID)
	require.Len(t, result.Model.People(), 1, "people inside groups are still people of the model")
}

func TestBuildModel_AliasResolvesLikeID(t *testing.T) {
	result, sink := buildModel(t,
		&ast.Alias{Name: "backend", Target: "sys"},
		system("sys", "System"),
		person("user", "User", rel("", "backend", "uses")),
	)

	require.False(t, sink.HasErrors())
	user, _ := result.Model.ElementByID("user")
	require.Len(t, user.Relationships, 1)
	require.Equal(t, "sys", user.Relationships[0].DestinationID)
}

func TestBuildModel_ContainerInstanceLinks(t *testing.T) {
	result, sink := buildModel(t,
		system("sys", "System", container("api", "API Application")),
		&ast.DeploymentEnvironment{Element: ast.Element{ID: "live", Name: "Live", Children: []ast.Node{
			&ast.DeploymentNode{Element: ast.Element{ID: "aws", Name: "AWS", Children: []ast.Node{
				&ast.ContainerInstance{Element: ast.Element{ID: "api_1"}, ContainerRef: "API Application"},
			}}},
		}}},
	)

	require.False(t, sink.HasErrors())
	require.Zero(t, sink.Count(diag.Warning), "the instance's display name never competes with the container's")
	instance, ok := result.Model.ElementByID("api_1")
	require.True(t, ok)
	require.Equal(t, "api", instance.ContainerID, "raw reference rewritten to the resolved ID")
	require.Equal(t, "API Application", instance.Name)
}

func TestBuildModel_ContainerNameResolvesPastInstances(t *testing.T) {
	// The instance links (and takes the container's display name) before any
	// relationship resolves; a by-name endpoint must still reach the
	// container, not the instance.
	result, sink := buildModel(t,
		system("sys", "System", container("api", "API Application")),
		&ast.DeploymentEnvironment{Element: ast.Element{ID: "live", Name: "Live", Children: []ast.Node{
			&ast.DeploymentNode{Element: ast.Element{ID: "aws", Name: "AWS", Children: []ast.Node{
				&ast.ContainerInstance{Element: ast.Element{ID: "api_1"}, ContainerRef: "API Application"},
			}}},
		}}},
		person("user", "User", rel("", "API Application", "calls")),
	)

	require.False(t, sink.HasErrors())
	user, _ := result.Model.ElementByID("user")
	require.Len(t, user.Relationships, 1)
	require.Equal(t, "api", user.Relationships[0].DestinationID)
}

func TestBuildModel_DuplicateIDWarnsAndSecondWins(t *testing.T) {
	result, sink := buildModel(t,
		person("user", "First"),
		person("user", "Second"),
	)

	require.False(t, sink.HasErrors())
	require.Equal(t, 1, sink.Count(diag.Warning))
	el, ok := result.Table.Lookup("user")
	require.True(t, ok)
	require.Equal(t, "Second", el.Name)

	// The earlier copy leaves the tree, not just the symbol table.
	require.Len(t, result.Model.AllElements(), 1)
	require.Equal(t, "Second", result.Model.Elements[0].Name)
}

func TestBuildModel_DuplicateIDReplacesWholeSubtree(t *testing.T) {
	result, sink := buildModel(t,
		system("sys", "System",
			container("api", "Old API",
				&ast.Component{Element: ast.Element{ID: "ctrl", Name: "Controller"}},
			),
			container("api", "New API"),
		),
	)

	require.Equal(t, 1, sink.Count(diag.Warning))
	api, ok := result.Model.ElementByID("api")
	require.True(t, ok)
	require.Equal(t, "New API", api.Name)
	require.Empty(t, api.Children, "the replaced subtree's children are gone")
	_, ok = result.Model.ElementByID("ctrl")
	require.False(t, ok)
	_, ok = result.Table.Lookup("ctrl")
	require.False(t, ok, "orphaned descendants leave the symbol table too")

	sys, _ := result.Model.ElementByID("sys")
	require.Len(t, sys.Children, 1)
}

func TestValidate_DanglingDestination(t *testing.T) {
	sink := diag.NewSink()
	b := New(sink)

	// A relationship endpoint that vanished after linking is exactly the
	// state the validation scan exists to catch.
	el := model.Element{ID: "a", Kind: model.Person, Name: "A"}
	el = el.WithRelationship(model.Relationship{ID: "r1", SourceID: "a", DestinationID: "ghost"})
	b.table.Register(el)

	b.validate(context.Background())

	require.Equal(t, 1, sink.Count(diag.Error))
	require.Contains(t, sink.All()[0].Summary, `non-existent destination "ghost"`)
}

func TestBuildModel_RelationshipVisibleToLaterResolutions(t *testing.T) {
	// After a relationship is wired, the symbol table must serve the updated
	// element (and ancestors) to subsequent pass-2 resolutions.
	result, sink := buildModel(t,
		system("sys", "System",
			container("api", "API", rel("", "parent", "first")),
		),
		person("user", "User", rel("", "sys.API", "second")),
	)

	require.False(t, sink.HasErrors())
	api, _ := result.Table.Lookup("api")
	require.Len(t, api.Relationships, 1)
	sys, _ := result.Table.Lookup("sys")
	require.Equal(t, "api", sys.Children[0].ID)
	require.Len(t, sys.Children[0].Relationships, 1, "ancestor re-registration carries the update")
}
