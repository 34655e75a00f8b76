package hcladapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/diag"
)

func parse(t *testing.T, src string) (*ast.File, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	file := NewLoader().ParseSource(context.Background(), "test.hcl", []byte(src), sink)
	require.NotNil(t, file)
	return file, sink
}

func TestParseSource_FullWorkspace(t *testing.T) {
	file, sink := parse(t, `
workspace {
  name        = "Big Bank"
  description = "Internet banking"

  model {
    alias "backend" {
      target = "internet_banking"
    }

    person "customer" {
      name = "Personal Banking Customer"
      tags = ["External"]
    }

    software_system "internet_banking" {
      name = "Internet Banking System"

      container "api" {
        name       = "API Application"
        technology = "Go"

        component "signin" {
          name = "Sign In Controller"
        }
      }

      relationship {
        destination = "customer"
        description = "Sends notifications to"
      }
    }

    relationship {
      source      = "customer"
      destination = "internet_banking"
      description = "Uses"
      technology  = "HTTPS"
      tags        = ["Async"]
    }

    deployment_environment "live" {
      name = "Live"

      deployment_node "aws" {
        name = "Amazon Web Services"

        infrastructure_node "lb" {
          name = "Load Balancer"
        }

        container_instance "api_1" {
          container = "api"
        }
      }
    }
  }

  views {
    system_context "context" {
      software_system = "internet_banking"
      include         = ["*"]
      auto_layout     = "lr"

      animation {
        elements = ["customer"]
      }
      animation {
        elements = ["internet_banking", "api"]
      }
    }

    filtered "externals" {
      base_view = "context"
      mode      = "include"
      tags      = ["External"]
    }
  }

  styles {
    element "Person" {
      shape      = "person"
      background = "#08427b"
      opacity    = 90
    }
    relationship "Async" {
      line_style = "dashed"
      routing    = "orthogonal"
    }
  }

  branding {
    logo = "logo.png"
  }

  terminology {
    person = "Actor"
  }
}
`)

	require.Empty(t, sink.All())
	ws := file.Workspace
	require.NotNil(t, ws)
	require.Equal(t, "Big Bank", ws.Name)
	require.Equal(t, "Internet banking", ws.Description)

	require.Len(t, ws.Model.Nodes, 5)

	alias, ok := ws.Model.Nodes[0].(*ast.Alias)
	require.True(t, ok)
	require.Equal(t, "backend", alias.Name)
	require.Equal(t, "internet_banking", alias.Target)

	customer, ok := ws.Model.Nodes[1].(*ast.Person)
	require.True(t, ok)
	require.Equal(t, "customer", customer.ID)
	require.Equal(t, "Personal Banking Customer", customer.Name)
	require.Equal(t, []string{"External"}, customer.Tags)
	require.Equal(t, "test.hcl", customer.DefRange.Filename)
	require.Equal(t, 11, customer.DefRange.Start.Line)

	sys, ok := ws.Model.Nodes[2].(*ast.SoftwareSystem)
	require.True(t, ok)
	require.Len(t, sys.Children, 2)

	api, ok := sys.Children[0].(*ast.Container)
	require.True(t, ok)
	require.Equal(t, "Go", api.Technology)
	signin, ok := api.Children[0].(*ast.Component)
	require.True(t, ok)
	require.Equal(t, "Sign In Controller", signin.Name)

	nested, ok := sys.Children[1].(*ast.Relationship)
	require.True(t, ok)
	require.Empty(t, nested.Source, "nested relationships leave the source implicit")
	require.Equal(t, "customer", nested.Destination)

	top, ok := ws.Model.Nodes[3].(*ast.Relationship)
	require.True(t, ok)
	require.Equal(t, "customer", top.Source)
	require.Equal(t, "HTTPS", top.Technology)
	require.Equal(t, []string{"Async"}, top.Tags)

	env, ok := ws.Model.Nodes[4].(*ast.DeploymentEnvironment)
	require.True(t, ok)
	node := env.Children[0].(*ast.DeploymentNode)
	require.Len(t, node.Children, 2)
	instance := node.Children[1].(*ast.ContainerInstance)
	require.Equal(t, "api", instance.ContainerRef)

	require.Len(t, ws.Views.Nodes, 2)
	ctx, ok := ws.Views.Nodes[0].(*ast.SystemContextView)
	require.True(t, ok)
	require.Equal(t, "context", ctx.Key)
	require.Equal(t, "internet_banking", ctx.SoftwareSystemRef)
	require.Equal(t, []string{"*"}, ctx.Include)
	require.Equal(t, "lr", ctx.AutoLayout)
	require.Equal(t, [][]string{{"customer"}, {"internet_banking", "api"}}, ctx.Animations)

	filtered, ok := ws.Views.Nodes[1].(*ast.FilteredViewNode)
	require.True(t, ok)
	require.Equal(t, "context", filtered.BaseViewRef)
	require.Equal(t, "include", filtered.Mode)

	require.Len(t, ws.Styles.Elements, 1)
	require.Equal(t, "Person", ws.Styles.Elements[0].Tag)
	require.Equal(t, "person", ws.Styles.Elements[0].Shape)
	require.Equal(t, 90, ws.Styles.Elements[0].Opacity)
	require.Len(t, ws.Styles.Relationships, 1)
	require.Equal(t, "orthogonal", ws.Styles.Relationships[0].Routing)

	require.Equal(t, "logo.png", ws.Branding.Logo)
	require.Equal(t, "Actor", ws.Terminology.Person)
}

func TestParseSource_ScopeMapsToElementRef(t *testing.T) {
	file, sink := parse(t, `
workspace {
  views {
    dynamic "flow" {
      scope = "api"
    }
  }
}
`)
	require.Empty(t, sink.All())
	dyn := file.Workspace.Views.Nodes[0].(*ast.DynamicViewNode)
	require.Equal(t, "api", dyn.ElementRef)
}

func TestParseSource_IncludeDirective(t *testing.T) {
	file, sink := parse(t, `
include "shared.hcl" {}

workspace {
  name = "W"
}
`)
	require.Empty(t, sink.All())
	require.Len(t, file.Includes, 1)
	require.Equal(t, "shared.hcl", file.Includes[0].Path)
}

func TestParseSource_SecondWorkspaceRejected(t *testing.T) {
	file, sink := parse(t, `
workspace {
  name = "first"
}
workspace {
  name = "second"
}
`)
	require.Equal(t, 1, sink.Count(diag.Error))
	require.Contains(t, sink.All()[0].Summary, "only one workspace")
	require.Equal(t, "first", file.Workspace.Name)
}

func TestParseSource_SyntaxErrorStillReturnsAST(t *testing.T) {
	file, sink := parse(t, `
workspace {
  name = "broken
}
`)
	require.True(t, sink.HasErrors())
	require.NotNil(t, file, "a usable AST comes back even from broken source")
}

func TestParseSource_UnknownBlockReported(t *testing.T) {
	file, sink := parse(t, `
workspace {
  model {
    person "user" {}
    widget "w" {}
  }
}
`)
	require.True(t, sink.HasErrors())
	require.Len(t, file.Workspace.Model.Nodes, 1, "the unknown block is dropped, the rest survives")
}

func TestParseSource_WrongAttributeType(t *testing.T) {
	_, sink := parse(t, `
workspace {
  model {
    person "user" {
      tags = "not-a-list"
    }
  }
}
`)
	require.True(t, sink.HasErrors())
}
