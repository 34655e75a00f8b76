// Package workspace orchestrates a single-shot build: AST in, finished
// Workspace plus collected diagnostics out. The build never terminates the
// process on a domain error; it always attempts to produce a complete
// workspace and leaves fatality decisions to the caller.
package workspace

import (
	"context"

	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/builder"
	"github.com/vk/archgridgo/internal/ctxlog"
	"github.com/vk/archgridgo/internal/diag"
	"github.com/vk/archgridgo/internal/model"
	"github.com/vk/archgridgo/internal/views"
)

// Build runs the full pipeline: model registration and linking, view and
// style conversion, view population, workspace validation.
func Build(ctx context.Context, file *ast.File, sink *diag.Sink) *model.Workspace {
	logger := ctxlog.FromContext(ctx)

	for _, inc := range file.Includes {
		r := inc.DefRange
		sink.Infof(&r, "include directive recognized but file inclusion is not implemented; %q was not loaded", inc.Path)
	}

	if file.Workspace == nil {
		sink.Errorf(nil, "no workspace declared; nothing to build")
		return &model.Workspace{}
	}
	wn := file.Workspace

	result := builder.New(sink).BuildModel(ctx, wn.Model)

	ws := &model.Workspace{
		Name:          wn.Name,
		Description:   wn.Description,
		Model:         result.Model,
		Views:         views.Convert(wn.Views, sink),
		Styles:        views.ConvertStyles(wn.Styles, sink),
		Configuration: wn.Configuration,
		Properties:    wn.Properties,
	}
	if wn.Branding != nil {
		ws.Branding = &model.Branding{Logo: wn.Branding.Logo, Font: wn.Branding.Font}
	}
	if wn.Terminology != nil {
		ws.Terminology = &model.Terminology{
			Person:             wn.Terminology.Person,
			SoftwareSystem:     wn.Terminology.SoftwareSystem,
			Container:          wn.Terminology.Container,
			Component:          wn.Terminology.Component,
			DeploymentNode:     wn.Terminology.DeploymentNode,
			InfrastructureNode: wn.Terminology.InfrastructureNode,
			Relationship:       wn.Terminology.Relationship,
		}
	}

	views.Populate(ctx, ws, result.Table, sink)

	if ws.Name == "" {
		r := wn.DefRange
		sink.Warnf(&r, "workspace has no name")
	}

	logger.Info("Build complete.",
		"elements", len(ws.Model.AllElements()),
		"relationships", len(ws.Model.AllRelationships()),
		"views", len(ws.Views),
		"errors", sink.Count(diag.Error),
		"warnings", sink.Count(diag.Warning))
	return ws
}
