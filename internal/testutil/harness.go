// Package testutil provides the shared build harness for tests: inline DSL
// source in, finished workspace plus captured diagnostics out.
package testutil

import (
	"context"
	"testing"

	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/diag"
	"github.com/vk/archgridgo/internal/hcladapter"
	"github.com/vk/archgridgo/internal/model"
	"github.com/vk/archgridgo/internal/workspace"
)

// BuildResult holds the outcomes of a source-to-workspace build.
type BuildResult struct {
	File      *ast.File
	Workspace *model.Workspace
	Sink      *diag.Sink
}

// Errors returns the summaries of all error-severity diagnostics.
func (r *BuildResult) Errors() []string {
	return r.summaries(diag.Error)
}

// Warnings returns the summaries of all warning-severity diagnostics.
func (r *BuildResult) Warnings() []string {
	return r.summaries(diag.Warning)
}

// Infos returns the summaries of all info-severity diagnostics.
func (r *BuildResult) Infos() []string {
	return r.summaries(diag.Info)
}

func (r *BuildResult) summaries(sev diag.Severity) []string {
	var out []string
	for _, d := range r.Sink.All() {
		if d.Severity == sev {
			out = append(out, d.Summary)
		}
	}
	return out
}

// ParseSource parses inline DSL source into an AST without building.
func ParseSource(t *testing.T, source string) (*ast.File, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	file := hcladapter.NewLoader().ParseSource(context.Background(), "test.hcl", []byte(source), sink)
	return file, sink
}

// BuildSource runs the full pipeline over inline DSL source.
func BuildSource(t *testing.T, source string) *BuildResult {
	t.Helper()
	ctx := context.Background()
	sink := diag.NewSink()
	file := hcladapter.NewLoader().ParseSource(ctx, "test.hcl", []byte(source), sink)
	ws := workspace.Build(ctx, file, sink)
	return &BuildResult{File: file, Workspace: ws, Sink: sink}
}
