package hcladapter

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/ctxlog"
	"github.com/vk/archgridgo/internal/diag"
)

// Loader parses architecture description files into the typed AST.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile reads and parses one file. An unreadable file is an
// infrastructure error; syntax problems inside the file are recoverable and
// land in the sink.
func (l *Loader) LoadFile(ctx context.Context, path string, sink *diag.Sink) (*ast.File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return l.ParseSource(ctx, path, src, sink), nil
}

// ParseSource parses in-memory source. It always returns a usable (possibly
// empty) AST; parse diagnostics are forwarded to the sink.
func (l *Loader) ParseSource(ctx context.Context, filename string, src []byte, sink *diag.Sink) *ast.File {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file", filename, "bytes", len(src))

	file, diags := l.parser.ParseHCL(src, filename)
	sink.ExtendHCL(diags)
	if file == nil || file.Body == nil {
		return &ast.File{}
	}

	d := &decoder{sink: sink}
	out := d.decodeFile(file.Body)
	logger.Debug("HCL loading complete.", "has_workspace", out.Workspace != nil, "includes", len(out.Includes))
	return out
}
