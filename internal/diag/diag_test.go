package diag

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
)

func TestSink_AccumulatesInOrder(t *testing.T) {
	sink := NewSink()
	sink.Errorf(nil, "first")
	sink.Warnf(nil, "second")
	sink.Infof(nil, "third")

	diags := sink.All()
	require.Len(t, diags, 3)
	require.Equal(t, "first", diags[0].Summary)
	require.Equal(t, Warning, diags[1].Severity)
	require.Equal(t, Info, diags[2].Severity)

	require.True(t, sink.HasErrors())
	require.Equal(t, 1, sink.Count(Error))
	require.Equal(t, 1, sink.Count(Warning))
}

func TestSink_NoErrors(t *testing.T) {
	sink := NewSink()
	sink.Warnf(nil, "only a warning")
	require.False(t, sink.HasErrors())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity: Error,
		Summary:  "unresolved reference",
		Subject:  &hcl.Range{Filename: "ws.hcl", Start: hcl.Pos{Line: 12, Column: 3}},
	}
	require.Equal(t, "error: unresolved reference (ws.hcl:12,3)", d.String())

	d = Diagnostic{Severity: Info, Summary: "note"}
	require.Equal(t, "info: note", d.String())
}

func TestSink_ExtendHCL(t *testing.T) {
	sink := NewSink()
	sink.ExtendHCL(hcl.Diagnostics{
		{Severity: hcl.DiagError, Summary: "bad syntax", Detail: "unexpected token"},
		{Severity: hcl.DiagWarning, Summary: "odd but fine"},
	})

	diags := sink.All()
	require.Len(t, diags, 2)
	require.Equal(t, Error, diags[0].Severity)
	require.Equal(t, "bad syntax: unexpected token", diags[0].Summary)
	require.Equal(t, Warning, diags[1].Severity)
}
