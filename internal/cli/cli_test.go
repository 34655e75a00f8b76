package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_PositionalPath(t *testing.T) {
	var out bytes.Buffer
	cfg, done, err := Parse([]string{"workspace.hcl"}, &out)

	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, "workspace.hcl", cfg.Path)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestParse_FlagTakesPrecedenceOverPositional(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-workspace", "a.hcl", "b.hcl"}, &out)

	require.NoError(t, err)
	require.Equal(t, "a.hcl", cfg.Path)

	cfg, _, err = Parse([]string{"-w", "short.hcl"}, &out)
	require.NoError(t, err)
	require.Equal(t, "short.hcl", cfg.Path)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, done, err := Parse(nil, &out)

	require.NoError(t, err)
	require.True(t, done)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-log-format", "xml", "ws.hcl"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-log-level", "loud", "ws.hcl"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func writeWorkspace(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ws.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRun_SuccessPrintsSummary(t *testing.T) {
	path := writeWorkspace(t, `
workspace {
  name = "Demo"

  model {
    person "user" {
      name = "User"
    }
  }
}
`)

	var out bytes.Buffer
	err := Run(context.Background(), &Config{Path: path, LogFormat: "text", LogLevel: "error"}, &out)

	require.NoError(t, err)
	require.Contains(t, out.String(), `workspace "Demo": 1 elements, 0 relationships, 0 views`)
}

func TestRun_BuildErrorsExitOne(t *testing.T) {
	path := writeWorkspace(t, `
workspace {
  name = "Demo"

  model {
    person "user" {
      name = "User"

      relationship {
        destination = "ghost"
      }
    }
  }
}
`)

	var out bytes.Buffer
	err := Run(context.Background(), &Config{Path: path, LogFormat: "text", LogLevel: "error"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, out.String(), `unresolved reference "ghost"`)
}

func TestRun_UnreadableFileExitTwo(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), &Config{Path: filepath.Join(t.TempDir(), "missing.hcl"), LogFormat: "text", LogLevel: "error"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestExitError_Error(t *testing.T) {
	err := error(&ExitError{Code: 1, Message: "boom"})
	require.Equal(t, "boom", err.Error())
	require.False(t, errors.Is(err, context.Canceled))
}
