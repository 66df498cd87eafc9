package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestRenderCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", "Buy milk", "Walk dog"})

	assert.NilError(t, cmd.Execute())

	doc := out.String()
	assert.Assert(t, is.Contains(doc, "<h1>Todo App</h1>"))
	assert.Assert(t, is.Contains(doc, "<span>Buy milk</span>"))
	assert.Assert(t, is.Contains(doc, "<span>Walk dog</span>"))
}

func TestRenderCommand_ConfigFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "todo.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("ui:\n  title: Groceries\n"), 0644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "render"})

	assert.NilError(t, cmd.Execute())
	assert.Assert(t, is.Contains(out.String(), "<h1>Groceries</h1>"))
}

func TestRenderCommand_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("ui: [unclosed\n"), 0644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-c", path, "render"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "loading config")
}

func TestRenderCommand_EmptyPlaceholderFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "todo.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("ui:\n  placeholder: \"\"\n"), 0644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-c", path, "render"})

	assert.NilError(t, cmd.Execute())
	assert.Assert(t, is.Contains(out.String(), `placeholder="What do you want to do?"`))
}
