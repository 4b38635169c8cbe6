package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_Missing(t *testing.T) {
	link := Inspect(filepath.Join(t.TempDir(), "editor"))

	assert.False(t, link.Configured())
	assert.Empty(t, link.Target)
	assert.Empty(t, link.Resolved)
	assert.False(t, link.PointsTo("/usr/bin/vim"))
}

func TestInspect_RegularFileIsNotConfigured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	assert.False(t, Inspect(path).Configured())
}

func TestInspect_Chain(t *testing.T) {
	dir := t.TempDir()
	vim := filepath.Join(dir, "vim.basic")
	require.NoError(t, os.WriteFile(vim, nil, 0o755))
	vimLink := filepath.Join(dir, "vim")
	require.NoError(t, os.Symlink("vim.basic", vimLink))
	editor := filepath.Join(dir, "editor")
	require.NoError(t, os.Symlink(vimLink, editor))

	link := Inspect(editor)

	require.True(t, link.Configured())
	assert.Equal(t, vimLink, link.Target, "Target is one level only")

	wantResolved, ok := Canonical(vim)
	require.True(t, ok)
	assert.Equal(t, wantResolved, link.Resolved)

	assert.True(t, link.PointsTo(vim))
	assert.True(t, link.PointsTo(vimLink), "both ends are canonicalized")
	assert.False(t, link.PointsTo(filepath.Join(dir, "nano")))
}

func TestInspect_Dangling(t *testing.T) {
	dir := t.TempDir()
	editor := filepath.Join(dir, "editor")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), editor))

	link := Inspect(editor)

	assert.True(t, link.Configured())
	assert.Equal(t, filepath.Join(dir, "gone"), link.Target)
	assert.Empty(t, link.Resolved)
	assert.False(t, link.PointsTo(filepath.Join(dir, "gone")))
}

func TestCanonical(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	got, ok := Canonical(filepath.Join(dir, ".", "f"))
	require.True(t, ok)
	want, _ := filepath.EvalSymlinks(file)
	assert.Equal(t, want, got)

	_, ok = Canonical(filepath.Join(dir, "missing"))
	assert.False(t, ok)
}
