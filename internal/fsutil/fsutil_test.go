package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsExecutableFile(t *testing.T) {
	dir := t.TempDir()

	exe := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	plain := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0o644))
	sub := filepath.Join(dir, "sub.sh")
	require.NoError(t, os.Mkdir(sub, 0o755))

	assert.True(t, IsExecutableFile(exe))
	assert.False(t, IsExecutableFile(plain))
	assert.False(t, IsExecutableFile(sub), "directories are not executable files")
	assert.False(t, IsExecutableFile(filepath.Join(dir, "missing")))
	assert.False(t, IsExecutable(""))
}

func TestIsExecutableFile_FollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(exe, link))
	dangling := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), dangling))

	assert.True(t, IsExecutableFile(link))
	assert.False(t, IsExecutableFile(dangling))
}

func TestCheckWritable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, CheckWritable(dir))

	err := CheckWritable(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotWritable)
}

func TestCheckWritable_ReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	require.NoError(t, os.Mkdir(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	assert.ErrorIs(t, CheckWritable(dir), ErrNotWritable)
}

func TestLockDir(t *testing.T) {
	dir := t.TempDir()

	lock, err := LockDir(dir)
	require.NoError(t, err)
	require.NoError(t, lock.Unlock())
	require.NoError(t, lock.Unlock(), "second unlock is a no-op")

	// The lock is reusable once released.
	again, err := LockDir(dir)
	require.NoError(t, err)
	require.NoError(t, again.Unlock())

	_, err = LockDir(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
