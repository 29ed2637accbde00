package ruleset

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_LoadYAMLEnvelope(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "adult.yaml", `
name: adult-user
description: Active users over 18
tags: [access, core]
rule:
  operator: and
  args:
    - operator: eq
      args: [user.status, active]
    - operator: gt
      args: [user.age, 18]
`)

	source := NewFileSource(dir, nil, quietLogger())
	rules, err := source.Load()
	require.NoError(t, err)
	require.Len(t, rules, 1)

	rl := rules[0]
	assert.Equal(t, "adult-user", rl.Name)
	assert.Equal(t, "Active users over 18", rl.Description)
	assert.Equal(t, []string{"access", "core"}, rl.Tags)
	assert.NotEqual(t, "", rl.ID.String())

	ctx := map[string]any{"user": map[string]any{"status": "active", "age": 25}}
	assert.True(t, rl.Evaluate(ctx))
	ctx = map[string]any{"user": map[string]any{"status": "active", "age": 15}}
	assert.False(t, rl.Evaluate(ctx))
}

func TestFileSource_LoadBareJSONDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "has-admin.json",
		`{"operator": "any", "args": ["user.roles", {"operator": "eq", "args": ["name", "admin"]}]}`)

	source := NewFileSource(dir, nil, quietLogger())
	rules, err := source.Load()
	require.NoError(t, err)
	require.Len(t, rules, 1)

	// A bare document takes its name from the file.
	assert.Equal(t, "has-admin", rules[0].Name)

	ctx := map[string]any{
		"user": map[string]any{"roles": []any{map[string]any{"name": "admin"}}},
	}
	assert.True(t, rules[0].Evaluate(ctx))
}

func TestFileSource_LoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "one.yml", `
rule:
  operator: eq
  args: [user.plan, pro]
`)

	source := NewFileSource(path, nil, quietLogger())
	rules, err := source.Load()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "one", rules[0].Name)
	assert.Equal(t, path, rules[0].SourceFile)
}

func TestFileSource_SkipsBadFilesInDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `{"operator": "eq", "args": [1, 1]}`)
	writeFile(t, dir, "unknown-op.json", `{"operator": "xor", "args": [1, 1]}`)
	writeFile(t, dir, "broken.yaml", `: not yaml`)
	writeFile(t, dir, "notes.txt", `ignored entirely`)

	source := NewFileSource(dir, nil, quietLogger())
	rules, err := source.Load()
	require.NoError(t, err, "bad files must be skipped, not fatal")
	require.Len(t, rules, 1)
	assert.Equal(t, "good", rules[0].Name)
}

func TestFileSource_SingleFileErrorIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"operator": "xor", "args": []}`)

	source := NewFileSource(path, nil, quietLogger())
	_, err := source.Load()
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}

func TestFileSource_EnvelopeWithoutRule(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.yaml", `name: no-document`)

	source := NewFileSource(path, nil, quietLogger())
	_, err := source.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "rule" document`)
}

func TestFileSource_MissingPath(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "nope"), nil, quietLogger())
	_, err := source.Load()
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestFileSource_WalksNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "access")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeFile(t, dir, "top.json", `{"operator": "eq", "args": [1, 1]}`)
	writeFile(t, sub, "nested.json", `{"operator": "eq", "args": [2, 2]}`)

	source := NewFileSource(dir, nil, quietLogger())
	rules, err := source.Load()
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}
