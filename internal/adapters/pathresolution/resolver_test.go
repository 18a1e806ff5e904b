package pathresolution

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/hsh/internal/repositories/environment"
)

// makeExecutable creates an empty executable file at dir/name and returns its canonical path.
func makeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	canonical, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return canonical
}

func TestNewResolver_PanicsOnNilEnvironment(t *testing.T) {
	assert.Panics(t, func() { NewResolver(nil, "/bin") })
}

func TestResolver_FallbackDirWins(t *testing.T) {
	fallback := t.TempDir()
	pathDir := t.TempDir()
	want := makeExecutable(t, fallback, "x")
	makeExecutable(t, pathDir, "x")

	r := NewResolver(environment.New([]string{"PATH=" + pathDir}), fallback)

	got, err := r.Resolve("x")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolver_FirstPathEntryWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	makeExecutable(t, second, "tool")
	want := makeExecutable(t, first, "tool")

	env := environment.New([]string{"PATH=" + first + ":" + second})
	r := NewResolver(env, t.TempDir())

	got, err := r.Resolve("tool")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolver_LiteralPathsBypassSearch(t *testing.T) {
	pathDir := t.TempDir()
	makeExecutable(t, pathDir, "exist")
	r := NewResolver(environment.New([]string{"PATH=" + pathDir}), t.TempDir())

	_, err := r.Resolve("/does/not/exist")
	assert.ErrorIs(t, err, ErrNotFound)

	want := makeExecutable(t, pathDir, "literal")
	got, err := r.Resolve(filepath.Join(pathDir, "literal"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolver_RelativeLiteralPath(t *testing.T) {
	dir := t.TempDir()
	want := makeExecutable(t, dir, "script")
	chdir(t, dir)

	r := NewResolver(environment.New(nil), t.TempDir())

	got, err := r.Resolve("./script")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolver_CanonicalizesSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := makeExecutable(t, dir, "real")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	r := NewResolver(environment.New([]string{"PATH=" + dir}), t.TempDir())

	got, err := r.Resolve("link")
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestResolver_NotFound(t *testing.T) {
	r := NewResolver(environment.New([]string{"PATH=" + t.TempDir()}), t.TempDir())

	for _, name := range []string{"notacommand123", ""} {
		_, err := r.Resolve(name)
		assert.ErrorIs(t, err, ErrNotFound, "Resolve(%q)", name)
	}
}

func TestResolver_SearchPath(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		fallback string
		want     []string
	}{
		{
			name:     "fallback first",
			entries:  []string{"PATH=/usr/bin:/usr/local/bin"},
			fallback: "/bin",
			want:     []string{"/bin", "/usr/bin", "/usr/local/bin"},
		},
		{
			name:     "empty entries skipped",
			entries:  []string{"PATH=:/usr/bin::"},
			fallback: "/bin",
			want:     []string{"/bin", "/usr/bin"},
		},
		{
			name:     "PATH unset",
			entries:  nil,
			fallback: "/bin",
			want:     []string{"/bin"},
		},
		{
			name:     "fallback repeated in PATH",
			entries:  []string{"PATH=/bin"},
			fallback: "/bin",
			want:     []string{"/bin", "/bin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(environment.New(tt.entries), tt.fallback)
			assert.Equal(t, tt.want, r.SearchPath())
		})
	}
}

func TestResolver_ReadsPathOnEveryCall(t *testing.T) {
	dir := t.TempDir()
	want := makeExecutable(t, dir, "late")
	env := environment.New(nil)
	r := NewResolver(env, t.TempDir())

	_, err := r.Resolve("late")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, env.Set("PATH", dir))
	got, err := r.Resolve("late")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory, sets PWD, and restores the old directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	if !filepath.IsAbs(dir) {
		dir, err = os.Getwd()
		require.NoError(t, err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatal(err)
		}
	})
}
