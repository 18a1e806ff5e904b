package pathresolution

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/hsh/internal/core/ports"
)

// ErrNotFound is returned when no candidate path exists for a command name.
var ErrNotFound = errors.New("no such file or directory")

// Resolver searches the fallback directory and then PATH for executables.
type Resolver struct {
	env         ports.Environment
	fallbackDir string
}

// NewResolver creates a new Resolver. PATH is read from env on every call.
// It panics if env is nil.
func NewResolver(env ports.Environment, fallbackDir string) ports.PathResolver {
	if env == nil {
		panic("environment cannot be nil")
	}
	return &Resolver{env: env, fallbackDir: fallbackDir}
}

/*
Resolve implements the ports.PathResolver interface.

A name containing a '/' is taken literally and only checked for existence.
Any other name is looked up in SearchPath order and the first existing
<dir>/<name> wins. Existence is all that is checked; whether the file can
actually be executed is left to the process executor.
*/
func (r *Resolver) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty command name: %w", ErrNotFound)
	}

	if strings.Contains(name, "/") {
		if !exists(name) {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return canonicalize(name)
	}

	for _, dir := range r.SearchPath() {
		candidate := filepath.Join(dir, name)
		if exists(candidate) {
			return canonicalize(candidate)
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// SearchPath implements the ports.PathResolver interface. The fallback
// directory always comes first; empty PATH entries are skipped.
func (r *Resolver) SearchPath() []string {
	path, _ := r.env.Get("PATH")
	return buildSearchPath(r.fallbackDir, path)
}
