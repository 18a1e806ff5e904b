package ports

// PathResolver turns a command name into the absolute path of an executable.
type PathResolver interface {
	// Resolve returns the canonical absolute path for name, or an error
	// wrapping pathresolution.ErrNotFound when nothing matches.
	Resolve(name string) (string, error)

	// SearchPath returns the ordered directories Resolve would consult.
	SearchPath() []string
}
