/*
Package settings defines the user-tunable knobs of the interpreter.
*/
package settings

const (
	DefaultPrompt      = "#cisfun$ "
	DefaultFallbackDir = "/bin"
)

/*
Settings is loaded from the YAML settings file. Zero values mean "use the
default"; call WithDefaults before use. Color stays nil when unset.
*/
type Settings struct {
	Prompt      string `yaml:"prompt"`
	FallbackDir string `yaml:"fallback_dir"`
	MaxTokens   int    `yaml:"max_tokens"` // 0 means unlimited
	Color       *bool  `yaml:"color"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{}.WithDefaults()
}

// WithDefaults fills every unset field except Color with its default.
func (s Settings) WithDefaults() Settings {
	if s.Prompt == "" {
		s.Prompt = DefaultPrompt
	}
	if s.FallbackDir == "" {
		s.FallbackDir = DefaultFallbackDir
	}
	if s.MaxTokens < 0 {
		s.MaxTokens = 0
	}
	return s
}

// ColorEnabled reports the color preference. An unset preference means on.
func (s Settings) ColorEnabled() bool {
	return s.Color == nil || *s.Color
}
