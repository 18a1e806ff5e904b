package logger

import (
	"os"
	"strconv"

	"github.com/fatih/color"
)

// Painter turns a message into its colored form.
type Painter func(a ...interface{}) string

// General Purpose Colors
var (
	InfoColor    = color.New(envColor("HSH_COLOR_CYAN", color.FgCyan)).SprintFunc()
	WarningColor = color.New(envColor("HSH_COLOR_YELLOW", color.FgYellow)).SprintFunc()
	ErrorColor   = color.New(envColor("HSH_COLOR_RED", color.FgRed)).SprintFunc()
	PromptColor  = color.New(envColor("HSH_COLOR_MAGENTA", color.FgMagenta), color.Bold).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For verbose tracing
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// envColor lets users override a palette entry with a numeric SGR attribute.
func envColor(env string, defaultColor color.Attribute) color.Attribute {
	override, err := strconv.Atoi(os.Getenv(env))
	if err == nil {
		return color.Attribute(override)
	}
	return defaultColor
}
