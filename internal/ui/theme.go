// Package ui provides terminal presentation helpers for exgen:
// theme and color handling, headless-mode detection, and progress
// indicators that degrade to plain log lines without a TTY.
package ui

import "os"

// ColorSet holds the hex colors used by interactive components.
type ColorSet struct {
	Primary   string
	Secondary string
}

// Theme controls color usage for terminal output.
type Theme struct {
	// NoColor disables all color and animation.
	NoColor bool
	Colors  ColorSet
}

// NewTheme builds the default theme. It honors the NO_COLOR convention:
// any non-empty value disables colored output.
func NewTheme() *Theme {
	return &Theme{
		NoColor: os.Getenv("NO_COLOR") != "",
		Colors: ColorSet{
			Primary:   "#68A063",
			Secondary: "#3C873A",
		},
	}
}
