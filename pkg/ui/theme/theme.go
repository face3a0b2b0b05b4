// Package theme provides the visual design tokens for dockyard UIs.
package theme

import (
	"github.com/odvcencio/dockyard/pkg/ui/backend"
)

// Theme defines the visual language for a dock container and its chrome.
type Theme struct {
	// Core palette
	Background    backend.Style // primary canvas
	Surface       backend.Style // part bodies
	SurfaceRaised backend.Style // overlays, menus

	// Text hierarchy
	TextPrimary   backend.Style
	TextSecondary backend.Style
	TextMuted     backend.Style

	// Accent colors
	Accent     backend.Style // active headers, highlights
	AccentDim  backend.Style
	DragSource backend.Style // header of the part being dragged
	DropTarget backend.Style // header a drag is hovering over

	// Semantic colors
	Success backend.Style
	Warning backend.Style
	Error   backend.Style
	Info    backend.Style

	// Chrome
	Header          backend.Style // part header row
	HeaderCollapsed backend.Style
	HeaderFocus     backend.Style
	Border          backend.Style
	Selection       backend.Style
	StatusBar       backend.Style
}

// DefaultTheme returns the dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Background:    backend.DefaultStyle().Background(backend.ColorRGB(12, 12, 16)),
		Surface:       backend.DefaultStyle().Background(backend.ColorRGB(22, 22, 28)),
		SurfaceRaised: backend.DefaultStyle().Background(backend.ColorRGB(32, 32, 40)),

		TextPrimary:   backend.DefaultStyle().Foreground(backend.ColorRGB(240, 238, 232)),
		TextSecondary: backend.DefaultStyle().Foreground(backend.ColorRGB(160, 158, 150)),
		TextMuted:     backend.DefaultStyle().Foreground(backend.ColorRGB(100, 98, 92)),

		Accent:     backend.DefaultStyle().Foreground(backend.ColorRGB(255, 183, 77)),
		AccentDim:  backend.DefaultStyle().Foreground(backend.ColorRGB(180, 130, 60)),
		DragSource: backend.DefaultStyle().Foreground(backend.ColorRGB(255, 200, 100)).Dim(true),
		DropTarget: backend.DefaultStyle().Foreground(backend.ColorRGB(12, 12, 16)).Background(backend.ColorRGB(255, 183, 77)),

		Success: backend.DefaultStyle().Foreground(backend.ColorRGB(134, 239, 172)),
		Warning: backend.DefaultStyle().Foreground(backend.ColorRGB(255, 138, 101)),
		Error:   backend.DefaultStyle().Foreground(backend.ColorRGB(255, 110, 90)),
		Info:    backend.DefaultStyle().Foreground(backend.ColorRGB(77, 182, 172)),

		Header:          backend.DefaultStyle().Foreground(backend.ColorRGB(240, 238, 232)).Background(backend.ColorRGB(32, 32, 40)).Bold(true),
		HeaderCollapsed: backend.DefaultStyle().Foreground(backend.ColorRGB(160, 158, 150)).Background(backend.ColorRGB(22, 22, 28)),
		HeaderFocus:     backend.DefaultStyle().Foreground(backend.ColorRGB(255, 183, 77)).Background(backend.ColorRGB(32, 32, 40)).Bold(true),
		Border:          backend.DefaultStyle().Foreground(backend.ColorRGB(50, 50, 60)),
		Selection:       backend.DefaultStyle().Background(backend.ColorRGB(60, 60, 80)),
		StatusBar:       backend.DefaultStyle().Foreground(backend.ColorRGB(160, 158, 150)).Background(backend.ColorRGB(8, 8, 10)),
	}
}

// LightTheme returns a light variant for pale terminals.
func LightTheme() *Theme {
	return &Theme{
		Background:    backend.DefaultStyle().Background(backend.ColorRGB(250, 250, 248)),
		Surface:       backend.DefaultStyle().Background(backend.ColorRGB(240, 240, 236)),
		SurfaceRaised: backend.DefaultStyle().Background(backend.ColorRGB(228, 228, 224)),

		TextPrimary:   backend.DefaultStyle().Foreground(backend.ColorRGB(30, 30, 34)),
		TextSecondary: backend.DefaultStyle().Foreground(backend.ColorRGB(90, 90, 96)),
		TextMuted:     backend.DefaultStyle().Foreground(backend.ColorRGB(150, 150, 156)),

		Accent:     backend.DefaultStyle().Foreground(backend.ColorRGB(176, 104, 0)),
		AccentDim:  backend.DefaultStyle().Foreground(backend.ColorRGB(200, 150, 70)),
		DragSource: backend.DefaultStyle().Foreground(backend.ColorRGB(176, 104, 0)).Dim(true),
		DropTarget: backend.DefaultStyle().Foreground(backend.ColorRGB(250, 250, 248)).Background(backend.ColorRGB(176, 104, 0)),

		Success: backend.DefaultStyle().Foreground(backend.ColorRGB(0, 128, 64)),
		Warning: backend.DefaultStyle().Foreground(backend.ColorRGB(184, 98, 0)),
		Error:   backend.DefaultStyle().Foreground(backend.ColorRGB(200, 40, 30)),
		Info:    backend.DefaultStyle().Foreground(backend.ColorRGB(0, 110, 140)),

		Header:          backend.DefaultStyle().Foreground(backend.ColorRGB(30, 30, 34)).Background(backend.ColorRGB(228, 228, 224)).Bold(true),
		HeaderCollapsed: backend.DefaultStyle().Foreground(backend.ColorRGB(90, 90, 96)).Background(backend.ColorRGB(240, 240, 236)),
		HeaderFocus:     backend.DefaultStyle().Foreground(backend.ColorRGB(176, 104, 0)).Background(backend.ColorRGB(228, 228, 224)).Bold(true),
		Border:          backend.DefaultStyle().Foreground(backend.ColorRGB(200, 200, 206)),
		Selection:       backend.DefaultStyle().Background(backend.ColorRGB(210, 220, 240)),
		StatusBar:       backend.DefaultStyle().Foreground(backend.ColorRGB(90, 90, 96)).Background(backend.ColorRGB(236, 236, 232)),
	}
}

// ByName returns the theme registered under name, defaulting to dark.
func ByName(name string) *Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DefaultTheme()
	}
}
