package renderer

import (
	"fmt"

	"github.com/dshills/linkdraw/internal/renderer/core"
)

// Theme holds the style of every diagram element.
type Theme struct {
	Node          core.Style
	NodeHighlight core.Style
	NodeDragging  core.Style
	Link          core.Style
	LinkMarked    core.Style
	LinkHover     core.Style
	Pending       core.Style
	Lasso         core.Style
	Status        core.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Node:          core.NewStyle(core.ColorWhite).Bold(),
		NodeHighlight: core.NewStyle(core.ColorYellow).Bold(),
		NodeDragging:  core.NewStyle(core.ColorCyan).Bold().Reverse(),
		Link:          core.NewStyle(core.ColorGray),
		LinkMarked:    core.NewStyle(core.ColorRed).Bold(),
		LinkHover:     core.NewStyle(core.ColorCyan).Bold(),
		Pending:       core.NewStyle(core.ColorYellow).Dim(),
		Lasso:         core.NewStyle(core.ColorRed).Dim(),
		Status:        core.DefaultStyle().Reverse(),
	}
}

// Palette is a set of hex colors for the diagram elements. Empty fields
// keep the default theme's color.
type Palette struct {
	Node          string
	NodeHighlight string
	Link          string
	LinkMarked    string
	LinkHover     string
	Lasso         string
}

// ThemeFromPalette applies p over the default theme.
func ThemeFromPalette(p Palette) (Theme, error) {
	t := DefaultTheme()

	fields := []struct {
		name  string
		hex   string
		style *core.Style
	}{
		{"node", p.Node, &t.Node},
		{"node_highlight", p.NodeHighlight, &t.NodeHighlight},
		{"link", p.Link, &t.Link},
		{"link_marked", p.LinkMarked, &t.LinkMarked},
		{"link_hover", p.LinkHover, &t.LinkHover},
		{"lasso", p.Lasso, &t.Lasso},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := core.ColorFromHex(f.hex)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.style = f.style.WithForeground(c)
	}

	// Pending links share the highlight color.
	t.Pending = t.Pending.WithForeground(t.NodeHighlight.Foreground)
	return t, nil
}
