package config

import (
	"slices"
	"strings"

	"github.com/dshills/linkdraw/internal/renderer/core"
)

var (
	startPolicies = []string{"supersede", "reject"}
	logLevels     = []string{"debug", "info", "warn", "warning", "error"}
)

// Validate checks every field and returns ValidationErrors listing all
// failures, or nil.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	e := c.Editor
	if e.NodeRadius <= 0 {
		add("editor.node_radius", "must be positive", e.NodeRadius, ErrCodeOutOfRange)
	}
	if e.ArrowLength < 0 {
		add("editor.arrow_length", "must not be negative", e.ArrowLength, ErrCodeOutOfRange)
	}
	if e.LinkTolerance < 0 {
		add("editor.link_tolerance", "must not be negative", e.LinkTolerance, ErrCodeOutOfRange)
	}
	if e.DoubleClickMS < 50 || e.DoubleClickMS > 2000 {
		add("editor.double_click_ms", "must be between 50 and 2000", e.DoubleClickMS, ErrCodeOutOfRange)
	}
	if !slices.Contains(startPolicies, e.StartPolicy) {
		add("editor.start_policy", "must be one of "+strings.Join(startPolicies, ", "), e.StartPolicy, ErrCodeInvalidEnum)
	}

	colors := []struct {
		path, value string
	}{
		{"theme.node", c.Theme.Node},
		{"theme.node_highlight", c.Theme.NodeHighlight},
		{"theme.link", c.Theme.Link},
		{"theme.link_marked", c.Theme.LinkMarked},
		{"theme.link_hover", c.Theme.LinkHover},
		{"theme.lasso", c.Theme.Lasso},
	}
	for _, col := range colors {
		if col.value == "" {
			continue
		}
		if _, err := core.ColorFromHex(col.value); err != nil {
			add(col.path, "must be a hex color like #rrggbb", col.value, ErrCodePatternMismatch)
		}
	}

	s := c.Spring
	if s.Stiffness <= 0 {
		add("spring.stiffness", "must be positive", s.Stiffness, ErrCodeOutOfRange)
	}
	if s.Damping < 0 {
		add("spring.damping", "must not be negative", s.Damping, ErrCodeOutOfRange)
	}
	if s.Precision <= 0 {
		add("spring.precision", "must be positive", s.Precision, ErrCodeOutOfRange)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		add("log.level", "must be one of debug, info, warn, error", c.Log.Level, ErrCodeInvalidEnum)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
