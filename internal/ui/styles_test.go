package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func allStyles(s Styles) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"Heading": s.Heading,
		"Project": s.Project,
		"Hint":    s.Hint,
		"Bullet":  s.Bullet,
		"Item":    s.Item,
		"Success": s.Success,
		"Warning": s.Warning,
		"Error":   s.Error,
	}
}

func TestNewStyles_PlainForNonTerminal(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	styles := NewStyles(&bytes.Buffer{}, "auto")

	for name, style := range allStyles(styles) {
		t.Run(name, func(t *testing.T) {
			if got := style.Render("test"); got != "test" {
				t.Errorf("expected plain output for %s, got %q", name, got)
			}
		})
	}
}

func TestNewStyles_Never(t *testing.T) {
	styles := NewStyles(&bytes.Buffer{}, "never")

	if got := styles.Success.Render("Import completed."); got != "Import completed." {
		t.Errorf("expected plain output, got %q", got)
	}
}

func TestNewStyles_Always(t *testing.T) {
	styles := NewStyles(&bytes.Buffer{}, "always")

	got := styles.Project.Render("acme")
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escape codes, got %q", got)
	}
	if !strings.Contains(got, "acme") {
		t.Errorf("expected text to survive styling, got %q", got)
	}
}
