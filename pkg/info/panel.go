// Package info shows details about the selected body and the active control
// scheme.
package info

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	Header         = "SELECTED BODY"
	NoDistance     = "N/A"
	NoDetails      = "No additional details."
	DefaultAccent  = "#ffffff"
	Cleared        = "Selection cleared"
	distanceFormat = "Orbital distance: %.1f units"
)

// Fields is everything the panel displays for a selection
type Fields struct {
	Header   string
	Name     string
	Distance string
	Details  string
	Accent   string
}

// DistanceText formats an orbit radius; zero means the central star
func DistanceText(orbitRadius float32) string {
	if orbitRadius > 0 {
		return fmt.Sprintf(distanceFormat, orbitRadius)
	}
	return NoDistance
}

// Panel is the surface selection details are written to
type Panel interface {
	Show()
	Hide()
	SetFields(f Fields)
	SetControlHint(hint string)
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Console renders the panel to a terminal whenever it changes
type Console struct {
	w       io.Writer
	fields  Fields
	hint    string
	visible bool
}

// NewConsole creates a hidden panel writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Show() {
	c.visible = true
	c.draw()
}

// Hide closes the selection box, noting it once when one was shown
func (c *Console) Hide() {
	if !c.visible {
		return
	}
	c.visible = false
	fmt.Fprintln(c.w, hintStyle.Render(Cleared))
}

func (c *Console) SetFields(f Fields) {
	c.fields = f
}

func (c *Console) SetControlHint(hint string) {
	if hint == c.hint {
		return
	}
	c.hint = hint
	fmt.Fprintln(c.w, hintStyle.Render(hint))
}

// Visible reports whether the selection box is shown
func (c *Console) Visible() bool {
	return c.visible
}

// Fields returns the last fields set
func (c *Console) Fields() Fields {
	return c.fields
}

// Hint returns the current control hint
func (c *Console) Hint() string {
	return c.hint
}

// Render draws the selection box with the accent color on its border
func (c *Console) Render() string {
	accent := c.fields.Accent
	if accent == "" {
		accent = DefaultAccent
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(0, 1)
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent))

	var sb strings.Builder
	sb.WriteString(header.Render(c.fields.Header))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Name: ") + valueStyle.Render(c.fields.Name))
	sb.WriteString("\n")
	sb.WriteString(valueStyle.Render(c.fields.Distance))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render(c.fields.Details))
	return box.Render(sb.String())
}

func (c *Console) draw() {
	fmt.Fprintln(c.w, c.Render())
}
