package render

import (
	"strings"

	"github.com/eallis/wiifolio/internal/contact"
	"github.com/eallis/wiifolio/internal/errors"
)

// ContactField is a rendered input with its label.
type ContactField struct {
	Label   string
	View    string
	Focused bool
	Error   string
}

// ContactState is the input for Contact.
type ContactState struct {
	Intro   string
	Fields  []ContactField
	Status  contact.Status
	Spinner string
	Width   int
}

// Contact renders the contact form with its status banner.
func Contact(theme Theme, s ContactState) string {
	var b strings.Builder
	if s.Intro != "" {
		b.WriteString(theme.Text.Render(s.Intro))
		b.WriteString("\n\n")
	}
	for _, f := range s.Fields {
		label := theme.Text.Render(f.Label)
		if f.Error != "" {
			label += " " + theme.Status(errors.KindError).Render(f.Error)
		}
		style := theme.Field
		if f.Focused {
			style = theme.FieldFocused
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(style.Render(f.View))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(submitLine(theme, s))
	return b.String()
}

func submitLine(theme Theme, s ContactState) string {
	switch s.Status {
	case contact.StatusSending:
		return theme.Accent.Render(s.Spinner + " Sending...")
	case contact.StatusSent:
		return theme.Status(errors.KindSuccess).Render("✓ " + s.Status.Message())
	case contact.StatusFailed:
		return theme.Status(errors.KindError).Render("✗ " + s.Status.Message())
	default:
		return theme.Muted.Render("tab next field · ctrl+s send message · esc back")
	}
}
