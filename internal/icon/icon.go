// Package icon maps the fixed set of content icon tags to terminal glyphs.
package icon

import (
	"errors"
	"fmt"
	"strings"
)

// Tag names an icon used by content entries.
type Tag string

const (
	GitHub   Tag = "github"
	LinkedIn Tag = "linkedin"
	Mail     Tag = "mail"
	Code     Tag = "code"
	Palette  Tag = "palette"
	Photo    Tag = "photo"
	News     Tag = "news"
	Settings Tag = "settings"
	Home     Tag = "home"
	User     Tag = "user"
	Plus     Tag = "plus"
)

// ErrUnknownTag is returned by Parse for names outside the known set.
var ErrUnknownTag = errors.New("unknown icon tag")

// All lists every known tag in declaration order.
func All() []Tag {
	return []Tag{GitHub, LinkedIn, Mail, Code, Palette, Photo, News, Settings, Home, User, Plus}
}

// Parse converts a content string into a Tag.
func Parse(s string) (Tag, error) {
	tag := Tag(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := glyph(tag); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, s)
	}
	return tag, nil
}

// Glyph returns the symbol drawn for t. Unknown tags render as "?".
func Glyph(t Tag) string {
	g, _ := glyph(t)
	return g
}

func glyph(t Tag) (string, bool) {
	switch t {
	case GitHub:
		return "GH", true
	case LinkedIn:
		return "in", true
	case Mail:
		return "✉", true
	case Code:
		return "</>", true
	case Palette:
		return "🎨", true
	case Photo:
		return "📷", true
	case News:
		return "📰", true
	case Settings:
		return "⚙", true
	case Home:
		return "⌂", true
	case User:
		return "☺", true
	case Plus:
		return "+", true
	default:
		return "?", false
	}
}

// UnmarshalText lets TOML decoding reject unknown tags.
func (t *Tag) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText writes the tag name.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t), nil
}
