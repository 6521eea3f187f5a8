package icon

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryTagHasAGlyph(t *testing.T) {
	for _, tag := range All() {
		t.Run(string(tag), func(t *testing.T) {
			assert.NotEqual(t, "?", Glyph(tag))
			parsed, err := Parse(string(tag))
			require.NoError(t, err)
			assert.Equal(t, tag, parsed)
		})
	}
}

func TestParseNormalizesCase(t *testing.T) {
	tag, err := Parse("  GitHub ")
	require.NoError(t, err)
	assert.Equal(t, GitHub, tag)
}

func TestParseRejectsUnknown(t *testing.T) {
	_, err := Parse("twitter")
	assert.ErrorIs(t, err, ErrUnknownTag)
	assert.Equal(t, "?", Glyph(Tag("twitter")))
}

func TestTOMLDecoding(t *testing.T) {
	var doc struct {
		Icon Tag `toml:"icon"`
	}
	require.NoError(t, toml.Unmarshal([]byte(`icon = "mail"`), &doc))
	assert.Equal(t, Mail, doc.Icon)

	err := toml.Unmarshal([]byte(`icon = "rocket"`), &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown icon tag")
}
