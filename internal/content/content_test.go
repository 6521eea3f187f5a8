package content

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eallis/wiifolio/internal/carousel"
	"github.com/eallis/wiifolio/internal/icon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, "Eallis", c.Profile.Name)
	assert.Len(t, c.Socials, 3)
	assert.Len(t, c.Projects, 4)
	assert.Len(t, c.ArtWorks, 5)
	assert.Len(t, c.Albums, 4)
	assert.Len(t, c.News, 3)
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Albums[0].Title = "changed"
	assert.Equal(t, "Japan Trip 2024", Default().Albums[0].Title)
}

func TestLookups(t *testing.T) {
	c := Default()

	album, ok := c.Album("japan-2024")
	require.True(t, ok)
	assert.Len(t, album.Photos, 3)

	_, ok = c.Album("missing")
	assert.False(t, ok)

	art, ok := c.ArtWork("sketch-collection")
	require.True(t, ok)
	assert.Equal(t, MediumSketch, art.Medium)

	news, ok := c.NewsItem("3")
	require.True(t, ok)
	assert.Equal(t, CategoryAchievement, news.Category)
}

func TestProjectOrdering(t *testing.T) {
	c := Default()

	featured := c.FeaturedProjects()
	require.Len(t, featured, 2)
	assert.Equal(t, "wii-portfolio", featured[0].ID)

	c.Projects[0].Featured = false
	c.Projects[3].Featured = true
	ordered := c.ProjectsFeaturedFirst()
	ids := make([]string, len(ordered))
	for i, p := range ordered {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"generative-art-system", "data-viz-dashboard", "wii-portfolio", "motion-design-library"}, ids)
	assert.Equal(t, "wii-portfolio", c.Projects[0].ID, "catalog order is untouched")
}

func TestValidateReportsAllProblems(t *testing.T) {
	c := Default()
	c.Profile.Name = ""
	c.Projects[1].ID = c.Projects[0].ID
	c.ArtWorks[0].Medium = "Watercolour"
	c.Albums[2].CoverImage = ""
	c.Socials[0].Icon = icon.Tag("rocket")
	c.News[0].Category = "Gossip"

	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "profile: name is required")
	assert.Contains(t, msg, `projects[1]: duplicate id "wii-portfolio"`)
	assert.Contains(t, msg, `unknown medium "Watercolour"`)
	assert.Contains(t, msg, "albums[2]: needs a cover_image or photos")
	assert.Contains(t, msg, "unknown icon tag")
	assert.Contains(t, msg, `unknown category "Gossip"`)
}

func TestExportThenLoad(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Default()))
	assert.True(t, strings.HasPrefix(buf.String(), "# wiifolio content catalog"))

	path := filepath.Join(t.TempDir(), "content.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestDecodeRejectsUnknownIconTag(t *testing.T) {
	doc := `
[profile]
name = "Someone"

[[socials]]
platform = "github"
label = "GitHub"
url = "https://github.com/someone"
icon = "octocat"
`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown icon tag")
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	doc := `
[profile]
name = "Someone"
nickname = "typo"
`
	_, err := Decode(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve(t *testing.T) {
	c, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestAlbumProvider(t *testing.T) {
	p := AlbumProvider(Default())

	coll, ok := p.Collection("japan-2024")
	require.True(t, ok)
	require.Len(t, coll.Items, 3)
	assert.Equal(t, "Tokyo Skyline", coll.Items[0].Caption)
	require.NotNil(t, coll.Fallback)

	coll, ok = p.Collection("london-2024")
	require.True(t, ok)
	assert.Empty(t, coll.Items)
	require.NotNil(t, coll.Fallback)
	assert.Equal(t, "London Adventure", coll.Fallback.Caption)

	_, ok = p.Collection("missing")
	assert.False(t, ok)
}

func TestProcessProviderDrivesNavigator(t *testing.T) {
	nav := carousel.New(ProcessProvider(Default()))

	nav.Open("abstract-landscape", 0)
	require.True(t, nav.IsOpen())
	item, ok := nav.CurrentItem()
	require.True(t, ok)
	assert.Equal(t, "Process #1", item.Caption)

	nav.Prev()
	assert.Equal(t, "3 / 3", nav.CounterText())
	item, _ = nav.CurrentItem()
	assert.Equal(t, ProcessCaption(3), item.Caption)
}

func TestProcessProviderFallsBackToFinalImage(t *testing.T) {
	c := Default()
	c.ArtWorks[0].ProcessImages = nil
	nav := carousel.New(ProcessProvider(c))

	nav.Open("abstract-landscape", 0)
	require.True(t, nav.IsOpen())
	item, ok := nav.CurrentItem()
	require.True(t, ok)
	assert.Equal(t, FinalArtworkCaption, item.Caption)
	assert.False(t, nav.CanNavigate())
}

func TestMarkdown(t *testing.T) {
	c := Default()
	about := AboutMarkdown(c)
	assert.Contains(t, about, "# Eallis")
	assert.Contains(t, about, "## Skills & Expertise")
	assert.Contains(t, about, "- Framer Motion")

	news := NewsMarkdown(c.News[1])
	assert.Contains(t, news, "# New React Project")
	assert.Contains(t, news, "Project · December 2025")
}
