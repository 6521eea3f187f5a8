// Package content holds the portfolio catalog: profile, projects, artworks,
// photo albums and news, plus the carousel providers built over them.
package content

import (
	"fmt"

	"github.com/eallis/wiifolio/internal/icon"
)

// Platform identifies a social link.
type Platform string

const (
	PlatformGitHub   Platform = "github"
	PlatformLinkedIn Platform = "linkedin"
	PlatformEmail    Platform = "email"
)

func (p Platform) valid() bool {
	switch p {
	case PlatformGitHub, PlatformLinkedIn, PlatformEmail:
		return true
	}
	return false
}

func (p *Platform) UnmarshalText(b []byte) error {
	v := Platform(b)
	if !v.valid() {
		return fmt.Errorf("unknown platform %q", string(b))
	}
	*p = v
	return nil
}

// Medium is the artistic medium of an ArtWork.
type Medium string

const (
	MediumDigital3D       Medium = "Digital 3D"
	MediumDigitalPainting Medium = "Digital Painting"
	MediumSketch          Medium = "Sketch"
	MediumAnimation       Medium = "Animation"
	MediumPhotography     Medium = "Photography"
	MediumMixedMedia      Medium = "Mixed Media"
)

func (m Medium) valid() bool {
	switch m {
	case MediumDigital3D, MediumDigitalPainting, MediumSketch,
		MediumAnimation, MediumPhotography, MediumMixedMedia:
		return true
	}
	return false
}

func (m *Medium) UnmarshalText(b []byte) error {
	v := Medium(b)
	if !v.valid() {
		return fmt.Errorf("unknown medium %q", string(b))
	}
	*m = v
	return nil
}

// Category tags a news item.
type Category string

const (
	CategoryUpdate      Category = "Update"
	CategoryProject     Category = "Project"
	CategoryAchievement Category = "Achievement"
)

func (c Category) valid() bool {
	switch c {
	case CategoryUpdate, CategoryProject, CategoryAchievement:
		return true
	}
	return false
}

func (c *Category) UnmarshalText(b []byte) error {
	v := Category(b)
	if !v.valid() {
		return fmt.Errorf("unknown news category %q", string(b))
	}
	*c = v
	return nil
}

// Profile is the owner's hero card.
type Profile struct {
	Name       string `toml:"name"`
	Role       string `toml:"role"`
	Bio        string `toml:"bio"`
	AvatarPath string `toml:"avatar_path"`
	Email      string `toml:"email"`
}

// Social is a link shown in the bottom bar.
type Social struct {
	Platform Platform `toml:"platform"`
	Label    string   `toml:"label"`
	URL      string   `toml:"url"`
	Icon     icon.Tag `toml:"icon"`
}

// DevProject is an entry of the projects channel.
type DevProject struct {
	ID          string   `toml:"id"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Stack       []string `toml:"stack"`
	DemoURL     string   `toml:"demo_url,omitempty"`
	RepoURL     string   `toml:"repo_url"`
	Thumbnail   string   `toml:"thumbnail"`
	Featured    bool     `toml:"featured,omitempty"`
	Date        string   `toml:"date,omitempty"`
}

// ArtWork is a finished piece with the images of its making.
type ArtWork struct {
	ID            string   `toml:"id"`
	Title         string   `toml:"title"`
	Medium        Medium   `toml:"medium"`
	Description   string   `toml:"description"`
	FinalImage    string   `toml:"final_image"`
	ProcessImages []string `toml:"process_images"`
	Date          string   `toml:"date,omitempty"`
	Featured      bool     `toml:"featured,omitempty"`
}

// PhotoItem is one picture inside an album.
type PhotoItem struct {
	ID      string `toml:"id"`
	URL     string `toml:"url"`
	Caption string `toml:"caption,omitempty"`
}

// PhotoAlbum groups photos. PhotoCount is the advertised size and may be
// larger than len(Photos) when only a sample is published.
type PhotoAlbum struct {
	ID          string      `toml:"id"`
	Title       string      `toml:"title"`
	Description string      `toml:"description,omitempty"`
	CoverImage  string      `toml:"cover_image"`
	Date        string      `toml:"date"`
	PhotoCount  int         `toml:"photo_count"`
	Photos      []PhotoItem `toml:"photos,omitempty"`
}

// NewsItem is an entry of the news channel. Body is markdown.
type NewsItem struct {
	ID       string   `toml:"id"`
	Title    string   `toml:"title"`
	Date     string   `toml:"date"`
	Category Category `toml:"category"`
	Preview  string   `toml:"preview"`
	Body     string   `toml:"body"`
}

// SkillGroup is a titled list on the about page.
type SkillGroup struct {
	Title  string   `toml:"title"`
	Icon   icon.Tag `toml:"icon"`
	Skills []string `toml:"skills"`
}
