package content

import (
	"errors"
	"fmt"
	"sort"

	"github.com/eallis/wiifolio/internal/icon"
)

// Catalog is everything the portfolio displays. It is read-only once built.
type Catalog struct {
	Profile  Profile      `toml:"profile"`
	Socials  []Social     `toml:"socials"`
	Projects []DevProject `toml:"projects"`
	ArtWorks []ArtWork    `toml:"artworks"`
	Albums   []PhotoAlbum `toml:"albums"`
	News     []NewsItem   `toml:"news"`
	Skills   []SkillGroup `toml:"skills"`
}

// Album returns the album with the given id.
func (c *Catalog) Album(id string) (PhotoAlbum, bool) {
	for _, a := range c.Albums {
		if a.ID == id {
			return a, true
		}
	}
	return PhotoAlbum{}, false
}

// ArtWork returns the artwork with the given id.
func (c *Catalog) ArtWork(id string) (ArtWork, bool) {
	for _, a := range c.ArtWorks {
		if a.ID == id {
			return a, true
		}
	}
	return ArtWork{}, false
}

// NewsItem returns the news entry with the given id.
func (c *Catalog) NewsItem(id string) (NewsItem, bool) {
	for _, n := range c.News {
		if n.ID == id {
			return n, true
		}
	}
	return NewsItem{}, false
}

// FeaturedProjects returns the featured projects in catalog order.
func (c *Catalog) FeaturedProjects() []DevProject {
	var out []DevProject
	for _, p := range c.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ProjectsFeaturedFirst returns all projects with featured ones first,
// otherwise keeping catalog order.
func (c *Catalog) ProjectsFeaturedFirst() []DevProject {
	out := append([]DevProject(nil), c.Projects...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Featured && !out[j].Featured
	})
	return out
}

// Validate reports every problem found in the catalog, joined.
func (c *Catalog) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Profile.Name == "" {
		add("profile: name is required")
	}
	for i, s := range c.Socials {
		if !s.Platform.valid() {
			add("socials[%d]: unknown platform %q", i, s.Platform)
		}
		if _, err := icon.Parse(string(s.Icon)); err != nil {
			add("socials[%d]: %w", i, err)
		}
		if s.URL == "" {
			add("socials[%d]: url is required", i)
		}
	}

	ids := newIDSet("projects")
	for i, p := range c.Projects {
		if err := ids.add(i, p.ID); err != nil {
			errs = append(errs, err)
		}
		if p.Title == "" {
			add("projects[%d]: title is required", i)
		}
	}

	ids = newIDSet("artworks")
	for i, a := range c.ArtWorks {
		if err := ids.add(i, a.ID); err != nil {
			errs = append(errs, err)
		}
		if !a.Medium.valid() {
			add("artworks[%d]: unknown medium %q", i, a.Medium)
		}
		if a.FinalImage == "" {
			add("artworks[%d]: final_image is required", i)
		}
	}

	ids = newIDSet("albums")
	for i, a := range c.Albums {
		if err := ids.add(i, a.ID); err != nil {
			errs = append(errs, err)
		}
		if a.CoverImage == "" && len(a.Photos) == 0 {
			add("albums[%d]: needs a cover_image or photos", i)
		}
		photoIDs := newIDSet(fmt.Sprintf("albums[%d].photos", i))
		for j, p := range a.Photos {
			if err := photoIDs.add(j, p.ID); err != nil {
				errs = append(errs, err)
			}
			if p.URL == "" {
				add("albums[%d].photos[%d]: url is required", i, j)
			}
		}
	}

	ids = newIDSet("news")
	for i, n := range c.News {
		if err := ids.add(i, n.ID); err != nil {
			errs = append(errs, err)
		}
		if !n.Category.valid() {
			add("news[%d]: unknown category %q", i, n.Category)
		}
	}

	for i, g := range c.Skills {
		if _, err := icon.Parse(string(g.Icon)); err != nil {
			add("skills[%d]: %w", i, err)
		}
	}
	return errors.Join(errs...)
}

type idSet struct {
	section string
	seen    map[string]int
}

func newIDSet(section string) *idSet {
	return &idSet{section: section, seen: make(map[string]int)}
}

func (s *idSet) add(i int, id string) error {
	if id == "" {
		return fmt.Errorf("%s[%d]: id is required", s.section, i)
	}
	if prev, dup := s.seen[id]; dup {
		return fmt.Errorf("%s[%d]: duplicate id %q (first at %d)", s.section, i, id, prev)
	}
	s.seen[id] = i
	return nil
}
