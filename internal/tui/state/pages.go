package state

import (
	"fmt"
	"strings"

	"github.com/eallis/wiifolio/internal/icon"
	"github.com/eallis/wiifolio/internal/tui/render"
)

// Page is a top-level route.
type Page int

const (
	PageHome Page = iota
	PageProjects
	PageGallery
	PageArt
	PageAbout
	PageContact
	PageNews
)

var pageNames = map[Page]string{
	PageHome:     "home",
	PageProjects: "projects",
	PageGallery:  "gallery",
	PageArt:      "art",
	PageAbout:    "about",
	PageContact:  "contact",
	PageNews:     "news",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// PageNames lists the accepted ParsePage inputs in route order.
func PageNames() []string {
	names := make([]string, 0, len(pageNames))
	for p := PageHome; p <= PageNews; p++ {
		names = append(names, pageNames[p])
	}
	return names
}

// ParsePage converts a route name to a Page. The empty string means home.
func ParsePage(s string) (Page, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PageHome, nil
	}
	for p, name := range pageNames {
		if name == s {
			return p, nil
		}
	}
	return PageHome, fmt.Errorf("unknown page %q (expected one of: %s)", s, strings.Join(PageNames(), ", "))
}

type pageHeading struct {
	title    string
	subtitle string
}

var headings = map[Page]pageHeading{
	PageHome:     {"Wii Portfolio", "Welcome to my interactive portfolio"},
	PageProjects: {"Dev Projects", "Explore my recent development projects"},
	PageGallery:  {"Photo Gallery", "Travel and memory albums"},
	PageArt:      {"Art Portfolio", "Finished pieces and the process behind them"},
	PageAbout:    {"About Me", "Get to know me better"},
	PageContact:  {"Contact", "Get in touch"},
	PageNews:     {"News Channel", "Latest updates & projects"},
}

// channelEntry binds a home tile to the page it opens.
type channelEntry struct {
	render.Channel
	target Page
}

var homeChannels = []channelEntry{
	{render.Channel{Title: "Dev Projects", Subtitle: "Code & builds", Icon: icon.Code}, PageProjects},
	{render.Channel{Title: "Art Portfolio", Subtitle: "Pieces & process", Icon: icon.Palette}, PageArt},
	{render.Channel{Title: "Contact", Subtitle: "Say hello", Icon: icon.Mail}, PageContact},
	{render.Channel{Title: "Photo", Subtitle: "Albums", Icon: icon.Photo}, PageGallery},
	{render.Channel{Title: "About", Subtitle: "Who I am", Icon: icon.User}, PageAbout},
	{render.Channel{Title: "News", Subtitle: "Latest updates", Icon: icon.News}, PageNews},
	{render.Channel{Title: "Playlist", Icon: icon.Plus, Disabled: true}, PageHome},
	{render.Channel{Title: "Internet", Icon: icon.Plus, Disabled: true}, PageHome},
}

func channelTiles() []render.Channel {
	out := make([]render.Channel, len(homeChannels))
	for i, c := range homeChannels {
		out[i] = c.Channel
	}
	return out
}
