package content

import (
	"fmt"
	"strings"

	"github.com/eallis/wiifolio/internal/icon"
)

// AboutMarkdown renders the profile and skill groups for the about page.
func AboutMarkdown(c *Catalog) string {
	var b strings.Builder
	p := c.Profile
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Role != "" {
		fmt.Fprintf(&b, "**%s**\n\n", p.Role)
	}
	if p.Bio != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Bio)
	}
	if p.Email != "" {
		fmt.Fprintf(&b, "Email: <%s>\n\n", p.Email)
	}
	if len(c.Skills) > 0 {
		b.WriteString("## Skills & Expertise\n\n")
		for _, g := range c.Skills {
			fmt.Fprintf(&b, "### %s %s\n\n", icon.Glyph(g.Icon), g.Title)
			for _, s := range g.Skills {
				fmt.Fprintf(&b, "- %s\n", s)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("---\n\nInterested in working together? Open the **Contact** channel.\n")
	return b.String()
}

// NewsMarkdown renders a single news article.
func NewsMarkdown(n NewsItem) string {
	return fmt.Sprintf("# %s\n\n*%s · %s*\n\n%s\n", n.Title, n.Category, n.Date, n.Body)
}
