package content

import (
	"fmt"

	"github.com/eallis/wiifolio/internal/carousel"
)

// FinalArtworkCaption labels the final image of an artwork.
const FinalArtworkCaption = "Final Artwork"

// ProcessCaption labels the n-th (1-based) process image.
func ProcessCaption(n int) string {
	return fmt.Sprintf("Process #%d", n)
}

// AlbumProvider exposes photo albums as carousel collections keyed by
// album id. Photos are the items; the cover is the fallback so albums
// without published photos still open.
func AlbumProvider(c *Catalog) carousel.Provider {
	return carousel.ProviderFunc(func(id string) (carousel.Collection, bool) {
		album, ok := c.Album(id)
		if !ok {
			return carousel.Collection{}, false
		}
		items := make([]carousel.Item, 0, len(album.Photos))
		for _, p := range album.Photos {
			items = append(items, carousel.Item{URL: p.URL, Caption: p.Caption})
		}
		coll := carousel.Collection{ID: album.ID, Items: items}
		if album.CoverImage != "" {
			coll.Fallback = &carousel.Item{URL: album.CoverImage, Caption: album.Title}
		}
		return coll, true
	})
}

// ProcessProvider exposes each artwork's process images as a collection
// keyed by artwork id, with the final image as fallback.
func ProcessProvider(c *Catalog) carousel.Provider {
	return carousel.ProviderFunc(func(id string) (carousel.Collection, bool) {
		art, ok := c.ArtWork(id)
		if !ok {
			return carousel.Collection{}, false
		}
		items := make([]carousel.Item, 0, len(art.ProcessImages))
		for i, url := range art.ProcessImages {
			items = append(items, carousel.Item{URL: url, Caption: ProcessCaption(i + 1)})
		}
		coll := carousel.Collection{ID: art.ID, Items: items}
		if art.FinalImage != "" {
			coll.Fallback = &carousel.Item{URL: art.FinalImage, Caption: FinalArtworkCaption}
		}
		return coll, true
	})
}
