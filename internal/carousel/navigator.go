// Package carousel provides cyclic navigation over a fixed collection of items,
// as used by the gallery lightbox and the art process modal.
package carousel

import (
	"fmt"

	"github.com/eallis/wiifolio/internal/logging"
)

// Item is a single entry in a collection. The navigator never inspects it.
type Item struct {
	URL     string
	Caption string
}

// Collection is an ordered, immutable set of items. Item order is navigation order.
// Fallback, when set, is shown for a collection that has no items of its own.
type Collection struct {
	ID       string
	Items    []Item
	Fallback *Item
}

// Len returns the number of navigable items.
func (c Collection) Len() int {
	return len(c.Items)
}

// empty reports whether there is nothing at all to display.
func (c Collection) empty() bool {
	return len(c.Items) == 0 && c.Fallback == nil
}

// Provider resolves collections by ID. Implementations must be cheap and
// side-effect free; the navigator calls Collection on every derived read.
type Provider interface {
	Collection(id string) (Collection, bool)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(id string) (Collection, bool)

// Collection implements Provider.
func (f ProviderFunc) Collection(id string) (Collection, bool) {
	return f(id)
}

// Logger receives diagnostics for ignored operations.
type Logger interface {
	Debug(msg string, args ...any)
}

// Navigator tracks the open/closed state and the selected index of one viewer.
// It is owned by a single view and is not safe for concurrent use.
type Navigator struct {
	provider     Provider
	logger       Logger
	open         bool
	collectionID string
	index        int
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for ignored-operation diagnostics.
func WithLogger(l Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// New creates a closed navigator over provider.
func New(provider Provider, opts ...Option) *Navigator {
	n := &Navigator{
		provider: provider,
		logger:   logging.With("component", "carousel"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Open shows collection id starting at start, clamped into range.
// Unknown or empty collections leave the navigator untouched.
func (n *Navigator) Open(id string, start int) {
	c, ok := n.lookup(id)
	if !ok {
		n.logger.Debug("open ignored: unknown collection", "collection", id)
		return
	}
	if c.empty() {
		n.logger.Debug("open ignored: empty collection", "collection", id)
		return
	}
	n.open = true
	n.collectionID = id
	n.index = clamp(start, 0, c.Len()-1)
}

// Close hides the viewer. The last collection and index are left in place but
// carry no meaning until the next Open.
func (n *Navigator) Close() {
	n.open = false
}

// Next advances to the following item, wrapping from last to first.
func (n *Navigator) Next() {
	c, ok := n.active()
	if !ok || c.Len() <= 1 {
		return
	}
	n.index = (n.index + 1) % c.Len()
}

// Prev moves to the preceding item, wrapping from first to last.
func (n *Navigator) Prev() {
	c, ok := n.active()
	if !ok || c.Len() <= 1 {
		return
	}
	n.index = (n.index - 1 + c.Len()) % c.Len()
}

// JumpTo selects item i. Out-of-range indexes are ignored.
func (n *Navigator) JumpTo(i int) {
	c, ok := n.active()
	if !ok {
		return
	}
	if i < 0 || i >= c.Len() {
		n.logger.Debug("jump ignored: index out of range", "collection", n.collectionID, "index", i, "len", c.Len())
		return
	}
	n.index = i
}

// IsOpen reports whether the viewer is showing a collection.
func (n *Navigator) IsOpen() bool {
	return n.open
}

// CollectionID returns the active collection, or "" when closed.
func (n *Navigator) CollectionID() string {
	if !n.open {
		return ""
	}
	return n.collectionID
}

// Index returns the selected index. Meaningless when closed.
func (n *Navigator) Index() int {
	return n.index
}

// CurrentItem returns the selected item, or the collection fallback when the
// collection has no items of its own.
func (n *Navigator) CurrentItem() (Item, bool) {
	c, ok := n.active()
	if !ok {
		return Item{}, false
	}
	if c.Len() == 0 {
		if c.Fallback != nil {
			return *c.Fallback, true
		}
		return Item{}, false
	}
	return c.Items[n.index], true
}

// CounterText renders the position as "i / n". Empty when nothing is navigable.
func (n *Navigator) CounterText() string {
	c, ok := n.active()
	if !ok || c.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", n.index+1, c.Len())
}

// CanNavigate reports whether next/prev controls have any effect.
func (n *Navigator) CanNavigate() bool {
	c, ok := n.active()
	return ok && c.Len() > 1
}

// active returns the open collection. The index is re-clamped in case the
// provider started returning a shorter collection for the same id.
func (n *Navigator) active() (Collection, bool) {
	if !n.open {
		return Collection{}, false
	}
	c, ok := n.lookup(n.collectionID)
	if !ok {
		return Collection{}, false
	}
	if c.Len() > 0 {
		n.index = clamp(n.index, 0, c.Len()-1)
	}
	return c, true
}

func (n *Navigator) lookup(id string) (Collection, bool) {
	if n.provider == nil {
		return Collection{}, false
	}
	return n.provider.Collection(id)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
