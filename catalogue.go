package marquee

import "fmt"

// Item is one film card in the carousel.
type Item struct {
	ID       int
	ImageRef string
	Title    string
	Subtitle string // director credit
}

// Catalogue is the fixed, ordered item list supplied at startup.
type Catalogue struct {
	items []Item
}

// NewCatalogue copies items into a catalogue. It rejects empty lists and
// duplicate IDs.
func NewCatalogue(items []Item) (*Catalogue, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("new catalogue: %w", ErrNoItems)
	}
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("new catalogue: %w: duplicate item id %d", ErrConfig, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return &Catalogue{items: append([]Item(nil), items...)}, nil
}

// Len returns the number of items.
func (c *Catalogue) Len() int { return len(c.items) }

// At returns the item at index i, wrapping out-of-range indices.
func (c *Catalogue) At(i int) Item {
	n := len(c.items)
	return c.items[((i%n)+n)%n]
}

// Items returns a copy of the item list.
func (c *Catalogue) Items() []Item {
	return append([]Item(nil), c.items...)
}

// SampleItems is the festival line-up used by the examples.
func SampleItems() []Item {
	return []Item{
		{ID: 1, ImageRef: "posters/salt-and-silence.jpg", Title: "Salt and Silence", Subtitle: "Directed by Ines Marchetti"},
		{ID: 2, ImageRef: "posters/the-night-ferry.jpg", Title: "The Night Ferry", Subtitle: "Directed by Tomasz Wielgus"},
		{ID: 3, ImageRef: "posters/paper-moons.jpg", Title: "Paper Moons", Subtitle: "Directed by Adaeze Okafor"},
		{ID: 4, ImageRef: "posters/a-quiet-harbour.jpg", Title: "A Quiet Harbour", Subtitle: "Directed by Lena Sørensen"},
		{ID: 5, ImageRef: "posters/last-light-on-vine.jpg", Title: "Last Light on Vine", Subtitle: "Directed by Rafael Duarte"},
	}
}

// posterColor derives a stable card color for an item. Assets are out of
// scope, so cards are flat color fields.
func posterColor(id int) Color {
	palette := [...]Color{
		{R: 0.78, G: 0.29, B: 0.23, A: 1},
		{R: 0.17, G: 0.33, B: 0.52, A: 1},
		{R: 0.85, G: 0.66, B: 0.25, A: 1},
		{R: 0.24, G: 0.52, B: 0.43, A: 1},
		{R: 0.47, G: 0.27, B: 0.55, A: 1},
		{R: 0.62, G: 0.45, B: 0.35, A: 1},
	}
	n := len(palette)
	return palette[((id%n)+n)%n]
}
