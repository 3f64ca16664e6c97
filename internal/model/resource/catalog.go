package resource

// Catalog exposes resource lookup for HTTP handlers.
type Catalog interface {
	For(mood string) Bundle
}

// MemoryCatalog implements Catalog over a fixed map.
type MemoryCatalog struct {
	items    map[string]Bundle
	fallback Bundle
}

// NewMemoryCatalog returns a catalog preloaded with the supplied bundles.
func NewMemoryCatalog(items map[string]Bundle, fallback Bundle) *MemoryCatalog {
	copied := make(map[string]Bundle, len(items))
	for key, bundle := range items {
		copied[key] = bundle.clone()
	}
	return &MemoryCatalog{items: copied, fallback: fallback.clone()}
}

// For returns the bundle keyed exactly by mood. Anything else, including "STRESS" or " stress",
// gets the fallback bundle.
func (c *MemoryCatalog) For(mood string) Bundle {
	if bundle, ok := c.items[mood]; ok {
		return bundle.clone()
	}
	return c.fallback.clone()
}
