package artifact

// Catalog is a read-only lookup of artifact sets by id.
type Catalog interface {
	// Set returns the set with the given id, or ok=false if unknown.
	Set(id string) (Set, bool)
}

// MapCatalog is an in-memory Catalog backed by a map. It is the catalog
// used by the CLI and by tests; the service wraps its Postgres set table
// in the same interface.
type MapCatalog map[string]Set

// Set implements Catalog.
func (c MapCatalog) Set(id string) (Set, bool) {
	s, ok := c[id]
	return s, ok
}

// NewCatalog builds a MapCatalog from a list of sets. Later entries with
// a duplicate id overwrite earlier ones.
func NewCatalog(sets []Set) MapCatalog {
	c := make(MapCatalog, len(sets))
	for _, s := range sets {
		c[s.ID] = s
	}
	return c
}
