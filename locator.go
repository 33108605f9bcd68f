package pagegrab

// TableLocator finds the tables of a fetched page using one extraction
// strategy.
type TableLocator interface {
	// Name identifies the strategy in logs.
	Name() string

	// Locate returns the tables of page in document order. It returns an
	// EUNAVAILABLE error when the page does not offer what the strategy
	// needs, for example a DOM or a well-formed node tree.
	Locate(page *Page) ([]TableSource, error)
}

// TableExtractor extracts normalized tables from a fetched page.
type TableExtractor interface {
	// ExtractTables never fails. An empty result means no table was found
	// or none could be parsed.
	ExtractTables(page *Page) []*Table
}

// Ensure LocatorCascade implements TableExtractor at compile time.
var _ TableExtractor = (*LocatorCascade)(nil)

// LocatorCascade tries table locators in priority order. The first locator
// that finds at least one table is used exclusively; results from different
// locators are never merged.
type LocatorCascade struct {
	locators []TableLocator
}

// NewLocatorCascade returns a cascade over locators, highest priority first.
func NewLocatorCascade(locators ...TableLocator) *LocatorCascade {
	return &LocatorCascade{locators: locators}
}

// ExtractTables implements TableExtractor.
func (c *LocatorCascade) ExtractTables(page *Page) []*Table {
	for _, loc := range c.locators {
		sources, err := locate(loc, page)
		if err != nil || len(sources) == 0 {
			continue
		}

		tables := make([]*Table, 0, len(sources))
		for i, src := range sources {
			tables = append(tables, NormalizeTable(src, i))
		}
		return tables
	}
	return []*Table{}
}

// locate runs one locator, turning a panic into an EINTERNAL error so a
// faulty strategy falls through to the next one.
func locate(loc TableLocator, page *Page) (sources []TableSource, err error) {
	defer func() {
		if r := recover(); r != nil {
			sources = nil
			err = Errorf(EINTERNAL, "%s locator: %v", loc.Name(), r)
		}
	}()
	return loc.Locate(page)
}
