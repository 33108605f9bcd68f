package mock

import "github.com/fwojciec/pagegrab"

var (
	_ pagegrab.TableLocator   = (*TableLocator)(nil)
	_ pagegrab.TableExtractor = (*TableExtractor)(nil)
	_ pagegrab.TableSource    = (*TableSource)(nil)
)

// TableLocator is a mock implementation of pagegrab.TableLocator.
type TableLocator struct {
	NameFn   func() string
	LocateFn func(page *pagegrab.Page) ([]pagegrab.TableSource, error)
}

func (l *TableLocator) Name() string {
	if l.NameFn == nil {
		return "mock"
	}
	return l.NameFn()
}

func (l *TableLocator) Locate(page *pagegrab.Page) ([]pagegrab.TableSource, error) {
	return l.LocateFn(page)
}

// TableExtractor is a mock implementation of pagegrab.TableExtractor.
type TableExtractor struct {
	ExtractTablesFn func(page *pagegrab.Page) []*pagegrab.Table
}

func (e *TableExtractor) ExtractTables(page *pagegrab.Page) []*pagegrab.Table {
	return e.ExtractTablesFn(page)
}

// TableSource is a mock implementation of pagegrab.TableSource.
type TableSource struct {
	CaptionFn     func() string
	HeaderCellsFn func() []string
	RowsFn        func() []pagegrab.RowCells
}

func (s *TableSource) Caption() string {
	return s.CaptionFn()
}

func (s *TableSource) HeaderCells() []string {
	return s.HeaderCellsFn()
}

func (s *TableSource) Rows() []pagegrab.RowCells {
	return s.RowsFn()
}
