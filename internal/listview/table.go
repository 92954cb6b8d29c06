package listview

// Table is the view model shared by every list page.
type Table[R any] struct {
	Columns   []string
	Rows      []R
	EmptyText string
}

// NewTable builds a table. rows may be empty; the template then renders
// a single EmptyText row spanning all columns.
func NewTable[R any](columns []string, rows []R, emptyText string) Table[R] {
	return Table[R]{Columns: columns, Rows: rows, EmptyText: emptyText}
}

func (t Table[R]) Empty() bool { return len(t.Rows) == 0 }

func (t Table[R]) ColSpan() int { return len(t.Columns) }
