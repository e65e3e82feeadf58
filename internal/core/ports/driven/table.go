package driven

// TableParser locates the data table in a document and returns its rows.
type TableParser interface {
	// Rows returns the table's rows as trimmed cell text, header row first.
	// Returns domain.ErrTableNotFound when the document has no such table.
	Rows(content []byte) ([][]string, error)
}
