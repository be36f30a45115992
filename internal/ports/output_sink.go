package ports

// LineSink writes a sequence of text lines to a named destination, one per line.
type LineSink interface {
	WriteLines(path string, lines []string) error
}

// DocumentSink serializes a structured value to a named destination.
type DocumentSink interface {
	WriteDocument(path string, v any) error
}

// TableSink writes a header and rows as a delimited table.
type TableSink interface {
	WriteTable(path string, header []string, rows [][]string) error
}

// OutputSink is the full set of output adapters used by the emitters.
type OutputSink interface {
	LineSink
	DocumentSink
	TableSink
}
