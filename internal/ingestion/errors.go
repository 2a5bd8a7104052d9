package ingestion

import "fmt"

// EmptyDocumentError reports a document too small to parse. This is the only
// fatal condition in the extraction core; every other failure degrades to an
// empty field with low confidence.
type EmptyDocumentError struct {
	Lines int
	Chars int
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document is empty or too short: %d lines, %d chars", e.Lines, e.Chars)
}
