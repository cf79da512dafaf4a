package extraction

import "fmt"

// EmptyDocumentError is the only hard failure the extractor reports: the
// caller passed no document at all.
type EmptyDocumentError struct {
	Filename string
}

func (e *EmptyDocumentError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("empty document: %s", e.Filename)
	}
	return "empty document"
}
