package docx

import "errors"

// Sentinel errors for package writing and inspection.
var (
	ErrEmptyDocument   = errors.New("document has no body content")
	ErrInvalidTable    = errors.New("invalid table")
	ErrNotDocx         = errors.New("not a docx package")
	ErrMissingPart     = errors.New("missing required part")
	ErrMalformedXML    = errors.New("malformed part XML")
	ErrDocumentTooLong = errors.New("document part exceeds size limit")
)
