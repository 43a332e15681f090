package document

import "errors"

var (
	ErrCorrupt     = errors.New("unreadable document")
	ErrPageRange   = errors.New("page range out of bounds")
	ErrUnsupported = errors.New("unsupported document type")
)
