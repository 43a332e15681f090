package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid             = errors.New("invalid request")
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrDownload            = errors.New("document download failed")
	ErrModelRequest        = errors.New("model request failed")
	ErrModelOutput         = errors.New("malformed model output")
	ErrMailDisabled        = errors.New("email delivery is not configured")
	ErrMailDelivery        = errors.New("email delivery failed")
)

// DownloadError is returned when the document host answers with a non-200 status.
type DownloadError struct {
	URL        string
	StatusCode int
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("document download failed: upstream returned status %d", e.StatusCode)
}

func (e *DownloadError) Is(target error) bool {
	return target == ErrDownload
}
