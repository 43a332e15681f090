package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"evalreport/backend/internal/logger"
	"evalreport/backend/internal/model"
	"evalreport/backend/internal/service"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type errorResponse struct {
	Status     string `json:"status" example:"error"`
	StatusCode int    `json:"status_code" example:"400"`
	Message    string `json:"message" example:"either file or file_url must be provided"`
}

type uploadResponse struct {
	Status          string                  `json:"status" example:"success"`
	StatusCode      int                     `json:"status_code" example:"200"`
	EnglishReport   *model.EvaluationReport `json:"english_report"`
	SlovenianReport *model.EvaluationReport `json:"slovenian_report,omitempty"`
	EmailSent       bool                    `json:"email_sent"`
}

type translateResponse struct {
	Status     string                  `json:"status" example:"success"`
	StatusCode int                     `json:"status_code" example:"200"`
	Report     *model.EvaluationReport `json:"report"`
}

type welcomeResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	var dlErr *service.DownloadError
	switch {
	case errors.Is(err, service.ErrInvalid), errors.Is(err, service.ErrMailDisabled):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnsupportedDocument):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &dlErr) && dlErr.StatusCode >= 400 && dlErr.StatusCode <= 599:
		return dlErr.StatusCode
	case errors.Is(err, service.ErrDownload),
		errors.Is(err, service.ErrModelRequest),
		errors.Is(err, service.ErrMailDelivery):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(c echo.Context, err error) error {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "path", c.Path(), "status_code", status, "error", err)
	}
	return Error(c, status, err.Error())
}

// Error returns the JSON error envelope with the given status and message.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{
		Status:     statusError,
		StatusCode: status,
		Message:    message,
	})
}
