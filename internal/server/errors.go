package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/omkar-nanda-ditstek/AI/internal/fetch"
	"github.com/omkar-nanda-ditstek/AI/internal/ingestion"
	"github.com/omkar-nanda-ditstek/AI/internal/interview"
	"github.com/omkar-nanda-ditstek/AI/internal/service"
)

// ErrInvalidBody is returned when a request body cannot be decoded.
var ErrInvalidBody = errors.New("invalid request body")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalid     *service.InvalidRequestError
		unsupported *service.UnsupportedFileError
		tooLarge    *service.FileTooLargeError
		duplicate   *service.DuplicateEmailError
		notFound    *service.NotFoundError
		closed      *service.SessionClosedError
		conflict    *service.AnswerConflictError
		format      *ingestion.UnsupportedFormatError
		fetchErr    *fetch.Error
		maxBytes    *http.MaxBytesError
		validation  validator.ValidationErrors
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &invalid), errors.As(err, &validation), errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest
	case errors.As(err, &unsupported), errors.As(err, &format):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &tooLarge), errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &duplicate), errors.As(err, &closed), errors.As(err, &conflict):
		return http.StatusConflict
	case errors.Is(err, ingestion.ErrContentExtractionFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, interview.ErrGenerationFailed),
		errors.Is(err, ingestion.ErrHTTPRequestFailed),
		errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
