package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"trackerMobility/internal/shared/outcome"
)

// ErrMalformedBody marks request bodies that could not be decoded.
var ErrMalformedBody = errors.New("malformed request body")

// ListResponse is the envelope of filtered list endpoints.
type ListResponse[T any, C any, S any] struct {
	Success  bool         `json:"success"`
	Code     outcome.Code `json:"code"`
	Message  string       `json:"message"`
	Data     []T          `json:"data"`
	Total    int          `json:"total"`
	Criteria C            `json:"criteria"`
	Stats    S            `json:"stats"`
}

// WriteOutcome records the outcome and writes it with the matching status.
func WriteOutcome[T any](c echo.Context, recorder outcome.Recorder, operation string, result outcome.Outcome[T]) error {
	if recorder != nil {
		recorder.Record(operation, result.Code)
	}
	return c.JSON(StatusForCode(result.Code), result)
}

// WriteError answers with the mapped status for errors raised before a
// use-case could run.
func WriteError(c echo.Context, mapper *ErrorMapper, err error) error {
	if mapper == nil {
		mapper = DefaultErrorMapper()
	}
	info := mapper.Map(err)
	return c.JSON(info.Status, outcome.Fail[any](outcome.CodeInvalidParams, info.Message))
}

// Bind decodes the JSON body into target.
func Bind(c echo.Context, target any) error {
	if err := c.Bind(target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}

// WriteCSV serves an export as a file download. An empty export answers
// 204 so the caller can tell "nothing to export" apart from a failure.
func WriteCSV(c echo.Context, filename, content string, ok bool) error {
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
