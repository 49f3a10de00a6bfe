package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Dave-funds/betahome/repository"
	"github.com/Dave-funds/betahome/uploader"
)

// Error kinds of the unified failure envelope.
const (
	KindValidation  = "validation"
	KindNotFound    = "not_found"
	KindUpload      = "upload"
	KindPersistence = "persistence"
)

func fail(c echo.Context, status int, kind, message string) error {
	return c.JSON(status, echo.Map{
		"success": false,
		"kind":    kind,
		"message": message,
	})
}

// failWrite maps an error from the create/edit/delete path onto the envelope.
func failWrite(c echo.Context, err error) error {
	var uploadErr *uploader.UploadError
	switch {
	case errors.As(err, &uploadErr):
		return fail(c, http.StatusBadRequest, KindUpload, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, KindNotFound, "Property not found")
	default:
		return fail(c, http.StatusBadRequest, KindPersistence, err.Error())
	}
}
