package book

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"ourshelves/internal/httpx"
	"ourshelves/internal/logger"
)

const (
	msgNotFound     = "Book not found"
	msgInvalidBody  = "Invalid request body"
	msgBodyTooLarge = "Request body too large"
	msgInternal     = "Internal server error"
	msgUpdated      = "Book updated successfully"
	msgDeleted      = "Book deleted successfully"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// @Summary List books
// @Description All books, newest first
// @Tags books
// @Produce json
// @Success 200 {array} Book
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/id/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body Input true "Book"
// @Success 201 {object} Book
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := decodeInput(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// @Summary Replace book
// @Description Overwrites every mutable field; omitted fields become null
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param book body Input true "Book"
// @Success 200 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("id")

	var in Input
	if err := decodeInput(r, &in); err != nil {
		// an unknown book is reported before a bad body
		if _, lookupErr := h.service.GetByID(r.Context(), rawID); lookupErr != nil {
			h.fail(w, r, lookupErr)
			return
		}
		h.fail(w, r, err)
		return
	}

	if err := h.service.Update(r.Context(), rawID, in); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, msgUpdated)
}

// @Summary Delete book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, msgDeleted)
}

var errBodyTooLarge = errors.New("request body too large")

// decodeInput reads the JSON body into in. An empty body decodes as an
// empty Input so it reaches field validation.
func decodeInput(r *http.Request, in *Input) error {
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return &ValidationError{Message: msgInvalidBody}
	}
	return nil
}

// fail logs err and writes the matching status and body.
func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	entry := logger.For(r.Context()).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		entry.WithField("field", verr.Field).Warn(verr.Message)
		httpx.JSONError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, ErrNotFound):
		entry.Warn("book not found")
		httpx.JSONError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, errBodyTooLarge):
		entry.Warn("request body too large")
		httpx.JSONError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
	default:
		entry.WithError(err).Error("book request failed")
		httpx.JSONError(w, http.StatusInternalServerError, msgInternal)
	}
}
