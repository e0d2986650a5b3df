package search

import (
	"net/http"

	"ourshelves/internal/httpx"
	"ourshelves/internal/logger"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// @Summary Search Open Library
// @Description Proxy a free-text search to Open Library and normalize the hits
// @Tags books
// @Produce json
// @Param term path string true "Search term"
// @Success 200 {object} Result
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books/search/{term} [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")

	result, err := h.service.Search(r.Context(), term)
	if err != nil {
		logger.For(r.Context()).WithError(err).WithField("term", term).Error("book search failed")
		httpx.JSONErrorWithMessage(w, http.StatusInternalServerError, "Failed to fetch books", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}
