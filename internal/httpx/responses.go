package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse acknowledges a write that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

func JSONError(w http.ResponseWriter, statusCode int, errMsg string) {
	JSON(w, statusCode, ErrorResponse{Error: errMsg})
}

func JSONErrorWithMessage(w http.ResponseWriter, statusCode int, errMsg, message string) {
	JSON(w, statusCode, ErrorResponse{Error: errMsg, Message: message})
}
