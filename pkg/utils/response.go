package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// GenericFailure is shown to users when a request fails for reasons they cannot fix.
const GenericFailure = "Sorry, I encountered an error. Please try again."

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError 发送错误响应
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorBody{Error: message})
}

// RespondFailure 发送带类型标记的 500 响应
func RespondFailure(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusInternalServerError, ErrorBody{Error: message, Type: "error"})
}
