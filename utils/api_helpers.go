package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse is the error envelope returned on every failure. Stack is
// null except for unexpected errors outside production.
type ErrorResponse struct {
	Message string  `json:"message"`
	Stack   *string `json:"stack"`
}

// RespondJSON sends a JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fmt.Printf("Error encoding JSON response: %v\n", err)
	}
}

// RespondError sends the error envelope and records the message on the
// request log builder when one is provided.
func RespondError(w http.ResponseWriter, logger *strings.Builder, message string, status int) {
	if logger != nil {
		AddToLogMessage(logger, message)
	} else {
		fmt.Println("[Error]", message)
	}
	RespondJSON(w, status, ErrorResponse{Message: message})
}

// RespondErrorWithStack is RespondError for unexpected failures; the stack is
// included in the body unless suppressed (production).
func RespondErrorWithStack(w http.ResponseWriter, logger *strings.Builder, message, stack string, suppress bool) {
	if logger != nil {
		AddToLogMessage(logger, message)
	}
	resp := ErrorResponse{Message: message}
	if !suppress && stack != "" {
		resp.Stack = &stack
	}
	RespondJSON(w, http.StatusInternalServerError, resp)
}

// AddToLogMessage appends a line to the per-request log builder.
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	if logMessagesBuilder.Len() == logMessagesBuilder.Cap() {
		logMessagesBuilder.Grow(len(strToAdd))
	}

	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";")
	logMessagesBuilder.WriteString("\n")
}
