// Package apierr maps service errors to client-facing status codes and messages.
package apierr

import (
	"errors"
	"net/http"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

const (
	MsgInternal       = "Internal server error"
	MsgModelsFailed   = "Failed to retrieve models"
	MsgHistoryFailed  = "Failed to retrieve history"
)

// Classify returns the status and message for err. Only validation errors
// expose their text; everything else is reported generically.
func Classify(err error) (int, string) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest, validation.Message
	}
	return http.StatusInternalServerError, MsgInternal
}

// Body is the JSON error envelope.
func Body(message string) map[string]string {
	return map[string]string{"error": message}
}
