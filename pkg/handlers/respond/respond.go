// Package respond writes JSON responses for the dashboard handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chris/gateway-dashboard/pkg/api"
	"github.com/chris/gateway-dashboard/pkg/validation"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Invalid writes a 400. Validation errors are reported per field.
func Invalid(w http.ResponseWriter, err error) {
	body := api.ValidationError{Message: err.Error()}
	var ve *validation.Errors
	if errors.As(err, &ve) {
		body.Message = "validation failed"
		body.Fields = ve.Fields()
	}
	JSON(w, http.StatusBadRequest, body)
}
