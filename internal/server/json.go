package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/goto/salt/log"
)

type ErrorResponse struct {
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// internalServerError hides msg from the caller and hands back a
// reference that can be looked up in the logs.
func internalServerError(w http.ResponseWriter, logger log.Logger, msg string) {
	ref := uuid.NewString()

	logger.Error(msg, "ref", ref)
	response := &ErrorResponse{
		Reason: fmt.Sprintf(
			"%s - ref (%s)",
			http.StatusText(http.StatusInternalServerError),
			ref,
		),
	}

	writeJSON(w, http.StatusInternalServerError, response)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	response := &ErrorResponse{
		Reason: msg,
	}
	writeJSON(w, status, response)
}
