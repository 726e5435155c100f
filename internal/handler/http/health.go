package http

import (
	"net/http"
	"time"

	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/internal/utils"
)

// healthResponse is the liveness payload. Unlike API endpoints it is not
// wrapped in the response envelope: probes expect a flat document.
type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
