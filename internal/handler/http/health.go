package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/handler/http/response"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Health is the liveness probe. It does not touch the database.
func Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, healthResponse{
		Status:    "OK",
		Message:   "Employee Management API is running",
		Timestamp: time.Now().UTC(),
	})
}
