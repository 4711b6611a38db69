package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avvvet/student-services/internal/studentsvc/service"
	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	tokenAuth *jwtauth.JWTAuth
	cassandra *service.StudentService
	mongo     *service.StudentService
	port      string
}

func NewHandler(cassandra, mongo *service.StudentService, port string) *Handler {
	return &Handler{
		cassandra: cassandra,
		mongo:     mongo,
		port:      port,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.CreateResponse(w, Response{
		Message: "student service is running at port " + h.port,
		Code:    http.StatusOK,
		Data: map[string]string{
			"cassandra": "/" + h.cassandra.Backend(),
			"mongo":     "/" + h.mongo.Backend(),
		},
	})
}

// writeText is used by the write endpoints and every error, reads answer in JSON.
func writeText(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(msg)); err != nil {
		log.Errorf("Failed to write response: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}
