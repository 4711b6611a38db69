package handlers

import (
	"time"

	"github.com/avvvet/student-services/internal/studentsvc/service"
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) SetRoutes(r chi.Router) {
	// public student routes, same surface on both stores
	r.Route("/"+h.cassandra.Backend(), h.studentRoutes(h.cassandra))
	r.Route("/"+h.mongo.Backend(), h.studentRoutes(h.mongo))

	r.Route("/v1", func(r chi.Router) {
		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/health", h.HealthHandler)
		})
	})
}

func (h *Handler) studentRoutes(svc *service.StudentService) func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/", h.CreateStudent(svc))
		r.Get("/", h.ListStudents(svc))
		r.Get("/{prn}", h.GetStudent(svc))
		r.Put("/{prn}", h.UpdateStudent(svc))
		r.Delete("/{prn}", h.DeleteStudent(svc))
	}
}

// InitAuth sets the HS256 key guarding /v1 and returns a week long service token.
func (h *Handler) InitAuth(jwtKey string) string {
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)

	expirationTime := time.Now().Add(7 * 24 * time.Hour).Unix()

	_, tokenString, err := h.tokenAuth.Encode(map[string]interface{}{
		"service_id": 8003022,
		"exp":        expirationTime,
	})
	if err != nil {
		log.Errorf("unable to issue service token: %v", err)
		return ""
	}

	log.Debugf("DEBUG: JWT for testing expires soon : %s", tokenString)
	return tokenString
}
