package handlers

import (
	"net/http"

	"github.com/avvvet/student-services/internal/studentsvc/models"
	"github.com/avvvet/student-services/internal/studentsvc/service"
	"github.com/avvvet/student-services/internal/studentsvc/store"
	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreateStudent(svc *service.StudentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createStudentRequest
		if err := decodeBody(r.Body, &req); err != nil {
			writeText(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}

		student := models.Student{Name: string(req.Name), PRN: string(req.PRN), Department: string(req.Department)}
		if err := svc.Create(r.Context(), student); err != nil {
			log.Errorf("[%s] insert prn %s: %v", svc.Backend(), student.PRN, err)
			writeText(w, http.StatusInternalServerError, "Error inserting into "+svc.StoreName()+": "+err.Error())
			return
		}

		writeText(w, http.StatusOK, "Data inserted into "+svc.StoreName())
	}
}

func (h *Handler) ListStudents(svc *service.StudentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		students, err := svc.List(r.Context())
		if err != nil {
			log.Errorf("[%s] read all: %v", svc.Backend(), err)
			writeText(w, http.StatusInternalServerError, "Error fetching data from "+svc.StoreName()+": "+err.Error())
			return
		}

		writeJSON(w, http.StatusOK, students)
	}
}

func (h *Handler) GetStudent(svc *service.StudentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prn := chi.URLParam(r, "prn")

		student, err := svc.Get(r.Context(), prn)
		if err != nil {
			if store.IsNotFound(err) {
				writeText(w, http.StatusNotFound, "Student not found in "+svc.StoreName())
				return
			}
			log.Errorf("[%s] read prn %s: %v", svc.Backend(), prn, err)
			writeText(w, http.StatusInternalServerError, "Error fetching data from "+svc.StoreName()+": "+err.Error())
			return
		}

		writeJSON(w, http.StatusOK, student)
	}
}

// UpdateStudent overwrites name and department, prn in the body is ignored.
func (h *Handler) UpdateStudent(svc *service.StudentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prn := chi.URLParam(r, "prn")

		var req updateStudentRequest
		if err := decodeBody(r.Body, &req); err != nil {
			writeText(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}

		update := models.StudentUpdate{Name: string(req.Name), Department: string(req.Department)}
		if err := svc.Update(r.Context(), prn, update); err != nil {
			if store.IsNotFound(err) {
				writeText(w, http.StatusNotFound, "Student not found in "+svc.StoreName())
				return
			}
			log.Errorf("[%s] update prn %s: %v", svc.Backend(), prn, err)
			writeText(w, http.StatusInternalServerError, "Error updating "+svc.StoreName()+": "+err.Error())
			return
		}

		writeText(w, http.StatusOK, "Data updated in "+svc.StoreName())
	}
}

func (h *Handler) DeleteStudent(svc *service.StudentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prn := chi.URLParam(r, "prn")

		if err := svc.Delete(r.Context(), prn); err != nil {
			if store.IsNotFound(err) {
				writeText(w, http.StatusNotFound, "Student not found in "+svc.StoreName())
				return
			}
			log.Errorf("[%s] delete prn %s: %v", svc.Backend(), prn, err)
			writeText(w, http.StatusInternalServerError, "Error deleting from "+svc.StoreName()+": "+err.Error())
			return
		}

		writeText(w, http.StatusOK, "Data deleted from "+svc.StoreName())
	}
}
