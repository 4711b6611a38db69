package service

import (
	"context"
	"time"

	"github.com/avvvet/student-services/internal/comm"
	"github.com/avvvet/student-services/internal/studentsvc/models"
	"github.com/avvvet/student-services/internal/studentsvc/store"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Publisher interface {
	PublishStudentEvent(evt comm.StudentEvent) error
}

// StudentService runs one store under a backend key and announces writes.
type StudentService struct {
	backend    string
	store      store.StudentStore
	publisher  Publisher // optional
	instanceId string
}

func NewStudentService(backend string, st store.StudentStore, publisher Publisher, instanceId string) *StudentService {
	return &StudentService{
		backend:    backend,
		store:      st,
		publisher:  publisher,
		instanceId: instanceId,
	}
}

func (s *StudentService) Backend() string {
	return s.backend
}

// StoreName is the display name used in response text, e.g. MongoDB.
func (s *StudentService) StoreName() string {
	return s.store.Name()
}

func (s *StudentService) Create(ctx context.Context, student models.Student) error {
	if err := s.store.Insert(ctx, student); err != nil {
		return err
	}

	s.publish(comm.OpCreated, student.PRN, &student)
	return nil
}

func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.store.ReadAll(ctx)
}

func (s *StudentService) Get(ctx context.Context, prn string) (*models.Student, error) {
	return s.store.ReadOne(ctx, prn)
}

func (s *StudentService) Update(ctx context.Context, prn string, update models.StudentUpdate) error {
	if err := s.store.Update(ctx, prn, update); err != nil {
		return err
	}

	s.publish(comm.OpUpdated, prn, &models.Student{Name: update.Name, PRN: prn, Department: update.Department})
	return nil
}

func (s *StudentService) Delete(ctx context.Context, prn string) error {
	if err := s.store.Delete(ctx, prn); err != nil {
		return err
	}

	s.publish(comm.OpDeleted, prn, nil)
	return nil
}

func (s *StudentService) publish(op, prn string, student *models.Student) {
	if s.publisher == nil {
		return
	}

	if student != nil {
		student.ID = nil
	}

	evt := comm.StudentEvent{
		ID:        uuid.New().String(),
		Backend:   s.backend,
		Op:        op,
		PRN:       prn,
		Student:   student,
		Source:    s.instanceId,
		Timestamp: time.Now().UTC(),
	}

	if err := s.publisher.PublishStudentEvent(evt); err != nil {
		log.Warnf("student event %s/%s for prn %s not published: %v", s.backend, op, prn, err)
	}
}
