package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avvvet/student-services/internal/comm"
	"github.com/avvvet/student-services/internal/studentsvc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	err      error
	inserted []models.Student
}

func (s *stubStore) Name() string { return "Stub" }

func (s *stubStore) Insert(ctx context.Context, st models.Student) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, st)
	return nil
}

func (s *stubStore) ReadAll(ctx context.Context) ([]models.Student, error) {
	return s.inserted, s.err
}

func (s *stubStore) ReadOne(ctx context.Context, prn string) (*models.Student, error) {
	return nil, s.err
}

func (s *stubStore) Update(ctx context.Context, prn string, u models.StudentUpdate) error {
	return s.err
}

func (s *stubStore) Delete(ctx context.Context, prn string) error {
	return s.err
}

type recordingPublisher struct {
	events []comm.StudentEvent
	err    error
}

func (p *recordingPublisher) PublishStudentEvent(evt comm.StudentEvent) error {
	p.events = append(p.events, evt)
	return p.err
}

func TestWritesPublishEvents(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewStudentService("cassandra", &stubStore{}, pub, "instance-1")
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, models.Student{Name: "A", PRN: "1", Department: "CS"}))
	require.NoError(t, svc.Update(ctx, "1", models.StudentUpdate{Name: "B", Department: "EE"}))
	require.NoError(t, svc.Delete(ctx, "1"))

	require.Len(t, pub.events, 3)

	assert.Equal(t, comm.OpCreated, pub.events[0].Op)
	assert.Equal(t, "A", pub.events[0].Student.Name)
	assert.Equal(t, "student.events.cassandra.created", pub.events[0].Subject())

	assert.Equal(t, comm.OpUpdated, pub.events[1].Op)
	assert.Equal(t, "1", pub.events[1].Student.PRN)
	assert.Equal(t, "EE", pub.events[1].Student.Department)

	assert.Equal(t, comm.OpDeleted, pub.events[2].Op)
	assert.Nil(t, pub.events[2].Student)

	for _, evt := range pub.events {
		assert.NotEmpty(t, evt.ID)
		assert.Equal(t, "instance-1", evt.Source)
		assert.Equal(t, "cassandra", evt.Backend)
		assert.False(t, evt.Timestamp.IsZero())
	}
}

func TestFailedWriteDoesNotPublish(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewStudentService("mongo", &stubStore{err: errors.New("down")}, pub, "")

	assert.Error(t, svc.Create(context.Background(), models.Student{PRN: "1"}))
	assert.Error(t, svc.Delete(context.Background(), "1"))
	assert.Empty(t, pub.events)
}

func TestPublishFailureIsNotSurfaced(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("nats down")}
	svc := NewStudentService("mongo", &stubStore{}, pub, "")

	assert.NoError(t, svc.Create(context.Background(), models.Student{PRN: "1"}))
	assert.Len(t, pub.events, 1)
}

func TestNilPublisher(t *testing.T) {
	st := &stubStore{}
	svc := NewStudentService("mongo", st, nil, "")

	require.NoError(t, svc.Create(context.Background(), models.Student{PRN: "1"}))
	assert.Len(t, st.inserted, 1)
	assert.Equal(t, "Stub", svc.StoreName())
	assert.Equal(t, "mongo", svc.Backend())
}
