package comm

import (
	"encoding/json"
	"time"

	"github.com/avvvet/student-services/internal/studentsvc/models"
)

const (
	EventsSubject = "student.events"

	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

type WSMessage struct {
	Type string          `json:"type"` // e.g. "student-event", "error"
	Data json.RawMessage `json:"data"`
}

// StudentEvent is published after every successful write on either store.
type StudentEvent struct {
	ID        string          `json:"id"`
	Backend   string          `json:"backend"` // cassandra or mongo
	Op        string          `json:"op"`
	PRN       string          `json:"prn"`
	Student   *models.Student `json:"student,omitempty"`
	Source    string          `json:"source"` // instance id of the publishing service
	Timestamp time.Time       `json:"timestamp"`
}

// Subject is student.events.<backend>.<op>
func (e StudentEvent) Subject() string {
	return EventsSubject + "." + e.Backend + "." + e.Op
}
