package broker

import (
	"encoding/json"
	"fmt"

	"github.com/avvvet/student-services/internal/comm"
	log "github.com/sirupsen/logrus"
)

// Conn is the part of *nats.Conn the broker needs.
type Conn interface {
	Publish(subject string, data []byte) error
}

type Broker struct {
	Conn Conn
}

func NewBroker(conn Conn) *Broker {
	return &Broker{Conn: conn}
}

// PublishStudentEvent sends the event on its student.events.<backend>.<op> subject.
func (b *Broker) PublishStudentEvent(evt comm.StudentEvent) error {
	bytes, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal student event: %w", err)
	}

	topic := evt.Subject()
	if err := b.Conn.Publish(topic, bytes); err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
		return err
	}

	log.Debugf("published %s event for prn %s to %s", evt.Op, evt.PRN, topic)
	return nil
}
