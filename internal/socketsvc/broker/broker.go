package broker

import (
	"encoding/json"

	"github.com/avvvet/student-services/internal/comm"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

type Broker struct {
	Conn      *nats.Conn
	Broadcast func([]byte)
}

func NewBroker(conn *nats.Conn, fncBroadcast func([]byte)) *Broker {
	return &Broker{
		Conn:      conn,
		Broadcast: fncBroadcast,
	}
}

// Subscribe consumes student events, e.g. topic "student.events.>"
func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// handleMessages receive student events from the student service
func (b *Broker) handleMessages(msgNats *nats.Msg) {
	evt := comm.StudentEvent{}
	if err := json.Unmarshal(msgNats.Data, &evt); err != nil {
		log.Errorf("Error invalid student event on %s: %s", msgNats.Subject, err)
		return
	}

	frame, err := json.Marshal(comm.WSMessage{Type: "student-event", Data: msgNats.Data})
	if err != nil {
		log.Errorf("Error %s", err)
		return
	}

	log.Debugf("forwarding %s/%s event for prn %s", evt.Backend, evt.Op, evt.PRN)
	b.Broadcast(frame)
}
