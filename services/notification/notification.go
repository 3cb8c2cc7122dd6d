package notification

import (
	"fmt"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Session keys set when a websocket is accepted
const (
	KeyUserID = "userID"
	KeyRole   = "role"
)

// Event is the JSON frame pushed to websocket clients
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

const (
	EventHotelPending    = "hotel.pending"
	EventPendingReminder = "hotel.pending.reminder"
	EventDailyRevenue    = "revenue.daily"
)

type Service interface {
	SendToUsers(userIDs []string, event Event) error
	SendToAdmins(event Event) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) send(event Event, keep func(*melody.Session) bool) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	msg, err := NewMessageBuilder(event).Build()
	if err != nil {
		return err
	}
	return s.m.BroadcastFilter(msg, keep)
}

// SendToUsers writes event to every open socket of the given users
func (s *MelodyService) SendToUsers(userIDs []string, event Event) error {
	targets := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		targets[id] = true
	}
	return s.send(event, func(sess *melody.Session) bool {
		id, ok := sess.Get(KeyUserID)
		if !ok {
			return false
		}
		userID, _ := id.(string)
		return targets[userID]
	})
}

func (s *MelodyService) SendToAdmins(event Event) error {
	return s.send(event, func(sess *melody.Session) bool {
		role, ok := sess.Get(KeyRole)
		return ok && role == constants.RoleAdmin
	})
}

type MessageBuilder struct {
	event Event
}

func NewMessageBuilder(event Event) *MessageBuilder {
	return &MessageBuilder{event: event}
}

func (b *MessageBuilder) Build() ([]byte, error) {
	return json.Marshal(b.event)
}
