package ws

import "encoding/json"

const (
	EventMessageReceived     = "message.received"
	EventNotificationCreated = "notification.created"
)

// Event is the frame pushed to subscribers. Data is whatever entity the event
// is about; clients re-fetch through REST if they need more.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Encode marshals an event frame. A payload that cannot be marshaled is a
// programming error; callers treat a nil return as "skip the push".
func Encode(event string, data any) []byte {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		return nil
	}
	return payload
}
