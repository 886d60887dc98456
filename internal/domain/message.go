package domain

import "time"

type MessageStatus string

const (
	MessageNew  MessageStatus = "New"
	MessageRead MessageStatus = "Read"
)

// Message is an entry in the contact-form inbox.
type Message struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Body      string        `json:"body"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
