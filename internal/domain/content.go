package domain

import "time"

// ContentBlock is an editable HTML fragment keyed by page section, e.g.
// "aboutUs".
type ContentBlock struct {
	Key       string    `json:"key"`
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updatedAt"`
}
