package types

import "time"

// Handle is the live, opened representation of a locator while its owning
// set is active. A failed open is still recorded as a Handle with Err set,
// so activation state keeps exactly one entry per locator in locator order.
type Handle struct {
	HandleID string    `json:"handle_id,omitempty"` // UUID v7, empty for failed opens.
	Locator  string    `json:"locator"`
	OpenedAt time.Time `json:"opened_at,omitzero"`
	Err      string    `json:"err,omitempty"` // Open failure message, empty on success.
}

// OK reports whether the handle refers to a successfully opened resource.
func (h Handle) OK() bool {
	return h.Err == ""
}
