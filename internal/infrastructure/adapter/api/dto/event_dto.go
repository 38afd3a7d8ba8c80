package dto

// EventRequest is the payload for creating or updating an event
type EventRequest struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

// EventResponse is the public representation of an event
type EventResponse struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Details   string `json:"details"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
