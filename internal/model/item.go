package model

// Item is the domain model for a todo entry.
// ID is assigned by the store and never changes.
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
