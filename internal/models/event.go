package models

// BookEvent is the payload published to Kafka when a book changes.
type BookEvent struct {
	EventID   string `json:"event_id"`  // Unique event id
	Operation string `json:"operation"` // "created", "updated", or "deleted"
	BookID    int64  `json:"book_id"`   // Affected book
	UserID    int64  `json:"user_id"`   // Acting user
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
