package entity

import "time"

// Curriculum is an uploaded CV. FileKey is the object key in the bucket.
type Curriculum struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	File      string    `json:"file"`
	FileKey   string    `json:"fileKey"`
	CreatedAt time.Time `json:"created_at"`
}
