package model

import "time"

// Sheet is a stored chord sheet. Body keeps the text exactly as entered;
// transposition is always applied on read.
type Sheet struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title     string    `gorm:"index:idx_sheet_meta,priority:1" json:"title"`
	Artist    string    `gorm:"index:idx_sheet_meta,priority:2" json:"artist"`
	Key       string    `json:"key"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
