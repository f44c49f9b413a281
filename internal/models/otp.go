package models

import "time"

// OTPToken holds the current activation or password-reset code for a
// contact. At most one row per contact: issuing a new code replaces the
// prior one, and consuming the code deletes the row.
type OTPToken struct {
	Contact   string    `gorm:"size:20;primaryKey" json:"contact"`
	Token     string    `gorm:"size:10;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
