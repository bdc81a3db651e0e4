package model

import "time"

// Note describes one uploaded blob. The bytes themselves live in the
// blob store under {branch}/{filename}, so two notes with the same
// branch and filename point at the same object. Rows are append-only:
// a re-upload overwrites the blob but never touches older rows.
type Note struct {
	ID uint `gorm:"primaryKey;autoIncrement;index" json:"id"`

	// Original file name as sent by the client, after path
	// sanitization. Uniqueness is not enforced
	Filename string `gorm:"not null" json:"filename"`

	// Free-form category tag, one blob store directory per value
	Branch string `gorm:"index;not null" json:"branch"`

	UploaderEmail string    `gorm:"index;not null" json:"uploader_email"`
	UploadedAt    time.Time `gorm:"not null" json:"uploaded_at"`
}
