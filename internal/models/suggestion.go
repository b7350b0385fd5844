package models

import "time"

// SuggestionRecord is one accepted suggestion. Append-only: rows are never
// updated or deleted, and the recent-set for a scope is rebuilt from the
// newest rows on each request.
type SuggestionRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	Field     string    `gorm:"not null;index:idx_scope_field" json:"field"`
	ScopeKey  string    `gorm:"not null;index:idx_scope_field;size:40" json:"scope_key"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	UserID    string    `gorm:"index" json:"user_id"`
}

// SuggestionCounter is the per-scope turn counter, bumped once per request.
// Only an entropy hint; lost updates under contention are acceptable.
type SuggestionCounter struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Field     string    `gorm:"not null;uniqueIndex:idx_counter_scope" json:"field"`
	ScopeKey  string    `gorm:"not null;uniqueIndex:idx_counter_scope;size:40" json:"scope_key"`
	Turn      int       `gorm:"not null;default:0" json:"turn"`
}
