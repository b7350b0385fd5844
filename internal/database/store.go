package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/musewave/musewave-api/internal/models"
	"github.com/musewave/musewave-api/internal/suggest"
)

// SuggestionStore is the GORM implementation of the tracker's store contract.
type SuggestionStore struct {
	db *gorm.DB
}

// NewSuggestionStore wraps a connected database.
func NewSuggestionStore(db *gorm.DB) *SuggestionStore {
	return &SuggestionStore{db: db}
}

// FindRecent returns up to limit records for the scope, most recent first.
func (s *SuggestionStore) FindRecent(field suggest.Field, scopeKey string, limit int) ([]suggest.Record, error) {
	var rows []models.SuggestionRecord
	err := s.db.
		Where("field = ? AND scope_key = ?", string(field), scopeKey).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]suggest.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, suggest.Record{
			Field:     suggest.Field(row.Field),
			ScopeKey:  row.ScopeKey,
			Text:      row.Text,
			UserID:    row.UserID,
			CreatedAt: row.CreatedAt,
		})
	}
	return records, nil
}

// Insert appends one accepted suggestion.
func (s *SuggestionStore) Insert(rec suggest.Record) error {
	return s.db.Create(&models.SuggestionRecord{
		CreatedAt: rec.CreatedAt,
		Field:     string(rec.Field),
		ScopeKey:  rec.ScopeKey,
		Text:      rec.Text,
		UserID:    rec.UserID,
	}).Error
}

// IncrementTurn atomically bumps the scope's counter via upsert-increment
// and reads the new value back.
func (s *SuggestionStore) IncrementTurn(field suggest.Field, scopeKey string) (int, error) {
	counter := models.SuggestionCounter{
		Field:    string(field),
		ScopeKey: scopeKey,
		Turn:     1,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "field"}, {Name: "scope_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"turn": gorm.Expr("suggestion_counters.turn + 1")}),
	}).Create(&counter).Error
	if err != nil {
		return 0, err
	}

	var row models.SuggestionCounter
	err = s.db.
		Where("field = ? AND scope_key = ?", string(field), scopeKey).
		First(&row).Error
	if err != nil {
		return 0, err
	}
	return row.Turn, nil
}
