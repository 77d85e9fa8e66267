package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(s *game.Session) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByKey(key string) (*game.Session, error) {
	var s game.Session
	err := r.db.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("turn_order ASC")
	}).Where("session_key = ?", key).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateSession(s *game.Session) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error
}

func (r *sqliteRepository) DeleteSession(key string) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var s game.Session
	if err := tx.Where("session_key = ?", key).First(&s).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := tx.Where("session_id = ?", s.ID).Delete(&game.Player{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&s).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (r *sqliteRepository) RemovePlayer(sessionID uint, playerID string) error {
	res := r.db.Where("session_id = ? AND player_id = ?", sessionID, playerID).Delete(&game.Player{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
