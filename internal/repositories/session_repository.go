package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"seoulplanner/internal/models/db_models"
)

type SessionRepositoryInterface interface {
	InsertSession(ctx context.Context, session *db_models.RememberedSession) error
	FindSessionByLookup(ctx context.Context, lookup string) (*db_models.RememberedSession, error)
	DeleteSessionsByUID(ctx context.Context, tripUID string) error
	UpsertAPIKey(ctx context.Context, tripUID string, apiKey string) error
	FindAPIKey(ctx context.Context, tripUID string) (string, error)
}

func NewSessionRepository(db *gorm.DB) SessionRepositoryInterface {
	return &SessionRepository{db: db}
}

type SessionRepository struct {
	db *gorm.DB
}

func (r *SessionRepository) InsertSession(ctx context.Context, session *db_models.RememberedSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) FindSessionByLookup(ctx context.Context, lookup string) (*db_models.RememberedSession, error) {
	var session db_models.RememberedSession
	err := r.db.WithContext(ctx).Where("token_lookup = ?", lookup).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) DeleteSessionsByUID(ctx context.Context, tripUID string) error {
	return r.db.WithContext(ctx).Where("trip_uid = ?", tripUID).Delete(&db_models.RememberedSession{}).Error
}

func (r *SessionRepository) UpsertAPIKey(ctx context.Context, tripUID string, apiKey string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var setting db_models.UserSetting
		err := tx.Where("trip_uid = ?", tripUID).First(&setting).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&db_models.UserSetting{TripUID: tripUID, GeminiAPIKey: apiKey}).Error
		}
		if err != nil {
			return err
		}
		setting.GeminiAPIKey = apiKey
		return tx.Save(&setting).Error
	})
}

func (r *SessionRepository) FindAPIKey(ctx context.Context, tripUID string) (string, error) {
	var setting db_models.UserSetting
	err := r.db.WithContext(ctx).Where("trip_uid = ?", tripUID).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.GeminiAPIKey, nil
}
