package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Credential is one persisted entry of the admin session. Entries are plain
// key/value rows so the session survives process restarts.
type Credential struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

// Storage keys for the admin session. The "admin." prefix keeps these rows
// from colliding with anything else the database might hold later.
const (
	KeyAccessToken  = "admin.access_token"
	KeyRefreshToken = "admin.refresh_token"
	KeyUser         = "admin.user"
)

// CredentialRepository defines decoupled operations for credential persistence.
type CredentialRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, entries map[string]string) error
	Clear(ctx context.Context) error
}

// gormCredentialRepo is a GORM-backed implementation of CredentialRepository.
// Use constructor NewCredentialRepository to obtain an instance.
type gormCredentialRepo struct{ db *gorm.DB }

// NewCredentialRepository creates a CredentialRepository. Accepts *gorm.DB to avoid global access.
func NewCredentialRepository(db *gorm.DB) CredentialRepository { return &gormCredentialRepo{db: db} }

// Get returns the stored value for key, or the empty string when no row exists.
func (r *gormCredentialRepo) Get(ctx context.Context, key string) (string, error) {
	if r.db == nil {
		return "", fmt.Errorf("repository not initialized")
	}
	var cred Credential
	err := r.db.WithContext(ctx).First(&cred, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return cred.Value, nil
}

func (r *gormCredentialRepo) Set(ctx context.Context, key, value string) error {
	if r.db == nil {
		return fmt.Errorf("repository not initialized")
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Credential{Key: key, Value: value}).Error
}

// SetMany writes all entries inside one transaction, so a token pair is
// replaced atomically and a crash cannot leave a mix of old and new values.
func (r *gormCredentialRepo) SetMany(ctx context.Context, entries map[string]string) error {
	if r.db == nil {
		return fmt.Errorf("repository not initialized")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&Credential{Key: key, Value: value}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes every admin-namespaced credential row.
func (r *gormCredentialRepo) Clear(ctx context.Context) error {
	if r.db == nil {
		return fmt.Errorf("repository not initialized")
	}
	return r.db.WithContext(ctx).Where("key LIKE ?", "admin.%").Delete(&Credential{}).Error
}
