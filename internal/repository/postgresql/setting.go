package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/setting"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepositoryImpl{db: db}
}

// Get implements setting.SettingRepository.
func (r *settingRepositoryImpl) Get(ctx context.Context, key string) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	var s setting.Setting
	err := q.QueryRow(ctx, `SELECT key, value, updated_at FROM settings WHERE key = $1`, key).
		Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return s, nil
}

// List implements setting.SettingRepository.
func (r *settingRepositoryImpl) List(ctx context.Context) ([]setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var settings []setting.Setting
	for rows.Next() {
		var s setting.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Upsert implements setting.SettingRepository.
func (r *settingRepositoryImpl) Upsert(ctx context.Context, s setting.Setting) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING key, value, updated_at
	`

	var saved setting.Setting
	if err := q.QueryRow(ctx, query, s.Key, s.Value).Scan(&saved.Key, &saved.Value, &saved.UpdatedAt); err != nil {
		return setting.Setting{}, fmt.Errorf("failed to upsert setting %s: %w", s.Key, err)
	}
	return saved, nil
}
