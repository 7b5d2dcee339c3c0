package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/shenikar/community_incident_service/internal/service"
)

type PushTokenRepository struct {
	db *pgxpool.Pool
}

func NewPushTokenRepository(db *pgxpool.Pool) service.PushTokenRepository {
	return &PushTokenRepository{db: db}
}

// Upsert сохраняет токен, ключом служит сама строка токена.
// Повторная регистрация того же токена только освежает updated_at
// и привязку к пользователю, ничего больше не перезаписывая.
func (r *PushTokenRepository) Upsert(ctx context.Context, token *models.PushToken) error {
	query := `
		INSERT INTO push_tokens (token, user_id)
		VALUES ($1, $2)
		ON CONFLICT (token) DO UPDATE SET
			user_id = COALESCE(EXCLUDED.user_id, push_tokens.user_id),
			updated_at = NOW()
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, token.Token, token.UserID).
		Scan(&token.CreatedAt, &token.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert push token: %w", err)
	}
	return nil
}

// Delete удаляет ровно одну запись токена по ключу.
// Подписку на стороне браузера это не отзывает.
func (r *PushTokenRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM push_tokens WHERE token = $1;`

	cmdTag, err := r.db.Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to delete push token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("push token: %w", service.ErrNotFound)
	}
	return nil
}

// ListAll возвращает все зарегистрированные токены для рассылки
func (r *PushTokenRepository) ListAll(ctx context.Context) ([]string, error) {
	query := `SELECT token FROM push_tokens ORDER BY created_at;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list push tokens: %w", err)
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("failed to scan push token row: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListAll push tokens: %w", err)
	}
	return tokens, nil
}
