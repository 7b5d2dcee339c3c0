package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/shenikar/community_incident_service/internal/service"
)

const uniqueViolationCode = "23505"

const userColumns = `
	id,
	email,
	password_hash,
	display_name,
	contact,
	photo_url,
	role,
	last_seen_at,
	created_at`

type UserRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewUserRepository(db *pgxpool.Pool, redisClient *redis.Client) service.UserRepository {
	return &UserRepository{
		db:          db,
		redisClient: redisClient,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.Contact,
		&user.PhotoURL,
		&user.Role,
		&user.LastSeenAt,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create создает учетную запись. Роль всегда выставляет база ('user'),
// через этот путь она не назначается.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, display_name, contact)
		VALUES ($1, $2, $3, $4) RETURNING id, role, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.Contact,
	).Scan(&user.ID, &user.Role, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("user with email %s: %w", user.Email, service.ErrEmailTaken)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail возвращает пользователя по email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1;`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s: %w", email, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetByID возвращает пользователя по его UUID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1;`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// UpdateProfile обновляет поля профиля, доступные самому пользователю
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			display_name = $1,
			contact = $2,
			photo_url = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		user.DisplayName,
		user.Contact,
		user.PhotoURL,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s: %w", user.ID, service.ErrNotFound)
	}
	return nil
}

// TouchLastSeen обновляет отметку последней активности пользователя
// и освежает presence-ключ в Redis с TTL равным порогу онлайна
func (r *UserRepository) TouchLastSeen(ctx context.Context, id uuid.UUID, threshold time.Duration) error {
	query := `UPDATE users SET last_seen_at = NOW() WHERE id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to touch last_seen_at: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s: %w", id, service.ErrNotFound)
	}

	key := fmt.Sprintf("presence:%s", id.String())
	if err := r.redisClient.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), threshold).Err(); err != nil {
		return fmt.Errorf("failed to refresh presence key: %w", err)
	}
	return nil
}

// IsOnline проверяет presence-ключ в Redis: пока ключ жив, пользователь онлайн.
// Явного сигнала оффлайна нет - ключ просто истекает по TTL.
func (r *UserRepository) IsOnline(ctx context.Context, id uuid.UUID) (bool, error) {
	key := fmt.Sprintf("presence:%s", id.String())
	n, err := r.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check presence key: %w", err)
	}
	return n > 0, nil
}
