package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/shenikar/community_incident_service/internal/service"
)

type IncidentTypeRepository struct {
	db *pgxpool.Pool
}

func NewIncidentTypeRepository(db *pgxpool.Pool) service.IncidentTypeRepository {
	return &IncidentTypeRepository{db: db}
}

// Create добавляет тип обращения в справочник
func (r *IncidentTypeRepository) Create(ctx context.Context, incidentType *models.IncidentType) error {
	query := `
		INSERT INTO incident_types (code, label)
		VALUES ($1, $2) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incidentType.Code,
		incidentType.Label,
	).Scan(&incidentType.ID, &incidentType.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("incident type with code %s: %w", incidentType.Code, service.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create incident type: %w", err)
	}
	return nil
}

// Delete удаляет тип из справочника. Обращения, ссылающиеся на код,
// остаются как есть - ссылочная целостность не поддерживается.
func (r *IncidentTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM incident_types WHERE id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident type: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident type with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// List возвращает весь справочник типов
func (r *IncidentTypeRepository) List(ctx context.Context) ([]*models.IncidentType, error) {
	query := `
		SELECT id, code, label, created_at
		FROM incident_types
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident types: %w", err)
	}
	defer rows.Close()

	types := make([]*models.IncidentType, 0)
	for rows.Next() {
		incidentType := &models.IncidentType{}
		err := rows.Scan(
			&incidentType.ID,
			&incidentType.Code,
			&incidentType.Label,
			&incidentType.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident type row: %w", err)
		}
		types = append(types, incidentType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in List incident types: %w", err)
	}
	return types, nil
}
