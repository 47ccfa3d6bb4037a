package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shipment-tracking-service/internal/domain"
)

// SQLite-backed implementation of the SupportRequestRepository port.
type SqliteSupportRepository struct{ DB *sql.DB }

func NewSqliteSupportRepository(db *sql.DB) *SqliteSupportRepository {
	return &SqliteSupportRepository{DB: db}
}

// Store a validated support request.
func (s *SqliteSupportRepository) Create(ctx context.Context, req *domain.SupportRequest) error {
	if s.DB == nil {
		return errors.New("sqlite support repository: DB is nil")
	}

	query := `
	INSERT INTO support_requests (id, name, email, tracking_number, category, message, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(ctx, query,
		req.ID, req.Name, req.Email, req.TrackingNumber, req.Category, req.Message,
		req.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create support request %s: %w", req.ID, err)
	}

	return nil
}
