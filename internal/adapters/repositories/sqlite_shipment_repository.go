package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/platform/obs"
)

// SQLite-backed implementation of the ShipmentRepository port.
type SqliteShipmentRepository struct{ DB *sql.DB }

func NewSqliteShipmentRepository(db *sql.DB) *SqliteShipmentRepository {
	return &SqliteShipmentRepository{DB: db}
}

const shipmentColumns = `
	s.id, s.tracking_number, s.user_id, s.service_type,
	s.origin_street, s.origin_city, s.origin_state, s.origin_postal_code, s.origin_country,
	s.destination_street, s.destination_city, s.destination_state, s.destination_postal_code, s.destination_country,
	s.special_instructions, s.is_paid, s.created_at, s.estimated_delivery, s.delivered_at,
	sen.id, sen.name, sen.company, sen.email, sen.phone,
	rec.id, rec.name, rec.company, rec.email, rec.phone
`

// Return one shipment with sender, recipient, packages and events by
// its coerced tracking number. A miss yields domain.ErrShipmentNotFound.
func (s *SqliteShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (_ *domain.Shipment, err error) {
	defer obs.Time(ctx, "shipments.GetByTrackingNumber")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite shipment repository: DB is nil")
	}

	query := fmt.Sprintf(`
	SELECT %s
	FROM shipments s
	LEFT JOIN senders sen ON sen.id = s.sender_id
	JOIN recipients rec ON rec.id = s.recipient_id
	WHERE s.tracking_number = ?;
	`, shipmentColumns)

	row := s.DB.QueryRowContext(ctx, query, trackingNumber)
	shipment, err := scanShipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get shipment %q: %w", trackingNumber, err)
	}

	if err := s.loadChildren(ctx, shipment); err != nil {
		return nil, fmt.Errorf("get shipment %q: %w", trackingNumber, err)
	}

	return shipment, nil
}

// Return all shipments for one user, children included, newest first.
func (s *SqliteShipmentRepository) ListByUser(ctx context.Context, userID string) (_ []*domain.Shipment, err error) {
	defer obs.Time(ctx, "shipments.ListByUser")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite shipment repository: DB is nil")
	}

	query := fmt.Sprintf(`
	SELECT %s
	FROM shipments s
	LEFT JOIN senders sen ON sen.id = s.sender_id
	JOIN recipients rec ON rec.id = s.recipient_id
	WHERE s.user_id = ?
	ORDER BY s.created_at DESC;
	`, shipmentColumns)

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list shipments: query shipments table: %w", err)
	}
	defer rows.Close()

	shipments := make([]*domain.Shipment, 0, 16)
	for rows.Next() {
		shipment, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("list shipments: scan row: %w", err)
		}
		shipments = append(shipments, shipment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipments: row iteration: %w", err)
	}

	for _, shipment := range shipments {
		if err := s.loadChildren(ctx, shipment); err != nil {
			return nil, fmt.Errorf("list shipments: %s: %w", shipment.TrackingNumber, err)
		}
	}

	return shipments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipment(row rowScanner) (*domain.Shipment, error) {
	var (
		shipment                                                        domain.Shipment
		userID                                                          string
		serviceType                                                     string
		isPaid                                                          int
		createdAt, estimatedDelivery                                    string
		deliveredAt                                                     sql.NullString
		senderID                                                        sql.NullInt64
		senderName, senderCompany, senderEmail, senderPhone             sql.NullString
		recipientID                                                     int
		recipientName, recipientCompany, recipientEmail, recipientPhone string
	)

	err := row.Scan(
		&shipment.ID, &shipment.TrackingNumber, &userID, &serviceType,
		&shipment.Origin.Street, &shipment.Origin.City, &shipment.Origin.State,
		&shipment.Origin.PostalCode, &shipment.Origin.Country,
		&shipment.Destination.Street, &shipment.Destination.City, &shipment.Destination.State,
		&shipment.Destination.PostalCode, &shipment.Destination.Country,
		&shipment.SpecialInstructions, &isPaid, &createdAt, &estimatedDelivery, &deliveredAt,
		&senderID, &senderName, &senderCompany, &senderEmail, &senderPhone,
		&recipientID, &recipientName, &recipientCompany, &recipientEmail, &recipientPhone,
	)
	if err != nil {
		return nil, err
	}

	shipment.ServiceType = domain.ServiceType(serviceType)
	shipment.IsPaid = isPaid != 0

	if shipment.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	if shipment.EstimatedDelivery, err = parseTimestamp(estimatedDelivery); err != nil {
		return nil, fmt.Errorf("estimated_delivery: %w", err)
	}
	if deliveredAt.Valid {
		ts, err := parseTimestamp(deliveredAt.String)
		if err != nil {
			return nil, fmt.Errorf("delivered_at: %w", err)
		}
		shipment.DeliveredAt = &ts
	}

	if senderID.Valid {
		shipment.Sender = &domain.Sender{
			ID:      int(senderID.Int64),
			Name:    senderName.String,
			Company: senderCompany.String,
			Email:   senderEmail.String,
			Phone:   senderPhone.String,
		}
	}

	shipment.Recipient = domain.Recipient{
		ID:      recipientID,
		Name:    recipientName,
		Company: recipientCompany,
		Email:   recipientEmail,
		Phone:   recipientPhone,
	}

	return &shipment, nil
}

func (s *SqliteShipmentRepository) loadChildren(ctx context.Context, shipment *domain.Shipment) error {
	pkgs, err := s.loadPackages(ctx, shipment.ID)
	if err != nil {
		return err
	}
	shipment.Packages = pkgs

	events, err := s.loadTrackingEvents(ctx, shipment.ID)
	if err != nil {
		return err
	}
	shipment.TrackingEvents = events

	return nil
}

func (s *SqliteShipmentRepository) loadPackages(ctx context.Context, shipmentID int) ([]domain.Package, error) {
	query := `
	SELECT
		id, package_type, description,
		length, width, height, weight, declared_value,
		pieces, dangerous, insured
	FROM packages
	WHERE shipment_id = ?
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("query packages table: %w", err)
	}
	defer rows.Close()

	packages := make([]domain.Package, 0, 4)
	for rows.Next() {
		var (
			pkg                domain.Package
			declaredValue      sql.NullFloat64
			dangerous, insured int
		)
		// Weight has no NULL arm on purpose: a package without a
		// weight is a data defect the scan must surface.
		err := rows.Scan(
			&pkg.ID, &pkg.PackageType, &pkg.Description,
			&pkg.Length, &pkg.Width, &pkg.Height, &pkg.Weight, &declaredValue,
			&pkg.Pieces, &dangerous, &insured,
		)
		if err != nil {
			return nil, fmt.Errorf("scan package row: %w", err)
		}

		if declaredValue.Valid {
			v := declaredValue.Float64
			pkg.DeclaredValue = &v
		}
		pkg.Dangerous = dangerous != 0
		pkg.Insured = insured != 0

		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("package row iteration: %w", err)
	}

	return packages, nil
}

func (s *SqliteShipmentRepository) loadTrackingEvents(ctx context.Context, shipmentID int) ([]domain.TrackingEvent, error) {
	query := `
	SELECT id, timestamp, location, status, message
	FROM tracking_updates
	WHERE shipment_id = ?
	ORDER BY timestamp ASC;
	`
	rows, err := s.DB.QueryContext(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("query tracking_updates table: %w", err)
	}
	defer rows.Close()

	events := make([]domain.TrackingEvent, 0, 8)
	for rows.Next() {
		var (
			event domain.TrackingEvent
			ts    string
		)
		if err := rows.Scan(&event.ID, &ts, &event.Location, &event.Status, &event.Message); err != nil {
			return nil, fmt.Errorf("scan tracking update row: %w", err)
		}
		if event.Timestamp, err = parseTimestamp(ts); err != nil {
			return nil, fmt.Errorf("tracking update timestamp: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tracking update row iteration: %w", err)
	}

	return events, nil
}

// Timestamps are stored as RFC3339 TEXT.
func parseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return ts, nil
}
