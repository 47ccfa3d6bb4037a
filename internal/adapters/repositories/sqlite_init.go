package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSendersQuery := `
	CREATE TABLE IF NOT EXISTS senders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT ''
	);
	`

	createRecipientsQuery := `
	CREATE TABLE IF NOT EXISTS recipients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL
	);
	`

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tracking_number TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL DEFAULT '',
		service_type TEXT NOT NULL,
		origin_street TEXT NOT NULL,
		origin_city TEXT NOT NULL,
		origin_state TEXT NOT NULL,
		origin_postal_code TEXT NOT NULL,
		origin_country TEXT NOT NULL,
		destination_street TEXT NOT NULL,
		destination_city TEXT NOT NULL,
		destination_state TEXT NOT NULL,
		destination_postal_code TEXT NOT NULL,
		destination_country TEXT NOT NULL,
		special_instructions TEXT NOT NULL DEFAULT '',
		is_paid INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		estimated_delivery TEXT NOT NULL,
		delivered_at TEXT,
		sender_id INTEGER REFERENCES senders(id),
		recipient_id INTEGER NOT NULL REFERENCES recipients(id)
	);
	`

	createPackagesQuery := `
	CREATE TABLE IF NOT EXISTS packages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		shipment_id INTEGER NOT NULL REFERENCES shipments(id),
		package_type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		length REAL NOT NULL DEFAULT 0,
		width REAL NOT NULL DEFAULT 0,
		height REAL NOT NULL DEFAULT 0,
		weight REAL NOT NULL,
		declared_value REAL,
		pieces INTEGER NOT NULL DEFAULT 1,
		dangerous INTEGER NOT NULL DEFAULT 0,
		insured INTEGER NOT NULL DEFAULT 0
	);
	`

	createTrackingUpdatesQuery := `
	CREATE TABLE IF NOT EXISTS tracking_updates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		shipment_id INTEGER NOT NULL REFERENCES shipments(id),
		timestamp TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL
	);
	`

	createSupportRequestsQuery := `
	CREATE TABLE IF NOT EXISTS support_requests (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		tracking_number TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createIndexesQuery := `
	CREATE INDEX IF NOT EXISTS idx_packages_shipment ON packages(shipment_id);
	CREATE INDEX IF NOT EXISTS idx_tracking_updates_shipment ON tracking_updates(shipment_id, timestamp);
	CREATE INDEX IF NOT EXISTS idx_shipments_user ON shipments(user_id);
	`

	statements := []string{
		createSendersQuery,
		createRecipientsQuery,
		createShipmentsQuery,
		createPackagesQuery,
		createTrackingUpdatesQuery,
		createSupportRequestsQuery,
		createIndexesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type contactSeed struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type addressSeed struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type packageSeed struct {
	PackageType   string   `json:"package_type"`
	Description   string   `json:"description"`
	Length        float64  `json:"length"`
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	Weight        float64  `json:"weight"`
	DeclaredValue *float64 `json:"declared_value"`
	Pieces        int      `json:"pieces"`
	Dangerous     bool     `json:"dangerous"`
	Insured       bool     `json:"insured"`
}

type trackingUpdateSeed struct {
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
}

type ShipmentSeed struct {
	TrackingNumber      string               `json:"tracking_number"`
	UserID              string               `json:"user_id"`
	ServiceType         string               `json:"service_type"`
	Origin              addressSeed          `json:"origin"`
	Destination         addressSeed          `json:"destination"`
	SpecialInstructions string               `json:"special_instructions"`
	IsPaid              bool                 `json:"is_paid"`
	CreatedAt           time.Time            `json:"created_at"`
	EstimatedDelivery   time.Time            `json:"estimated_delivery"`
	DeliveredAt         *time.Time           `json:"delivered_at"`
	Sender              *contactSeed         `json:"sender"`
	Recipient           contactSeed          `json:"recipient"`
	Packages            []packageSeed        `json:"packages"`
	TrackingUpdates     []trackingUpdateSeed `json:"tracking_updates"`
}

// Populate the database with shipment data from a JSON file. Seeding
// is idempotent: a shipment already present under the same tracking
// number is replaced wholesale, children included.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed shipments: read %q: %w", jsonPath, err)
	}

	var data []ShipmentSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed shipments: parse json: %w", err)
	}

	for i, s := range data {
		tn := strings.ToUpper(strings.TrimSpace(s.TrackingNumber))
		if tn == "" {
			return fmt.Errorf("seed shipments: item at index %d: tracking number cannot be empty", i+1)
		}
		if strings.TrimSpace(s.Recipient.Name) == "" || strings.TrimSpace(s.Recipient.Phone) == "" {
			return fmt.Errorf("seed shipments: %s: recipient name and phone are required", tn)
		}
		if len(s.Packages) == 0 {
			return fmt.Errorf("seed shipments: %s: at least one package is required", tn)
		}

		if err := seedShipment(db, tn, s); err != nil {
			return fmt.Errorf("seed shipments: %s: %w", tn, err)
		}
	}

	return nil
}

func seedShipment(db *sql.DB, trackingNumber string, s ShipmentSeed) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Replace the previous incarnation of this shipment, if any.
	var oldID int64
	err = tx.QueryRow(`SELECT id FROM shipments WHERE tracking_number = ?;`, trackingNumber).Scan(&oldID)
	switch {
	case err == nil:
		for _, del := range []string{
			`DELETE FROM packages WHERE shipment_id = ?;`,
			`DELETE FROM tracking_updates WHERE shipment_id = ?;`,
			`DELETE FROM shipments WHERE id = ?;`,
		} {
			if _, err := tx.Exec(del, oldID); err != nil {
				return fmt.Errorf("delete previous rows: %w", err)
			}
		}
	case errors.Is(err, sql.ErrNoRows):
		// first insert
	default:
		return fmt.Errorf("lookup previous shipment: %w", err)
	}

	var senderID *int64
	if s.Sender != nil {
		res, err := tx.Exec(
			`INSERT INTO senders (name, company, email, phone) VALUES (?, ?, ?, ?);`,
			s.Sender.Name, s.Sender.Company, s.Sender.Email, s.Sender.Phone,
		)
		if err != nil {
			return fmt.Errorf("insert sender: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("sender id: %w", err)
		}
		senderID = &id
	}

	res, err := tx.Exec(
		`INSERT INTO recipients (name, company, email, phone) VALUES (?, ?, ?, ?);`,
		s.Recipient.Name, s.Recipient.Company, s.Recipient.Email, s.Recipient.Phone,
	)
	if err != nil {
		return fmt.Errorf("insert recipient: %w", err)
	}
	recipientID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("recipient id: %w", err)
	}

	var deliveredAt any
	if s.DeliveredAt != nil {
		deliveredAt = s.DeliveredAt.UTC().Format(time.RFC3339)
	}

	res, err = tx.Exec(`
	INSERT INTO shipments (
		tracking_number, user_id, service_type,
		origin_street, origin_city, origin_state, origin_postal_code, origin_country,
		destination_street, destination_city, destination_state, destination_postal_code, destination_country,
		special_instructions, is_paid, created_at, estimated_delivery, delivered_at,
		sender_id, recipient_id
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		trackingNumber, s.UserID, s.ServiceType,
		s.Origin.Street, s.Origin.City, s.Origin.State, s.Origin.PostalCode, s.Origin.Country,
		s.Destination.Street, s.Destination.City, s.Destination.State, s.Destination.PostalCode, s.Destination.Country,
		s.SpecialInstructions, boolToInt(s.IsPaid),
		s.CreatedAt.UTC().Format(time.RFC3339), s.EstimatedDelivery.UTC().Format(time.RFC3339), deliveredAt,
		senderID, recipientID,
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	shipmentID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("shipment id: %w", err)
	}

	pkgStmt, err := tx.Prepare(`
	INSERT INTO packages (
		shipment_id, package_type, description,
		length, width, height, weight, declared_value,
		pieces, dangerous, insured
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("prepare package insert: %w", err)
	}
	defer pkgStmt.Close()

	for _, p := range s.Packages {
		if _, err := pkgStmt.Exec(
			shipmentID, p.PackageType, p.Description,
			p.Length, p.Width, p.Height, p.Weight, p.DeclaredValue,
			p.Pieces, boolToInt(p.Dangerous), boolToInt(p.Insured),
		); err != nil {
			return fmt.Errorf("insert package: %w", err)
		}
	}

	evtStmt, err := tx.Prepare(`
	INSERT INTO tracking_updates (shipment_id, timestamp, location, status, message)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("prepare tracking update insert: %w", err)
	}
	defer evtStmt.Close()

	for _, u := range s.TrackingUpdates {
		if _, err := evtStmt.Exec(
			shipmentID, u.Timestamp.UTC().Format(time.RFC3339), u.Location, u.Status, u.Message,
		); err != nil {
			return fmt.Errorf("insert tracking update: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
