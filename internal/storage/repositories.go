// Package storage provides the database models and repositories behind the
// listing workflow.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
)

// Common errors
var ErrNotFound = errors.New("record not found")

// DB represents a database connection interface.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// WarehouseRepository persists finished listing records across the warehouses
// and warehouse_data tables. It needs a *sql.DB rather than the DB interface
// because the two inserts share a transaction.
type WarehouseRepository struct {
	db *sql.DB
}

// NewWarehouseRepository creates a new warehouse repository.
func NewWarehouseRepository(db *sql.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

// Create writes the core row and its secondary attributes in one transaction
// and returns the new warehouse id.
func (r *WarehouseRepository) Create(ctx context.Context, rec *listing.Record) (int64, error) {
	sizes, err := json.Marshal(rec.Submission.TotalSpaceSqft)
	if err != nil {
		return 0, fmt.Errorf("encode sizes: %w", err)
	}
	photos := rec.Photos
	if photos == nil && rec.Submission.Photos != "" {
		photos = &rec.Submission.Photos
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	query := `
		INSERT INTO warehouses (warehouse_type, address, google_location, city, state,
			postal_code, zone, contact_person, contact_number, total_space_sqft,
			offered_space_sqft, number_of_docks, clear_height_ft, compliances,
			other_specifications, rate_per_sqft, availability, uploaded_by, is_broker,
			photos, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id
	`
	sub := rec.Submission
	err = tx.QueryRowContext(ctx, query,
		sub.WarehouseType, sub.Address, sub.GoogleLocation, sub.City, sub.State,
		sub.PostalCode, string(rec.Zone), sub.ContactPerson, sub.ContactNumber,
		string(sizes), sub.OfferedSpaceSqft, sub.NumberOfDocks, sub.ClearHeightFt,
		sub.Compliances, sub.OtherSpecifications, sub.RatePerSqft, sub.Availability,
		sub.UploadedBy, sub.IsBroker, photos, time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert warehouse: %w", err)
	}

	query = `
		INSERT INTO warehouse_data (warehouse_id, warehouse_owner_type, fire_noc_available,
			fire_safety_measures, land_type, vaastu_compliance, approach_road_width,
			dimensions, parking_docking_space, pollution_zone, power_kva)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = tx.ExecContext(ctx, query,
		id, sub.WarehouseOwnerType, sub.FireNocAvailable.String(),
		sub.FireSafetyMeasures, sub.LandType, sub.VaastuCompliance,
		sub.ApproachRoadWidth, sub.Dimensions, sub.ParkingDockingSpace,
		sub.PollutionZone, sub.PowerKva,
	)
	if err != nil {
		return 0, fmt.Errorf("insert warehouse data: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// GetByID reads back one committed listing with its secondary attributes.
func (r *WarehouseRepository) GetByID(ctx context.Context, id int64) (*Warehouse, *WarehouseData, error) {
	query := `
		SELECT id, warehouse_type, address, google_location, city, state, postal_code,
			zone, contact_person, contact_number, total_space_sqft, offered_space_sqft,
			number_of_docks, clear_height_ft, compliances, other_specifications,
			rate_per_sqft, availability, uploaded_by, is_broker, photos, created_at
		FROM warehouses WHERE id = $1
	`
	wh := &Warehouse{}
	var sizes string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&wh.ID, &wh.WarehouseType, &wh.Address, &wh.GoogleLocation, &wh.City,
		&wh.State, &wh.PostalCode, &wh.Zone, &wh.ContactPerson, &wh.ContactNumber,
		&sizes, &wh.OfferedSpaceSqft, &wh.NumberOfDocks, &wh.ClearHeightFt,
		&wh.Compliances, &wh.OtherSpecifications, &wh.RatePerSqft, &wh.Availability,
		&wh.UploadedBy, &wh.IsBroker, &wh.Photos, &wh.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if err := json.Unmarshal([]byte(sizes), &wh.TotalSpaceSqft); err != nil {
		return nil, nil, fmt.Errorf("decode sizes: %w", err)
	}

	query = `
		SELECT id, warehouse_id, warehouse_owner_type, fire_noc_available,
			fire_safety_measures, land_type, vaastu_compliance, approach_road_width,
			dimensions, parking_docking_space, pollution_zone, power_kva
		FROM warehouse_data WHERE warehouse_id = $1
	`
	data := &WarehouseData{}
	err = r.db.QueryRowContext(ctx, query, id).Scan(
		&data.ID, &data.WarehouseID, &data.WarehouseOwnerType, &data.FireNocAvailable,
		&data.FireSafetyMeasures, &data.LandType, &data.VaastuCompliance,
		&data.ApproachRoadWidth, &data.Dimensions, &data.ParkingDockingSpace,
		&data.PollutionZone, &data.PowerKva,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return wh, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return wh, data, nil
}

// DraftRepository stores open drafts as JSON payloads keyed by sender.
type DraftRepository struct {
	db DB
}

// NewDraftRepository creates a new draft repository.
func NewDraftRepository(db DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Get returns the open draft for sender, or nil when none exists.
func (r *DraftRepository) Get(ctx context.Context, sender string) (*listing.Draft, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM drafts WHERE sender = $1`, sender).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	draft := &listing.Draft{}
	if err := json.Unmarshal([]byte(payload), draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

// Put upserts the draft for its sender.
func (r *DraftRepository) Put(ctx context.Context, draft *listing.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	query := `
		INSERT INTO drafts (sender, payload, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (sender) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at
	`
	_, err = r.db.ExecContext(ctx, query, draft.Sender, string(payload), draft.CreatedAt.UTC())
	return err
}

// Delete removes the draft for sender. Deleting an absent draft is not an
// error.
func (r *DraftRepository) Delete(ctx context.Context, sender string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE sender = $1`, sender)
	return err
}

// MessageLogRepository appends processing attempt records.
type MessageLogRepository struct {
	db DB
}

// NewMessageLogRepository creates a new message log repository.
func NewMessageLogRepository(db DB) *MessageLogRepository {
	return &MessageLogRepository{db: db}
}

// Append writes one log entry.
func (r *MessageLogRepository) Append(ctx context.Context, entry listing.LogEntry) error {
	query := `
		INSERT INTO message_logs (sender_number, message_body, status, error_message, media_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.Sender, entry.Body, entry.Status, entry.Error, entry.MediaURL, time.Now().UTC())
	return err
}

// ListBySender returns the attempt history for one submitter, newest first.
func (r *MessageLogRepository) ListBySender(ctx context.Context, sender string, limit int) ([]MessageLog, error) {
	query := `
		SELECT id, sender_number, message_body, status, error_message, media_url, created_at
		FROM message_logs WHERE sender_number = $1
		ORDER BY id DESC LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, sender, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []MessageLog
	for rows.Next() {
		var l MessageLog
		if err := rows.Scan(&l.ID, &l.SenderNumber, &l.MessageBody, &l.Status,
			&l.ErrorMessage, &l.MediaURL, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// VerifiedNumberRepository manages the submitter allow-list.
type VerifiedNumberRepository struct {
	db DB
}

// NewVerifiedNumberRepository creates a new verified number repository.
func NewVerifiedNumberRepository(db DB) *VerifiedNumberRepository {
	return &VerifiedNumberRepository{db: db}
}

// IsAllowed reports whether sender is on the allow-list.
func (r *VerifiedNumberRepository) IsAllowed(ctx context.Context, sender string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM verified_numbers WHERE number = $1`, sender).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Add allow-lists a number. Re-adding an existing number updates its label.
func (r *VerifiedNumberRepository) Add(ctx context.Context, number, label string) error {
	query := `
		INSERT INTO verified_numbers (number, label, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (number) DO UPDATE SET label = excluded.label
	`
	_, err := r.db.ExecContext(ctx, query, number, label, time.Now().UTC())
	return err
}

// Remove drops a number from the allow-list.
func (r *VerifiedNumberRepository) Remove(ctx context.Context, number string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM verified_numbers WHERE number = $1`, number)
	return err
}

// List returns every allow-listed number.
func (r *VerifiedNumberRepository) List(ctx context.Context) ([]VerifiedNumber, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT number, label, created_at FROM verified_numbers ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []VerifiedNumber
	for rows.Next() {
		var n VerifiedNumber
		if err := rows.Scan(&n.Number, &n.Label, &n.CreatedAt); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}
