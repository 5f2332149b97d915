// Package listing implements the conversational draft workflow that turns
// inbound WhatsApp messages into committed warehouse records.
package listing

import (
	"context"
	"time"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/parser"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/zone"
)

// MediaRef points at a channel-hosted media item attached to an event.
type MediaRef struct {
	URL         string
	ContentType string
}

// Event is one inbound message from a submitter.
type Event struct {
	Sender string // submitter key, e.g. the WhatsApp number
	Text   string
	Media  []MediaRef // zero or one entries are used
}

// Result is what the submitter gets back.
type Result struct {
	Reply    string
	RecordID int64 // set only on the commit paths
}

// DraftStatus is the lifecycle state of an open draft.
type DraftStatus string

// StatusAwaitingMedia is the only live draft state: the submission parsed and
// the submitter is expected to send photos or a close/cancel command.
const StatusAwaitingMedia DraftStatus = "awaiting_media"

// Draft is a persisted in-progress submission. The stored submission was
// validated when the draft was created and is never re-parsed.
type Draft struct {
	Sender     string             `json:"senderNumber"`
	Status     DraftStatus        `json:"status"`
	Submission *parser.Submission `json:"warehouseData"`
	MediaURLs  []string           `json:"mediaUrls"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// Age returns how long the draft has been open.
func (d *Draft) Age(now time.Time) time.Duration {
	return now.Sub(d.CreatedAt)
}

// Record is the finished output handed to the persistence collaborator.
// Submission.MediaAvailable is cleared during assembly; the flag only steers
// the conversation and is never persisted.
type Record struct {
	Submission parser.Submission
	Zone       zone.Zone
	Photos     *string // joined URL list on the close path, single URL or nil otherwise
}

// Log statuses recorded per inbound message.
const (
	StatusSuccess    = "SUCCESS"
	StatusFailure    = "FAILURE"
	StatusCanceled   = "CANCELED"
	StatusUnverified = "UNVERIFIED_ATTEMPT"
)

// LogEntry is a write-only observability record of one processing attempt.
type LogEntry struct {
	Sender   string
	Body     string
	Status   string
	Error    string
	MediaURL string
}

// SessionStore persists open drafts keyed by submitter.
type SessionStore interface {
	// Get returns the open draft for sender, or nil when none exists.
	Get(ctx context.Context, sender string) (*Draft, error)
	Put(ctx context.Context, draft *Draft) error
	Delete(ctx context.Context, sender string) error
}

// MediaUploader moves channel-hosted media to permanent storage.
type MediaUploader interface {
	Upload(ctx context.Context, ref MediaRef) (string, error)
}

// RecordSink commits finished records.
type RecordSink interface {
	Create(ctx context.Context, rec *Record) (int64, error)
}

// AuditLog records processing attempts. Append failures must be tolerated by
// callers; an attempt is never aborted because its log write failed.
type AuditLog interface {
	Append(ctx context.Context, entry LogEntry) error
}

// AllowList answers whether a sender may submit listings.
type AllowList interface {
	IsAllowed(ctx context.Context, sender string) (bool, error)
}
