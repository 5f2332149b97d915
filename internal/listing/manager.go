package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/observability"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/parser"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/zone"
)

// DefaultDraftTTL is how long a draft may sit idle before it expires.
const DefaultDraftTTL = 15 * time.Minute

// ManagerConfig holds manager tuning.
type ManagerConfig struct {
	DraftTTL time.Duration
	Now      func() time.Time // overridable clock for tests
}

// Manager drives the per-submitter draft state machine. It is not safe for
// concurrent calls with the same sender; callers serialize per key (see
// KeyLock). Distinct senders are independent.
type Manager struct {
	log      *observability.Logger
	parser   *parser.Parser
	store    SessionStore
	uploader MediaUploader
	sink     RecordSink
	auditLog AuditLog
	ttl      time.Duration
	now      func() time.Time
}

// NewManager wires the manager with its collaborators.
func NewManager(log *observability.Logger, p *parser.Parser, store SessionStore,
	uploader MediaUploader, sink RecordSink, audit AuditLog, cfg ManagerConfig) *Manager {

	ttl := cfg.DraftTTL
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		log:      log,
		parser:   p,
		store:    store,
		uploader: uploader,
		sink:     sink,
		auditLog: audit,
		ttl:      ttl,
		now:      now,
	}
}

// Handle processes one inbound event and returns the reply for the
// submitter. Every failure path resolves to a clean no-draft state plus an
// explanatory reply; Handle itself never returns an error.
func (m *Manager) Handle(ctx context.Context, ev Event) Result {
	draft, err := m.store.Get(ctx, ev.Sender)
	if err != nil {
		return m.fail(ctx, ev, &PersistenceError{Op: "load draft", Cause: err})
	}

	// Expiry is checked before any dispatch: a stale draft is discarded and
	// the event is handled as if no draft existed, with a one-time notice
	// prepended to whatever reply that produces.
	var notice string
	if draft != nil && draft.Age(m.now()) > m.ttl {
		m.log.Info().
			Str("sender", ev.Sender).
			Time("created_at", draft.CreatedAt).
			Msg("discarding expired draft")
		if err := m.store.Delete(ctx, ev.Sender); err != nil {
			return m.fail(ctx, ev, &PersistenceError{Op: "discard expired draft", Cause: err})
		}
		notice = expiredNotice + "\n\n"
		draft = nil
	}

	command := strings.ToLower(strings.TrimSpace(ev.Text))

	var res Result
	if draft != nil {
		res = m.handleOpenDraft(ctx, ev, draft, command)
	} else {
		res = m.handleNoDraft(ctx, ev, command)
	}
	res.Reply = notice + res.Reply
	return res
}

func (m *Manager) handleOpenDraft(ctx context.Context, ev Event, draft *Draft, command string) Result {
	switch {
	case command == "close":
		return m.finalizeDraft(ctx, ev, draft)

	case command == "cancel":
		if err := m.store.Delete(ctx, ev.Sender); err != nil {
			return m.fail(ctx, ev, &PersistenceError{Op: "cancel draft", Cause: err})
		}
		m.logAttempt(ctx, LogEntry{Sender: ev.Sender, Body: ev.Text, Status: StatusCanceled})
		return Result{Reply: replyCanceled}

	case len(ev.Media) > 0:
		url, err := m.uploader.Upload(ctx, ev.Media[0])
		if err != nil {
			return m.fail(ctx, ev, &UploadError{Cause: err})
		}
		draft.MediaURLs = append(draft.MediaURLs, url)
		if err := m.store.Put(ctx, draft); err != nil {
			return m.fail(ctx, ev, &PersistenceError{Op: "save draft", Cause: err})
		}
		m.logAttempt(ctx, LogEntry{Sender: ev.Sender, Body: ev.Text, Status: StatusSuccess, MediaURL: url})
		return Result{Reply: fmt.Sprintf(replyMediaReceived, len(draft.MediaURLs))}

	default:
		return Result{Reply: replyInProgress}
	}
}

// finalizeDraft assembles the stored submission with the accumulated media
// and commits it. The submission was validated at draft creation and is not
// re-parsed here.
func (m *Manager) finalizeDraft(ctx context.Context, ev Event, draft *Draft) Result {
	rec := assemble(draft.Submission, joinURLs(draft.MediaURLs))
	id, err := m.sink.Create(ctx, rec)
	if err != nil {
		return m.fail(ctx, ev, &PersistenceError{Op: "create record", Cause: err})
	}
	if err := m.store.Delete(ctx, ev.Sender); err != nil {
		return m.fail(ctx, ev, &PersistenceError{Op: "close draft", Cause: err})
	}
	m.logAttempt(ctx, LogEntry{Sender: ev.Sender, Body: ev.Text, Status: StatusSuccess})
	return Result{Reply: fmt.Sprintf(replyClosed, id), RecordID: id}
}

func (m *Manager) handleNoDraft(ctx context.Context, ev Event, command string) Result {
	switch {
	case command == "close" || command == "cancel":
		return Result{Reply: replyNoActive}

	case command == "help" || command == "":
		return Result{Reply: Template()}

	default:
		return m.startSubmission(ctx, ev)
	}
}

func (m *Manager) startSubmission(ctx context.Context, ev Event) Result {
	sub, err := m.parser.Parse(ev.Text)
	if err != nil {
		return m.fail(ctx, ev, err)
	}

	if sub.MediaExpected() {
		draft := &Draft{
			Sender:     ev.Sender,
			Status:     StatusAwaitingMedia,
			Submission: sub,
			CreatedAt:  m.now(),
		}
		for _, ref := range ev.Media {
			url, err := m.uploader.Upload(ctx, ref)
			if err != nil {
				return m.fail(ctx, ev, &UploadError{Cause: err})
			}
			draft.MediaURLs = append(draft.MediaURLs, url)
		}
		if err := m.store.Put(ctx, draft); err != nil {
			return m.fail(ctx, ev, &PersistenceError{Op: "create draft", Cause: err})
		}
		return Result{Reply: replyDraftCreated}
	}

	var photos *string
	if len(ev.Media) > 0 {
		url, err := m.uploader.Upload(ctx, ev.Media[0])
		if err != nil {
			return m.fail(ctx, ev, &UploadError{Cause: err})
		}
		photos = &url
	}

	rec := assemble(sub, photos)
	id, err := m.sink.Create(ctx, rec)
	if err != nil {
		return m.fail(ctx, ev, &PersistenceError{Op: "create record", Cause: err})
	}
	m.logAttempt(ctx, LogEntry{Sender: ev.Sender, Body: ev.Text, Status: StatusSuccess})
	return Result{Reply: fmt.Sprintf(replySaved, id), RecordID: id}
}

// fail resets the conversation: any draft is deleted so the sender never gets
// stuck, the attempt is logged, and the reply names the reason.
func (m *Manager) fail(ctx context.Context, ev Event, cause error) Result {
	if err := m.store.Delete(ctx, ev.Sender); err != nil {
		m.log.Error().Err(err).Str("sender", ev.Sender).Msg("draft cleanup after failure")
	}
	m.logAttempt(ctx, LogEntry{Sender: ev.Sender, Body: ev.Text, Status: StatusFailure, Error: cause.Error()})
	m.log.Warn().Err(cause).Str("sender", ev.Sender).Msg("event processing failed")
	return Result{Reply: fmt.Sprintf(replyError, cause.Error())}
}

// logAttempt appends to the audit log, falling back to the process log when
// the append itself fails.
func (m *Manager) logAttempt(ctx context.Context, entry LogEntry) {
	if err := m.auditLog.Append(ctx, entry); err != nil {
		m.log.Error().Err(err).
			Str("sender", entry.Sender).
			Str("status", entry.Status).
			Msg("message log write failed")
	}
}

func assemble(sub *parser.Submission, photos *string) *Record {
	s := *sub
	s.MediaAvailable = "" // conversational flag, not part of the record
	return &Record{Submission: s, Zone: zone.Classify(s.State), Photos: photos}
}

func joinURLs(urls []string) *string {
	if len(urls) == 0 {
		return nil
	}
	joined := strings.Join(urls, ", ")
	return &joined
}
