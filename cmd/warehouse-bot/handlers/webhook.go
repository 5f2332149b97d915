// Package handlers implements the HTTP handlers of the warehouse bot.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/twilio/twilio-go/twiml"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/observability"
)

// WebhookHandler receives Twilio WhatsApp callbacks and feeds them to the
// session manager. Events from the same sender are serialized; Twilio retries
// and double-taps must not race a draft.
type WebhookHandler struct {
	log       *observability.Logger
	manager   *listing.Manager
	allowList listing.AllowList
	audit     listing.AuditLog
	locks     *listing.KeyLock
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(log *observability.Logger, manager *listing.Manager,
	allowList listing.AllowList, audit listing.AuditLog) *WebhookHandler {
	return &WebhookHandler{
		log:       log,
		manager:   manager,
		allowList: allowList,
		audit:     audit,
		locks:     listing.NewKeyLock(),
	}
}

// Receive handles one inbound message callback and answers with TwiML.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	sender := strings.TrimPrefix(r.PostFormValue("From"), "whatsapp:")
	body := r.PostFormValue("Body")
	event := listing.Event{
		Sender: sender,
		Text:   body,
		Media:  mediaRefs(r),
	}

	log := h.log.WithSender(sender)

	allowed, err := h.allowList.IsAllowed(r.Context(), sender)
	if err != nil {
		log.Error().Err(err).Msg("Allow-list lookup failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !allowed {
		log.Warn().Msg("Rejected message from unverified number")
		if err := h.audit.Append(r.Context(), listing.LogEntry{
			Sender: sender,
			Body:   body,
			Status: listing.StatusUnverified,
		}); err != nil {
			log.Error().Err(err).Msg("Failed to record unverified attempt")
		}
		writeTwiML(w, "")
		return
	}

	// Unlock must survive a panic in Handle; the recoverer middleware keeps
	// the process alive and the sender must not stay wedged.
	h.locks.Lock(sender)
	defer h.locks.Unlock(sender)
	res := h.manager.Handle(r.Context(), event)

	writeTwiML(w, res.Reply)
}

// mediaRefs extracts the attached media items from the callback form.
func mediaRefs(r *http.Request) []listing.MediaRef {
	count, err := strconv.Atoi(r.PostFormValue("NumMedia"))
	if err != nil || count <= 0 {
		return nil
	}
	refs := make([]listing.MediaRef, 0, count)
	for i := 0; i < count; i++ {
		url := r.PostFormValue("MediaUrl" + strconv.Itoa(i))
		if url == "" {
			continue
		}
		refs = append(refs, listing.MediaRef{
			URL:         url,
			ContentType: r.PostFormValue("MediaContentType" + strconv.Itoa(i)),
		})
	}
	return refs
}

// writeTwiML renders the reply. An empty body yields an empty response
// document, which tells Twilio to send nothing back.
func writeTwiML(w http.ResponseWriter, reply string) {
	var verbs []twiml.Element
	if reply != "" {
		verbs = append(verbs, &twiml.MessagingMessage{Body: reply})
	}
	doc, err := twiml.Messages(verbs)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	w.Write([]byte(doc))
}
