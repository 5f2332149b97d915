// Package middleware provides HTTP middleware for the warehouse bot.
package middleware

import (
	"net/http"

	twilioclient "github.com/twilio/twilio-go/client"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/config"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/observability"
)

// TwilioSignature rejects callbacks whose X-Twilio-Signature does not match
// the form payload. The public webhook URL must be configured because the
// request URL seen behind a proxy differs from the one Twilio signed.
func TwilioSignature(log *observability.Logger, cfg config.TwilioConfig) func(http.Handler) http.Handler {
	validator := twilioclient.NewRequestValidator(cfg.AuthToken)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "malformed form body", http.StatusBadRequest)
				return
			}
			params := make(map[string]string, len(r.PostForm))
			for key := range r.PostForm {
				params[key] = r.PostForm.Get(key)
			}
			signature := r.Header.Get("X-Twilio-Signature")
			if !validator.Validate(cfg.WebhookURL, params, signature) {
				log.Warn().Str("remote", r.RemoteAddr).Msg("Rejected callback with bad signature")
				http.Error(w, "invalid signature", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
