package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CallController exposes the operator actions the dashboard's REST surface
// drives: accept_call, hangup, mute_ai, unmute_ai, switch_agent.
type CallController interface {
	AcceptCall(callID string) error
	Hangup(callID string) error
	MuteAI(callID string) error
	UnmuteAI(callID string) error
	SwitchAgent(callID, target string) error
}

// FirewallToggle exposes the /firewall endpoint from §9 open question 2: an
// operator can disable the trunk IP firewall globally without touching the
// blacklist, which stays independent.
type FirewallToggle interface {
	SetEnabled(enabled bool)
	Enabled() bool
}

// Server is the dashboard's chi-routed HTTP server: health check, Prometheus
// metrics, the broadcast WebSocket, and REST control endpoints.
type Server struct {
	Hub    *Hub
	router chi.Router
}

// NewServer wires the dashboard's routes. jwtSecret may be nil/empty to
// disable bearer auth on the control endpoints (e.g. local development).
func NewServer(hub *Hub, ctrl CallController, firewall FirewallToggle, jwtSecret []byte, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(StructuredLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", hub.ServeWS)

	r.Group(func(cr chi.Router) {
		if len(jwtSecret) > 0 {
			cr.Use(RequireBearerAuth(jwtSecret))
		}
		cr.Post("/api/calls/{callID}/accept", controlHandler(ctrl.AcceptCall))
		cr.Post("/api/calls/{callID}/hangup", controlHandler(ctrl.Hangup))
		cr.Post("/api/calls/{callID}/mute", controlHandler(ctrl.MuteAI))
		cr.Post("/api/calls/{callID}/unmute", controlHandler(ctrl.UnmuteAI))
		cr.Post("/api/calls/{callID}/switch_agent", func(w http.ResponseWriter, r *http.Request) {
			callID := chi.URLParam(r, "callID")
			var body struct {
				Agent string `json:"agent"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "invalid body", http.StatusBadRequest)
				return
			}
			if err := ctrl.SwitchAgent(callID, body.Agent); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		if firewall != nil {
			cr.Post("/api/firewall", func(w http.ResponseWriter, r *http.Request) {
				var body struct {
					Enabled bool `json:"enabled"`
				}
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					http.Error(w, "invalid body", http.StatusBadRequest)
					return
				}
				firewall.SetEnabled(body.Enabled)
				hub.Broadcast("firewall_status", map[string]any{"enabled": firewall.Enabled()})
				w.WriteHeader(http.StatusNoContent)
			})
			cr.Get("/api/firewall", func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"enabled": firewall.Enabled()})
			})
		}
	})

	return &Server{Hub: hub, router: r}
}

func controlHandler(action func(callID string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callID := chi.URLParam(r, "callID")
		if err := action(callID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
