package counter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"demo-services/service/counter/domain"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
)

const DefaultIdentity = "Flask"

// Hitter registra um acesso e devolve o valor pós-incremento.
type Hitter interface {
	Hit(ctx context.Context) (int64, error)
}

// Observer recebe os eventos do contador (ex: métricas Prometheus).
type Observer interface {
	Increment()
	StoreError(kind string)
}

type Handler struct {
	hits     Hitter
	identity string
	obs      Observer
}

type Option func(*Handler)

// WithIdentity define o nome exibido em "Hello from <nome>!".
func WithIdentity(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.identity = name
		}
	}
}

func WithObserver(obs Observer) Option {
	return func(h *Handler) { h.obs = obs }
}

func NewHandler(hits Hitter, opts ...Option) *Handler {
	h := &Handler{hits: hits, identity: DefaultIdentity}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register monta GET / no router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.Index).Methods(http.MethodGet, http.MethodHead)
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	n, err := h.hits.Hit(r.Context())
	if err != nil {
		status, kind := statusFor(err)
		if h.obs != nil {
			h.obs.StoreError(kind)
		}
		hlog.FromRequest(r).Error().Err(err).Str("kind", kind).Int("status", status).Msg("counter increment failed")
		http.Error(w, http.StatusText(status), status)
		return
	}
	if h.obs != nil {
		h.obs.Increment()
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "Hello from %s! Redis counter = %d", h.identity, n)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, domain.ErrStoreRejected):
		return http.StatusInternalServerError, "rejected"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
