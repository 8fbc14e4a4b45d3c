package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"github.com/ayoisaiah/tempus/internal/analytics"
	"github.com/ayoisaiah/tempus/internal/apperr"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
)

const shutdownTimeout = 5 * time.Second

var errLoad = &apperr.Error{
	Message: "unable to load the session log",
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err != nil {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)

		status := http.StatusBadRequest
		if errors.Is(err, errLoad) {
			status = http.StatusServiceUnavailable
		}

		http.Error(w, err.Error(), status)
	}
}

// Loader reads the current session log.
type Loader func(ctx context.Context) (*analytics.Store, error)

// Handler serves the statistics of a session log as JSON. The log is loaded
// afresh for every request so that new completions show up.
type Handler struct {
	load  Loader
	now   func() time.Time
	weeks int
}

// NewHandler returns a Handler whose heatmap spans weeks weeks by default.
func NewHandler(load Loader, now func() time.Time, weeks int) *Handler {
	return &Handler{
		load:  load,
		now:   now,
		weeks: weeks,
	}
}

func (h *Handler) store(ctx context.Context) (*analytics.Store, error) {
	s, err := h.load(ctx)
	if err != nil {
		return nil, errLoad.Wrap(err)
	}

	return s, nil
}

// Routes returns the mux of the statistics API.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /api/stats", errorHandler(h.Stats))
	mux.Handle("GET /api/sessions", errorHandler(h.Sessions))

	return mux
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) error {
	weeks := h.weeks

	if v := r.URL.Query().Get("weeks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid weeks: %q", v)
		}

		weeks = n
	}

	s, err := h.store(r.Context())
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")

	return WriteJSON(w, Build(s, h.now(), weeks))
}

func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) error {
	now := h.now()

	day := now

	if v := r.URL.Query().Get("date"); v != "" {
		var err error

		day, err = timeutil.FromStr(v, now)
		if err != nil {
			return err
		}
	}

	s, err := h.store(r.Context())
	if err != nil {
		return err
	}

	sessions := s.SessionsForDate(timeutil.DateKey(day, s.Location()))
	if sessions == nil {
		sessions = []models.Session{}
	}

	w.Header().Set("Content-Type", "application/json")

	return WriteJSON(w, sessions)
}

// Serve runs the statistics API on port until ctx is cancelled.
func Serve(ctx context.Context, h *Handler, port uint) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", port),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pterm.Info.Printfln("serving statistics on http://%s/api/stats", srv.Addr)

		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
