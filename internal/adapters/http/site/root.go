// Package site serves the server-rendered medal table page.
package site

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Error constants
var (
	ErrRender = errors.New("medal page render failed")
)

// LoadFailedMessage is shown when the medal data cannot be loaded.
const LoadFailedMessage = "Failed to load medal data. Please try again later."

const defaultFlagSpriteURL = "/static/flags.png"

var page = template.Must(template.ParseFS(staticFS, "static/index.html.tmpl"))

// Dependencies required by the page.
type Dependencies interface {
	Rankings(ctx context.Context, key types.SortKey) (types.Ranking, error)
	DefaultSort() types.SortKey
}

// Option configures a RootHandler.
type Option func(*RootHandler)

// WithFlagSpriteURL points flag cells at a different sprite image.
func WithFlagSpriteURL(u string) Option {
	return func(h *RootHandler) {
		if u != "" {
			h.flagSpriteURL = u
		}
	}
}

// WithLogger sets the logger used for render failures.
func WithLogger(l logger.Logger) Option {
	return func(h *RootHandler) {
		if l != nil {
			h.logger = l
		}
	}
}

// Register attaches the medal page and its static assets to mux.
func Register(_ context.Context, mux *http.ServeMux, deps Dependencies, opts ...Option) {
	if mux == nil {
		panic("mux is nil")
	}

	h := NewRootHandler(deps, opts...)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/", h.HandleRoot)
}

// RootHandler renders the medal table at /.
type RootHandler struct {
	deps          Dependencies
	flagSpriteURL string
	logger        logger.Logger
}

// NewRootHandler creates a new root handler
func NewRootHandler(deps Dependencies, opts ...Option) *RootHandler {
	h := &RootHandler{deps: deps, flagSpriteURL: defaultFlagSpriteURL}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type column struct {
	Key    string
	Label  string
	Title  string
	Href   string
	Active bool
}

type pageData struct {
	Heading       string
	TiebreakNote  string
	Columns       []column
	Rows          []types.Entry
	FlagSpriteURL string
	Error         string
	RetryHref     string
}

// HandleRoot handles GET /?sort=k. Unknown or missing sort keys render the
// default table; the chosen key is kept in the column links.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	raw := r.URL.Query().Get("sort")
	key, ok := types.ParseSortKey(raw)
	if !ok {
		if raw != "" {
			metrics.RecordSortFallback()
		}
		key = h.deps.DefaultSort()
	}

	data := pageData{
		Heading:       key.Heading(),
		FlagSpriteURL: h.flagSpriteURL,
	}
	status := http.StatusOK

	table, err := h.deps.Rankings(r.Context(), key)
	if err != nil {
		h.logError(r.Context(), "failed to load medal table", err)
		status = http.StatusInternalServerError
		data.Error = LoadFailedMessage
		data.RetryHref = sortHref(key)
	} else {
		data.TiebreakNote = ranking.Note(table.Sort)
		data.Columns = columns(table.Sort)
		data.Rows = table.Entries
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		h.logError(r.Context(), "failed to render medal page", err)
		http.Error(w, ErrRender.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (h *RootHandler) logError(ctx context.Context, msg string, err error) {
	if h.logger != nil {
		h.logger.Error(ctx, msg, logger.Error(err))
	}
}

func columns(active types.SortKey) []column {
	keys := types.SortKeys()
	out := make([]column, len(keys))
	for i, k := range keys {
		out[i] = column{
			Key:    k.String(),
			Label:  k.Label(),
			Title:  k.Heading(),
			Href:   sortHref(k),
			Active: k == active,
		}
	}
	return out
}

func sortHref(k types.SortKey) string {
	return "/?" + url.Values{"sort": {k.String()}}.Encode()
}
