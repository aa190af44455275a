package server

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"anagram/internal/domain"
	"anagram/internal/logger"
)

const (
	// DefaultAddr matches the address the demo page expects.
	DefaultAddr = "127.0.0.1:2525"

	fingerprintHeader = "X-Dictionary-Fingerprint"
	statusServing     = "SERVING"
)

// assets maps request paths to embedded files.
var assets = map[string]struct {
	name        string
	contentType string
}{
	"/":           {"index.html", "text/html"},
	"/index.html": {"index.html", "text/html"},
	"/main.js":    {"main.js", "text/javascript"},
	"/style.css":  {"style.css", "text/css"},
}

// Server answers dictionary lookups over HTTP.
type Server struct {
	dict        domain.Dictionary
	assets      fs.FS
	fingerprint string
	log         logger.Logger

	corsOrigins []string
	tracing     bool
}

type Option func(*Server)

// WithAssets sets the file system the page is served from. Without it page
// routes answer 500.
func WithAssets(fsys fs.FS) Option {
	return func(s *Server) {
		s.assets = fsys
	}
}

// WithFingerprint sets the word list fingerprint reported to clients.
func WithFingerprint(fp string) Option {
	return func(s *Server) {
		s.fingerprint = fp
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithCORSAllowedOrigins enables CORS for the given origins.
func WithCORSAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithTracing wraps the handler with otelhttp.
func WithTracing(enabled bool) Option {
	return func(s *Server) {
		s.tracing = enabled
	}
}

func New(dict domain.Dictionary, opts ...Option) (*Server, error) {
	if dict == nil {
		return nil, errors.New("server: dictionary is required")
	}
	s := &Server{
		dict: dict,
		log:  logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler returns the routed handler wrapped in lookupd's middleware.
func (s *Server) Handler() http.Handler {
	return s.middleware(http.HandlerFunc(s.route))
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	if s.fingerprint != "" {
		w.Header().Set(fingerprintHeader, s.fingerprint)
	}
	switch path := r.URL.Path; path {
	case "/lookup":
		s.serveLookup(w, r)
	case "/healthz":
		s.serveHealth(w, r)
	default:
		asset, ok := assets[path]
		if !ok {
			http.Error(w, "File not found.", http.StatusNotFound)
			return
		}
		s.serveAsset(w, r, asset.name, asset.contentType)
	}
}

func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request, name, contentType string) {
	var (
		b   []byte
		err error = fs.ErrNotExist
	)
	if s.assets != nil {
		b, err = fs.ReadFile(s.assets, name)
	}
	if err != nil {
		s.log.ErrorWithContext(r.Context(), "reading asset", zap.String("name", name), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Server error: " + errorCode(err)))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (s *Server) serveLookup(w http.ResponseWriter, r *http.Request) {
	words, ok := r.URL.Query()["word"]
	if !ok || len(words) == 0 {
		http.Error(w, "missing word parameter", http.StatusBadRequest)
		return
	}
	word := words[0]

	isAWord, err := s.dict.Contains(r.Context(), word)
	if err != nil {
		s.log.ErrorWithContext(r.Context(), "dictionary lookup failed", zap.String("word", word), zap.Error(err))
		http.Error(w, "dictionary lookup failed", http.StatusInternalServerError)
		return
	}
	lookupResultsCounter.WithLabelValues(domain.MembershipOf(isAWord).String()).Inc()
	writeJSON(w, http.StatusOK, domain.LookupResponse{Word: word, IsAWord: isAWord})
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.HealthResponse{Status: statusServing, Fingerprint: s.fingerprint})
}

// writeJSON writes v followed by a newline.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// errorCode names err the way errno constants do.
func errorCode(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "ENOENT"
	case errors.Is(err, fs.ErrPermission):
		return "EACCES"
	case errors.Is(err, fs.ErrInvalid):
		return "EINVAL"
	default:
		return "EIO"
	}
}
