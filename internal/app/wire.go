package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"go.uber.org/zap"

	"anagram/internal/dictionary"
	"anagram/internal/display"
	"anagram/internal/domain"
	"anagram/internal/finder"
	"anagram/internal/input"
	"anagram/internal/logger"
	"anagram/internal/lookup"
	"anagram/internal/server"
	"anagram/web"
)

// closers releases resources in reverse order of acquisition.
type closers []func()

func (c closers) close() {
	for _, fn := range slices.Backward(c) {
		fn()
	}
}

// Wire bundles the finder and the boundaries it was built from.
type Wire struct {
	Finder  *finder.Finder
	Lookup  domain.Lookuper
	Display *display.Terminal
	Input   *input.Lines

	closers closers
}

// NewWire constructs the finder dependency graph from cfg, reading words from
// in and rendering to out.
func NewWire(cfg *Config, in io.Reader, out io.Writer, log logger.Logger) (*Wire, error) {
	lk, closeLookup, err := NewLookup(cfg, log)
	if err != nil {
		return nil, err
	}

	term := display.NewTerminal(out)
	lines := input.NewLines(in, out)
	lines.DisableAfterSubmit = cfg.Input.DisableAfterSubmit

	f, err := finder.New(lines, term, lk,
		finder.WithLogger(log),
		finder.WithMaxSymbols(cfg.Permutations.MaxSymbols),
	)
	if err != nil {
		closeLookup()
		return nil, err
	}

	return &Wire{
		Finder:  f,
		Lookup:  lk,
		Display: term,
		Input:   lines,
		closers: closers{closeLookup},
	}, nil
}

func (w *Wire) Close() {
	w.closers.close()
}

// NewLookup builds the lookup capability selected by cfg.Lookup.Mode. The
// returned func releases it.
func NewLookup(cfg *Config, log logger.Logger) (domain.Lookuper, func(), error) {
	var (
		lk   domain.Lookuper
		done closers
	)
	switch cfg.Lookup.Mode {
	case LookupStub:
		lk = lookup.Stub{}
	case LookupHTTP:
		lk = lookup.NewHTTP(cfg.Lookup.URL,
			lookup.WithRetries(cfg.Lookup.Retries),
			lookup.WithTimeout(cfg.Lookup.Timeout),
			lookup.WithHTTPLogger(log),
		)
	case LookupLocal:
		dict, closeDict, err := NewDictionary(cfg.Dictionary, log)
		if err != nil {
			return nil, nil, err
		}
		done = append(done, closeDict)
		if lk, err = lookup.NewLocal(dict); err != nil {
			done.close()
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown lookup mode %q", cfg.Lookup.Mode)
	}

	if cfg.Lookup.CacheSize > 0 {
		cached, err := lookup.NewCached(lk, cfg.Lookup.CacheSize)
		if err != nil {
			done.close()
			return nil, nil, err
		}
		done = append(done, cached.Close)
		lk = cached
	}

	log.Debug("lookup ready", zap.String("mode", cfg.Lookup.Mode), zap.Int64("cache_size", cfg.Lookup.CacheSize))
	return lookup.NewInstrumented(lk, cfg.Lookup.Mode), done.close, nil
}

// NewDictionary opens the dictionary backend selected by cfg. The returned
// func releases it.
func NewDictionary(cfg DictionaryConfig, log logger.Logger) (domain.Dictionary, func(), error) {
	var (
		dict domain.Dictionary
		done closers
	)
	switch b := dictionary.Backend(cfg.Backend); b {
	case dictionary.BackendGrep:
		g, err := dictionary.NewGrep(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		dict = g
	case dictionary.BackendMemory:
		m, err := dictionary.LoadMemoryFile(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Info("word list loaded", zap.String("path", cfg.Path), zap.Int("words", m.Len()))
		dict = m
	case dictionary.BackendIndex:
		indexPath := cfg.IndexPath
		if indexPath == "" {
			indexPath = cfg.Path + ".dawg"
		}
		ix, err := dictionary.OpenOrCompileIndex(cfg.Path, indexPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("index opened", zap.String("path", indexPath), zap.Int("words", ix.Len()))
		done = append(done, func() {
			if err := ix.Close(); err != nil {
				log.Warn("closing index", zap.Error(err))
			}
		})
		dict = ix
	default:
		return nil, nil, fmt.Errorf("unknown dictionary backend %q", cfg.Backend)
	}

	if cfg.CacheSize > 0 {
		cached, err := dictionary.NewCached(dict, cfg.CacheSize)
		if err != nil {
			done.close()
			return nil, nil, err
		}
		done = append(done, cached.Close)
		dict = cached
	}
	return dict, done.close, nil
}

// NewServer builds lookupd's HTTP server from cfg. The returned func releases
// its dictionary.
func NewServer(cfg *Config, log logger.Logger) (*server.Server, func(), error) {
	fp, err := dictionary.FingerprintFile(cfg.Dictionary.Path)
	if err != nil {
		return nil, nil, err
	}

	var assets fs.FS = web.Assets
	if cfg.HTTP.WebRoot != "" {
		st, err := os.Stat(cfg.HTTP.WebRoot)
		if err != nil {
			return nil, nil, fmt.Errorf("http.webRoot: %w", err)
		}
		if !st.IsDir() {
			return nil, nil, errors.New("http.webRoot: not a directory")
		}
		assets = os.DirFS(cfg.HTTP.WebRoot)
	}

	dict, closeDict, err := NewDictionary(cfg.Dictionary, log)
	if err != nil {
		return nil, nil, err
	}

	srv, err := server.New(dict,
		server.WithAssets(assets),
		server.WithFingerprint(fp),
		server.WithLogger(log),
		server.WithCORSAllowedOrigins(cfg.HTTP.CORSAllowedOrigins),
		server.WithTracing(cfg.Trace.Enabled),
	)
	if err != nil {
		closeDict()
		return nil, nil, err
	}
	log.Info("dictionary ready",
		zap.String("backend", cfg.Dictionary.Backend),
		zap.String("path", cfg.Dictionary.Path),
		zap.String("fingerprint", fp),
	)
	return srv, closeDict, nil
}
