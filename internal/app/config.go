package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"anagram/internal/dictionary"
	"anagram/internal/permute"
	"anagram/internal/server"
)

// Lookup modes.
const (
	LookupStub  = "stub"
	LookupHTTP  = "http"
	LookupLocal = "local"
)

type LogConfig struct {
	// Format is "text" or "json".
	Format string
	// Level is one of "none", "debug", "info", "warn" or "error".
	Level string
}

type HTTPConfig struct {
	Addr               string
	CORSAllowedOrigins []string
	// WebRoot serves the demo page from a directory instead of the embedded
	// copy.
	WebRoot string
}

type DictionaryConfig struct {
	Backend   string
	Path      string
	IndexPath string
	CacheSize int64
}

type MetricsConfig struct {
	Enabled bool
	Addr    string
}

type OTLPConfig struct {
	Endpoint string
}

type TraceConfig struct {
	Enabled     bool
	OTLP        OTLPConfig
	SampleRatio float64
}

type LookupConfig struct {
	Mode    string
	URL     string
	Retries int
	// Timeout bounds a single lookup; 0 means no limit.
	Timeout time.Duration
	// CacheSize enables a result cache across runs when positive.
	CacheSize int64
}

type PermutationsConfig struct {
	// MaxSymbols rejects longer words; 0 disables the check.
	MaxSymbols int
}

type InputConfig struct {
	DisableAfterSubmit bool
}

// Config holds runtime wiring options for building the app.
type Config struct {
	Log          LogConfig
	HTTP         HTTPConfig
	Dictionary   DictionaryConfig
	Metrics      MetricsConfig
	Trace        TraceConfig
	Lookup       LookupConfig
	Permutations PermutationsConfig
	Input        InputConfig
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		HTTP: HTTPConfig{
			Addr: server.DefaultAddr,
		},
		Dictionary: DictionaryConfig{
			Backend:   string(dictionary.BackendGrep),
			Path:      dictionary.DefaultPath,
			CacheSize: 0,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    "127.0.0.1:2112",
		},
		Trace: TraceConfig{
			Enabled:     false,
			OTLP:        OTLPConfig{Endpoint: "127.0.0.1:4317"},
			SampleRatio: 0.2,
		},
		Lookup: LookupConfig{
			Mode: LookupStub,
			URL:  "http://" + server.DefaultAddr,
		},
		Permutations: PermutationsConfig{
			MaxSymbols: permute.DefaultMaxSymbols,
		},
		Input: InputConfig{
			DisableAfterSubmit: true,
		},
	}
}

// Verify reports every invalid setting in cfg.
func (cfg *Config) Verify() error {
	var errs []error
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", cfg.Log.Format))
	}
	switch cfg.Log.Level {
	case "none", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", cfg.Log.Level))
	}
	if !dictionary.Backend(cfg.Dictionary.Backend).Valid() {
		errs = append(errs, fmt.Errorf("dictionary.backend: unknown backend %q", cfg.Dictionary.Backend))
	}
	if cfg.Dictionary.Path == "" {
		errs = append(errs, errors.New("dictionary.path: must be set"))
	}
	switch cfg.Lookup.Mode {
	case LookupStub, LookupLocal:
	case LookupHTTP:
		if cfg.Lookup.URL == "" {
			errs = append(errs, errors.New("lookup.url: must be set in http mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("lookup.mode: unknown mode %q", cfg.Lookup.Mode))
	}
	if cfg.Lookup.Retries < 0 {
		errs = append(errs, errors.New("lookup.retries: must not be negative"))
	}
	if cfg.Lookup.Timeout < 0 {
		errs = append(errs, errors.New("lookup.timeout: must not be negative"))
	}
	if cfg.Permutations.MaxSymbols < 0 {
		errs = append(errs, errors.New("permutations.maxSymbols: must not be negative"))
	}
	if cfg.Trace.SampleRatio < 0 || cfg.Trace.SampleRatio > 1 {
		errs = append(errs, errors.New("trace.sampleRatio: must be between 0 and 1"))
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Addr == cfg.HTTP.Addr {
		errs = append(errs, errors.New("metrics.addr: must differ from http.addr"))
	}
	return errors.Join(errs...)
}

// ReadConfig layers the config file, environment and bound flags over
// DefaultConfig. A missing config file is not an error.
func ReadConfig() (*Config, error) {
	config := DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}
