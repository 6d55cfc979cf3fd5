package clipper

import (
	"context"
)

// defaultEpsilon is the tolerance used for point-proximity comparisons
// (Point.NearlyEqual) when a caller doesn't supply one. It has no bearing
// on the exact segment-intersection predicate itself, which never uses a
// tolerance (see the design notes on tangency).
const defaultEpsilon = 1e-9

// Logger is the narrow leveled-logging surface this package depends on,
// implemented by *slog.Logger. A caller that wants tracing of ring
// construction, crossing discovery, classification, and the boolean
// traversals
// passes WithLogger(slog.Default()) or any other *slog.Logger; left unset,
// the package logs nothing.
type Logger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) DebugContext(context.Context, string, ...any) {}

// Config holds the knobs every public operation accepts. Its shape -- a
// small bag of fields set through functional options -- mirrors the
// scanline clipper's own toggle-heavy Clipper struct (ReverseSolution,
// ForceSimple, ...), generalized to Go's functional-options idiom instead
// of raw exported fields.
type Config struct {
	Epsilon         float64
	Logger          Logger
	UseSpatialIndex bool
}

func defaultConfig() Config {
	return Config{Epsilon: defaultEpsilon, Logger: noopLogger{}}
}

// Option configures a Config in place.
type Option func(*Config)

// WithEpsilon sets Config.Epsilon, the proximity tolerance. The stored
// value is not read by Union, Difference or Intersection, and it does not
// affect the exact intersection predicate.
func WithEpsilon(epsilon float64) Option {
	return func(c *Config) { c.Epsilon = epsilon }
}

// WithLogger enables debug tracing through the given logger, typically
// slog.Default() or an *slog.Logger built with slog.New(someHandler).
func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithSpatialIndex turns on the R-tree bounding-box pre-pass during
// enrichment (§4.4, §2b). It is a pure broad-phase acceleration: it never
// changes which crossings are found, only how many candidate segment
// pairs the exact predicate is run against.
func WithSpatialIndex(enabled bool) Option {
	return func(c *Config) { c.UseSpatialIndex = enabled }
}

func resolveConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	if cfg.Epsilon == 0 {
		cfg.Epsilon = defaultEpsilon
	}
	return cfg
}

func (c Config) debugf(msg string, args ...any) {
	c.Logger.DebugContext(context.Background(), msg, args...)
}
