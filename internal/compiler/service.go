package compiler

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/smpl/foundation/core/error"
	mdwlog "github.com/msto63/smpl/foundation/core/log"
	"github.com/msto63/smpl/foundation/smpl"
	mdwast "github.com/msto63/smpl/foundation/smpl/ast"
	mdwparser "github.com/msto63/smpl/foundation/smpl/parser"
	"github.com/msto63/smpl/pkg/core/cache"
	"github.com/msto63/smpl/pkg/core/config"
	"github.com/msto63/smpl/pkg/core/logging"
)

// DefaultSourceFile is compiled when no path is given
const DefaultSourceFile = "test.smp"

// Result represents the outcome of one compile run
type Result struct {
	RunID    string
	Name     string
	Source   string
	Tokens   []mdwparser.Token
	AST      *mdwast.Definition
	Duration time.Duration
	Cached   bool
}

// CacheStats holds the result cache counters
type CacheStats struct {
	Items   int
	Hits    int64
	Misses  int64
	HitRate float64 // percent
}

// String returns "hits/lookups hits, items cached"
func (c CacheStats) String() string {
	return fmt.Sprintf("%d/%d hits, %d cached", c.Hits, c.Hits+c.Misses, c.Items)
}

// clone copies r so that it shares no memory with the original
func (r *Result) clone() *Result {
	c := *r
	c.Tokens = append([]mdwparser.Token(nil), r.Tokens...)
	if r.AST != nil {
		c.AST = mdwast.Clone(r.AST).(*mdwast.Definition)
	}
	return &c
}

// Config holds service configuration
type Config struct {
	Logger          *mdwlog.Logger
	LegacyEndPrefix bool
	MaxSourceBytes  int

	// Cache stores successful results by source text (optional)
	Cache *cache.Cache
}

// Service runs the scanner and parser and tags every run with an ID
type Service struct {
	engine *smpl.Engine
	logger *mdwlog.Logger
	cache  *cache.Cache
	scope  string
	newID  func() string
}

// NewService creates a new compile service
func NewService(cfg Config) (*Service, error) {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}

	engine, err := smpl.New(smpl.Options{
		Logger:          cfg.Logger,
		LegacyEndPrefix: cfg.LegacyEndPrefix,
		MaxSourceLength: cfg.MaxSourceBytes,
	})
	if err != nil {
		return nil, err
	}

	scope := "strict"
	if cfg.LegacyEndPrefix {
		scope = "legacy"
	}

	return &Service{
		engine: engine,
		logger: cfg.Logger.WithField("component", "compiler"),
		cache:  cfg.Cache,
		scope:  scope,
		newID:  uuid.NewString,
	}, nil
}

// NewFromConfig creates a service from the [scanner] and [cache] sections
func NewFromConfig(cfg *config.Config, logger *mdwlog.Logger) (*Service, error) {
	svc, err := NewService(Config{
		Logger:          logger,
		LegacyEndPrefix: cfg.Scanner.LegacyEndPrefix,
		MaxSourceBytes:  cfg.Scanner.MaxSourceBytes,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Cache.Enabled {
		svc.cache = cache.New(cache.Config{
			MaxItems: cfg.Cache.MaxItems,
			TTL:      cfg.Cache.TTL.Duration,
		})
	}
	return svc, nil
}

// Close releases the result cache
func (s *Service) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}

// CompileSource compiles in-memory source text. name is used for logging and
// the result only. A parse failure returns the scanned tokens along with the
// error; the result then has no AST. Every result belongs to the caller.
func (s *Service) CompileSource(ctx context.Context, name, source string) (*Result, error) {
	runID := s.newID()
	logger := s.logger.WithRequestID(runID).WithFields(logging.KV("name", name))
	timer := logger.StartTimer("compile")

	var (
		result *Result
		err    error
	)
	if s.cache != nil {
		result, err = s.lookup(ctx, runID, name, source)
	} else {
		result, err = s.compile(ctx, runID, name, source)
	}
	if err != nil {
		timer.Stop()
		logger.LogError(err)
		return result, err
	}
	result.Duration = timer.Stop()

	logger.Info("Compiled source", logging.KV(
		"definition", result.AST.Name,
		"tokens", len(result.Tokens),
		"cached", result.Cached,
	).Merge(mdwlog.Duration("duration", result.Duration)))
	return result, nil
}

// lookup serves source from the cache or compiles and stores it. The cache
// keeps its own copy so callers can modify their results freely.
func (s *Service) lookup(ctx context.Context, runID, name, source string) (*Result, error) {
	var failed *Result
	computed := false

	val, err := s.cache.GetOrSet(cache.SourceKey(s.scope, source), func() (interface{}, error) {
		computed = true
		result, err := s.compile(ctx, runID, name, source)
		if err != nil {
			failed = result
			return nil, err
		}
		return result.clone(), nil
	})
	if err != nil {
		return failed, err
	}

	result := val.(*Result).clone()
	result.RunID = runID
	result.Name = name
	result.Cached = !computed
	return result, nil
}

// compile runs both stages and checks ctx before each
func (s *Service) compile(ctx context.Context, runID, name, source string) (*Result, error) {
	engine := s.engine.WithRequestID(runID)

	if err := checkContext(ctx, "tokenize"); err != nil {
		return nil, err
	}
	tokens, err := engine.Tokenize(source)
	if err != nil {
		return nil, withRun(err, runID, name)
	}

	result := &Result{
		RunID:  runID,
		Name:   name,
		Source: source,
		Tokens: tokens,
	}

	if err := checkContext(ctx, "parse"); err != nil {
		return nil, err
	}
	def, err := engine.Parse(tokens)
	if err != nil {
		return result, withRun(err, runID, name)
	}

	result.AST = def
	return result, nil
}

// CacheStats reports the result cache counters. ok is false when the service
// runs without a cache.
func (s *Service) CacheStats() (stats CacheStats, ok bool) {
	if s.cache == nil {
		return CacheStats{}, false
	}
	stats.Items = s.cache.Size()
	stats.Hits, stats.Misses, stats.HitRate = s.cache.Stats()
	return stats, true
}

// CompileFile reads and compiles a file. An empty path selects
// DefaultSourceFile.
func (s *Service) CompileFile(ctx context.Context, path string) (*Result, error) {
	if path == "" {
		path = DefaultSourceFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read source").
			WithCode(code).
			WithOperation("compiler.CompileFile").
			WithDetail("path", path)
	}

	return s.CompileSource(ctx, path, string(data))
}

// CompileReader reads r to the end and compiles the text
func (s *Service) CompileReader(ctx context.Context, name string, r io.Reader) (*Result, error) {
	limit := int64(s.engine.Options().MaxSourceLength)

	// One byte over the limit is enough for the engine to reject the source
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read source").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("compiler.CompileReader").
			WithDetail("name", name)
	}

	return s.CompileSource(ctx, name, string(data))
}

func checkContext(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return mdwerror.Wrap(err, "compile canceled").
			WithCode(mdwerror.CodeCanceled).
			WithOperation(stage)
	}
	return nil
}

func withRun(err error, runID, name string) error {
	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		mdwErr = mdwerror.Wrap(err, "compile failed")
	}
	return mdwErr.WithRequestID(runID).WithDetail("source", name)
}
