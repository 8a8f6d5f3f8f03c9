package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-drift/infinitelist/cmd/infinitelist/internal/config"
	"github.com/go-drift/infinitelist/cmd/infinitelist/internal/logging"
	"github.com/go-drift/infinitelist/pkg/core"
	"github.com/go-drift/infinitelist/pkg/errors"
	"github.com/go-drift/infinitelist/pkg/feed"
	"github.com/go-drift/infinitelist/pkg/host"
	"github.com/go-drift/infinitelist/pkg/infinite"
)

// loadingLabel is the loading slot renderable.
const loadingLabel = "loading more…"

// lineExtent is the scroll extent of one terminal line. The default stack
// spacing is exactly one line.
const lineExtent = infinite.DefaultSpacing

// resolve parses the shared flags, resolves the configuration from the
// working directory and installs the logger as the error handler sink.
func resolve(args []string) (*config.Resolved, *slog.Logger, []string, error) {
	ov, rest, err := parseFlags(args)
	if err != nil {
		return nil, nil, nil, err
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.Resolve(dir, ov)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: cfg.LogLevel == "debug"})
	return cfg, logger, rest, nil
}

// openSource opens the configured source. The returned func releases it.
func openSource(ctx context.Context, cfg *config.Resolved) (feed.Source[feed.Item], func() error, error) {
	switch cfg.SourceKind {
	case config.SourceSQLite:
		db, err := feed.OpenSQLite(ctx, cfg.SourcePath)
		if err != nil {
			return nil, nil, err
		}
		n, err := db.Count(ctx)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		if n == 0 {
			if _, err := db.Seed(ctx, cfg.Total, "item"); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
		return delayed[feed.Item](db, cfg.Latency), db.Close, nil
	default:
		items := make([]feed.Item, cfg.Total)
		for i := range items {
			items[i] = feed.Item{ID: int64(i + 1), Title: fmt.Sprintf("item %d", i+1)}
		}
		mem := feed.NewMemorySource(items)
		mem.Latency = cfg.Latency
		return mem, func() error { return nil }, nil
	}
}

// delayed adds latency to every fetch of src.
func delayed[T any](src feed.Source[T], latency time.Duration) feed.Source[T] {
	if latency <= 0 {
		return src
	}
	return feed.SourceFunc[T](func(ctx context.Context, cursor string, limit int) (feed.Page[T], error) {
		t := time.NewTimer(latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return feed.Page[T]{}, ctx.Err()
		case <-t.C:
		}
		return src.Fetch(ctx, cursor, limit)
	})
}

// session is one mounted list over a feed.
type session struct {
	feed *feed.Feed[feed.Item]
	list *infinite.List[feed.Item, string]
	host *host.Host[feed.Item, string]
}

// newSession wires a feed over src into a list and mounts it in a host.
// dispatch, when set, moves fetch completions onto the caller's loop.
func newSession(cfg *config.Resolved, src feed.Source[feed.Item], logger *slog.Logger, dispatch func(func()), opts host.Options) (*session, error) {
	f := feed.New(src, feed.Options{
		PageSize: cfg.PageSize,
		Dispatch: dispatch,
		Name:     cfg.SourceKind,
		Logger:   logger,
	})
	lcfg := infinite.Config[feed.Item, string]{
		Data:         f.Data(),
		IsLoading:    f.Loading(),
		LoadingView:  loadingLabel,
		LoadMore:     f.LoadMore,
		Content:      feed.Item.String,
		Capabilities: cfg.Capabilities,
		Spacing:      cfg.Spacing,
		Logger:       logger,
	}
	if cfg.Refresh {
		lcfg.OnRefresh = f.Refresh
	}
	list, err := infinite.New(lcfg)
	if err != nil {
		f.Close()
		return nil, err
	}

	opts.ItemExtent = lineExtent
	opts.Logger = logger
	h := host.New(list, opts)
	h.Watch(core.Changes(f.Data()))
	h.Watch(core.Changes(f.Loading()))
	return &session{feed: f, list: list, host: h}, nil
}

// settle pumps until the host is idle or limit pumps ran.
func (s *session) settle(limit int) {
	for i := 0; i < limit && s.host.NeedsPump(); i++ {
		s.host.Pump()
	}
}

func (s *session) close() {
	s.host.Dispose()
	s.feed.Close()
}
