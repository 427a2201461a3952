// Package app assembles the pieces both front-ends share: the session registry
// and the registration sink selected by configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kyra-labs/internship-dashboard/internal/archive"
	"github.com/kyra-labs/internship-dashboard/internal/auth"
	"github.com/kyra-labs/internship-dashboard/internal/config"
	"github.com/kyra-labs/internship-dashboard/internal/registration"
	"github.com/kyra-labs/internship-dashboard/internal/store"
)

const defaultSweepInterval = 10 * time.Minute

// Deps are the long-lived collaborators built from a Config.
type Deps struct {
	Store         *store.Store // nil without DATABASE_URL
	Registry      auth.Registry
	Registrations *registration.Service

	log       *slog.Logger
	stopSweep context.CancelFunc
	sweepDone chan struct{}
}

// Build opens the registry and sink and starts the periodic session sweep.
// Close stops the sweep.
func Build(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Deps, error) {
	d := &Deps{log: log}
	if cfg.DatabaseURL != "" {
		st, err := store.NewGormStore(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		d.Store = st
		d.Registry = st
	} else {
		d.Registry = auth.NewMemoryRegistry()
	}

	sink, err := newSink(cfg, d.Store)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.Registrations = registration.NewService(sink, log)
	log.Info("registration sink ready", slog.String("sink", cfg.RegistrationSink))

	d.SweepSessions(ctx)
	interval := cfg.SessionSweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	d.startSweeper(interval)
	return d, nil
}

// SweepSessions purges expired sessions from the registry and returns how
// many went. Failures are logged.
func (d *Deps) SweepSessions(ctx context.Context) int64 {
	n, err := d.Registry.DeleteExpiredSessions(ctx)
	if err != nil {
		d.log.Warn("purge expired sessions failed", slog.String("error", err.Error()))
		return 0
	}
	if n > 0 {
		d.log.Info("purged expired sessions", slog.Int64("count", n))
	}
	return n
}

func (d *Deps) startSweeper(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	d.stopSweep = cancel
	d.sweepDone = make(chan struct{})
	go func() {
		defer close(d.sweepDone)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.SweepSessions(ctx)
			}
		}
	}()
}

func newSink(cfg *config.Config, st *store.Store) (registration.Sink, error) {
	switch cfg.RegistrationSink {
	case config.SinkDB:
		if st == nil {
			return nil, fmt.Errorf("registration sink %q needs a database", cfg.RegistrationSink)
		}
		return st, nil
	case config.SinkFile:
		return archive.NewFileArchive(cfg.ArchiveDir), nil
	case config.SinkR2:
		return archive.NewR2Archive(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, cfg.R2Endpoint, cfg.R2BucketName), nil
	default:
		return registration.Discard{}, nil
	}
}

// Close stops the sweeper and closes the database, if any.
func (d *Deps) Close() error {
	if d.stopSweep != nil {
		d.stopSweep()
		<-d.sweepDone
		d.stopSweep = nil
	}
	if d.Store == nil {
		return nil
	}
	return d.Store.Close()
}
