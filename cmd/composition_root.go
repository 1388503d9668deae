package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	httpadapter "giftexchange/internal/adapters/in/http"
	"giftexchange/internal/adapters/out/filestore"
	"giftexchange/internal/adapters/out/mailer"
	"giftexchange/internal/adapters/out/metrics"
	"giftexchange/internal/adapters/out/postgres"
	"giftexchange/internal/core/application/usecases/commands"
	"giftexchange/internal/core/application/usecases/queries"
	"giftexchange/internal/core/domain/services"
	"giftexchange/internal/core/ports"
	"giftexchange/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot builds adapters once and hands out handlers wired to them.
type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	repo     ports.RosterRepository
	notifier ports.Notifier
	metrics  ports.DrawMetrics
	registry *prometheus.Registry
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	repo, err := newRosterRepository(config, logger)
	if err != nil {
		return nil, err
	}

	notifier, err := newNotifier(config, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	drawMetrics, err := metrics.NewPrometheus(registry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:   config,
		logger:   logger,
		repo:     repo,
		notifier: notifier,
		metrics:  drawMetrics,
		registry: registry,
	}, nil
}

func newRosterRepository(config Config, logger *slog.Logger) (ports.RosterRepository, error) {
	if config.RosterStorage == StoragePostgres {
		db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if err = postgres.Migrate(db); err != nil {
			return nil, err
		}
		logger.Info("Rosters stored in postgres", "host", config.DBHost, "db", config.DBName)
		return postgres.NewRosterStore(db), nil
	}

	repo, err := filestore.NewRepository(config.RosterDir)
	if err != nil {
		return nil, err
	}
	logger.Info("Rosters stored on disk", "dir", config.RosterDir)
	return repo, nil
}

func newNotifier(config Config, logger *slog.Logger) (ports.Notifier, error) {
	if config.SMTPHost == "" {
		logger.Warn("SMTP_HOST not set, emails are logged instead of sent")
		return mailer.NewConsoleNotifier(logger), nil
	}

	return mailer.NewSMTPNotifier(mailer.SMTPConfig{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		From:     config.MailFrom,
	}, logger)
}

func (c *CompositionRoot) engineOptions() []services.Option {
	return []services.Option{
		services.WithMaxAttempts(c.config.MatchMaxAttempts),
		services.WithLogger(c.logger),
	}
}

func (c *CompositionRoot) CreateDraftPickOrderCommandHandler() commands.DraftPickOrderCommandHandler {
	return commands.NewDraftPickOrderCommandHandler(services.NewPickOrderDrafter(c.engineOptions()...), c.metrics)
}

func (c *CompositionRoot) CreateMatchRecipientsCommandHandler() commands.MatchRecipientsCommandHandler {
	return commands.NewMatchRecipientsCommandHandler(
		services.NewPickOrderDrafter(c.engineOptions()...),
		services.NewRecipientAssigner(c.engineOptions()...),
		c.notifier,
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSaveRosterCommandHandler() commands.SaveRosterCommandHandler {
	return commands.NewSaveRosterCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateGetRosterQueryHandler() queries.GetRosterQueryHandler {
	return queries.NewGetRosterQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateListRostersQueryHandler() queries.ListRostersQueryHandler {
	return queries.NewListRostersQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateDraftPickOrderCommandHandler(),
		c.CreateMatchRecipientsCommandHandler(),
		c.CreateSaveRosterCommandHandler(),
		c.CreateGetRosterQueryHandler(),
		c.CreateListRostersQueryHandler(),
		c.logger,
	)
}

// CreateJobManager returns a manager with the scheduled draw when DRAW_SCHEDULE is set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.config.DrawSchedule == "" {
		return jobs.NewJobManager()
	}

	return jobs.NewJobManager(jobs.NewScheduledDrawJob(
		c.config.DrawSchedule,
		c.config.DrawRoster,
		c.config.DrawSendEmails,
		c.CreateGetRosterQueryHandler(),
		c.CreateMatchRecipientsCommandHandler(),
		c.logger,
	))
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
