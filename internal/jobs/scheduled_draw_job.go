package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"giftexchange/internal/core/application/usecases/commands"
	"giftexchange/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ScheduledDrawJob runs a full draw over a saved roster on a cron schedule.
type ScheduledDrawJob struct {
	schedule   string
	rosterName string
	sendEmails bool

	getRoster queries.GetRosterQueryHandler
	match     commands.MatchRecipientsCommandHandler

	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduledDrawJob creates the job. schedule is a six-field cron spec with
// seconds, or a descriptor such as "@every 24h".
func NewScheduledDrawJob(
	schedule string,
	rosterName string,
	sendEmails bool,
	getRoster queries.GetRosterQueryHandler,
	match commands.MatchRecipientsCommandHandler,
	logger *slog.Logger,
) *ScheduledDrawJob {
	return &ScheduledDrawJob{
		schedule:   schedule,
		rosterName: rosterName,
		sendEmails: sendEmails,
		getRoster:  getRoster,
		match:      match,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "scheduled_draw_job", "roster", rosterName),
	}
}

// Run loads the roster and draws it once.
func (j *ScheduledDrawJob) Run(ctx context.Context) (commands.MatchRecipientsResult, error) {
	query, err := queries.NewGetRosterQuery(j.rosterName)
	if err != nil {
		return commands.MatchRecipientsResult{}, err
	}

	saved, err := j.getRoster.Handle(ctx, query)
	if err != nil {
		return commands.MatchRecipientsResult{}, fmt.Errorf("load roster %q: %w", j.rosterName, err)
	}

	cmd, err := commands.NewMatchRecipientsCommand(saved.Groups, j.sendEmails)
	if err != nil {
		return commands.MatchRecipientsResult{}, err
	}

	return j.match.Handle(ctx, cmd)
}

func (j *ScheduledDrawJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		result, err := j.Run(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Scheduled draw failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Scheduled draw finished",
			"run_id", result.RunID.String(),
			"members", result.TotalMembers,
			"notifications", len(result.Notifications),
		)
	})
	if err != nil {
		return fmt.Errorf("invalid draw schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Scheduled draw job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running draw to finish.
func (j *ScheduledDrawJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Scheduled draw job stopped")
}
