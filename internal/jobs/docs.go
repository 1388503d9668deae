// Package jobs provides scheduled background tasks for the gift exchange service.
//
// Jobs use github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// ScheduledDrawJob loads a saved roster and runs a full draw on every tick,
// optionally mailing each group its assignments. It is enabled by setting
// DRAW_SCHEDULE and DRAW_ROSTER.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(drawJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed draw is logged and the schedule keeps running. An invalid schedule
// fails StartAll.
package jobs
