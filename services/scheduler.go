// services/scheduler.go
package services

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartLevelAuditScheduler periodically re-derives the stored level column
// from XP for every progress row. Level is a pure function of XP; the audit
// repairs any drift left behind by out-of-band writes.
func (s *MissionService) StartLevelAuditScheduler(interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			progs, err := s.Store.AllLifeProgress()
			if err != nil {
				slog.Error("level audit: failed to list progress rows", "error", err)
				return
			}

			fixed := 0
			for _, prog := range progs {
				want := LevelForXP(prog.XP)
				if prog.Level == want {
					continue
				}
				if err := s.Store.SetLevel(prog.ID, want); err != nil {
					slog.Error("level audit: failed to fix level",
						"progress_id", prog.ID, "error", err)
					continue
				}
				fixed++
			}
			if fixed > 0 {
				slog.Warn("level audit repaired drifted levels", "fixed", fixed)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
