// Package cron runs recurring jobs inside the process. Jobs live in
// memory only: the daily announcement is re-registered from config on
// every startup, so nothing needs to survive a restart.
package cron

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Service manages scheduled jobs and fires them when due.
type Service struct {
	tick time.Duration

	mu   sync.Mutex
	jobs map[string]*Job
}

// NewService creates a cron service. tick controls how often due jobs
// are checked; zero uses a 30 second default.
func NewService(tick time.Duration) *Service {
	if tick <= 0 {
		tick = 30 * time.Second
	}
	return &Service{
		tick: tick,
		jobs: make(map[string]*Job),
	}
}

// Register adds a job or replaces the one with the same ID, so repeated
// registration never produces duplicate firings.
func (s *Service) Register(job *Job) error {
	loc, err := loadLocation(job.TZ)
	if err != nil {
		return fmt.Errorf("job %s: %w", job.ID, err)
	}
	next := nextCronRun(job.Expr, loc, time.Now())
	if next.IsZero() {
		return fmt.Errorf("job %s: invalid cron expression %q", job.ID, job.Expr)
	}
	job.nextRun = next

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
	slog.Info("Cron: registered job", "id", job.ID, "expr", job.Expr, "tz", job.TZ, "next", next)
	return nil
}

// JobCount returns the number of registered jobs.
func (s *Service) JobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Run fires due jobs until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	slog.Info("Cron service started", "jobs", s.JobCount())

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Cron service stopped")
			return
		case <-ticker.C:
			s.fireDue(ctx, time.Now())
		}
	}
}

// fireDue executes every job whose next-run time has passed. A failing
// job is logged and rescheduled like a successful one; the next firing
// is never lost.
func (s *Service) fireDue(ctx context.Context, now time.Time) {
	s.mu.Lock()
	var due []*Job
	for _, j := range s.jobs {
		if !j.nextRun.IsZero() && !now.Before(j.nextRun) {
			due = append(due, j)
		}
	}
	s.mu.Unlock()

	for _, job := range due {
		s.execute(ctx, job, now)
	}
}

func (s *Service) execute(ctx context.Context, job *Job, now time.Time) {
	slog.Info("Cron: executing job", "id", job.ID)
	err := job.Run(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	job.lastRun = now
	if err != nil {
		slog.Error("Cron: job failed", "id", job.ID, "err", err)
		job.lastStatus = "error"
		job.lastError = err.Error()
	} else {
		slog.Info("Cron: job completed", "id", job.ID)
		job.lastStatus = "ok"
		job.lastError = ""
	}

	loc, lerr := loadLocation(job.TZ)
	if lerr != nil {
		loc = time.Local
	}
	job.nextRun = nextCronRun(job.Expr, loc, now)
}

func loadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.Local, nil
	}
	return time.LoadLocation(tz)
}

// --- Scheduling ---

// nextCronRun computes the first time strictly after `after` matching a
// standard 5-field cron expression (minute hour day-of-month month
// day-of-week), evaluated in loc. Fields support numbers, *, */N,
// ranges (a-b, a-b/step) and lists (a,b,c). Returns the zero time when
// the expression is invalid or nothing matches within a year.
func nextCronRun(expr string, loc *time.Location, after time.Time) time.Time {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return time.Time{}
	}

	minutes := parseCronField(fields[0], 0, 59)
	hours := parseCronField(fields[1], 0, 23)
	doms := parseCronField(fields[2], 1, 31)
	months := parseCronField(fields[3], 1, 12)
	dows := parseCronField(fields[4], 0, 6)

	if minutes == nil || hours == nil || doms == nil || months == nil || dows == nil {
		return time.Time{}
	}

	t := after.In(loc).Truncate(time.Minute).Add(time.Minute)

	end := t.Add(366 * 24 * time.Hour)
	for t.Before(end) {
		if months[int(t.Month())] && doms[t.Day()] && dows[int(t.Weekday())] &&
			hours[t.Hour()] && minutes[t.Minute()] {
			return t
		}

		// Skip non-matching months and days wholesale before walking
		// hours and minutes.
		if !months[int(t.Month())] {
			t = time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, loc)
			continue
		}
		if !doms[t.Day()] || !dows[int(t.Weekday())] {
			t = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, loc)
			continue
		}
		if !hours[t.Hour()] {
			// Advance on the calendar, not on absolute time: Truncate
			// rounds relative to UTC and lands mid-hour in zones with a
			// fractional offset such as Asia/Kolkata (+05:30).
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+1, 0, 0, 0, loc)
			continue
		}
		t = t.Add(time.Minute)
	}

	return time.Time{}
}

// parseCronField parses a single cron field into the set of matching
// values, or nil when the field is invalid.
func parseCronField(field string, min, max int) map[int]bool {
	result := make(map[int]bool)

	for _, part := range strings.Split(field, ",") {
		part = strings.TrimSpace(part)

		if strings.HasPrefix(part, "*/") {
			step, err := strconv.Atoi(part[2:])
			if err != nil || step <= 0 {
				return nil
			}
			for i := min; i <= max; i += step {
				result[i] = true
			}
			continue
		}

		if part == "*" {
			for i := min; i <= max; i++ {
				result[i] = true
			}
			continue
		}

		if strings.Contains(part, "-") {
			rangeParts := strings.SplitN(part, "/", 2)
			bounds := strings.SplitN(rangeParts[0], "-", 2)
			if len(bounds) != 2 {
				return nil
			}
			lo, err1 := strconv.Atoi(bounds[0])
			hi, err2 := strconv.Atoi(bounds[1])
			if err1 != nil || err2 != nil || lo < min || hi > max {
				return nil
			}
			step := 1
			if len(rangeParts) == 2 {
				v, err := strconv.Atoi(rangeParts[1])
				if err != nil || v <= 0 {
					return nil
				}
				step = v
			}
			for i := lo; i <= hi; i += step {
				result[i] = true
			}
			continue
		}

		val, err := strconv.Atoi(part)
		if err != nil || val < min || val > max {
			return nil
		}
		result[val] = true
	}

	return result
}
