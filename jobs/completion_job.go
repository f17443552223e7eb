package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// BookingCompleter is the part of the booking service the job drives
type BookingCompleter interface {
	CompletePastBookings(ctx context.Context) (int64, error)
}

// Scheduler runs the periodic jobs of the site
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a Scheduler running in UTC
func NewScheduler() *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(time.UTC))}
}

// AddBookingCompletion schedules the job that closes finished stays
func (s *Scheduler) AddBookingCompletion(schedule string, completer BookingCompleter) error {
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DefaultLogger)).Then(&completionJob{completer: completer})
	if _, err := s.cron.AddJob(schedule, job); err != nil {
		return fmt.Errorf("schedule booking completion %q: %w", schedule, err)
	}
	log.Infof("Booking completion job was created with schedule - %s", schedule)
	return nil
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return nil
}

type completionJob struct {
	completer BookingCompleter
}

func (j *completionJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := j.completer.CompletePastBookings(ctx)
	if err != nil {
		log.WithError(err).Error("booking completion job failed")
		return
	}
	if n > 0 {
		log.WithField("bookings", n).Info("bookings marked completed")
	}
}
