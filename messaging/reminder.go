package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// FollowUpSource yields the follow-ups due for a reminder and records delivery.
type FollowUpSource interface {
	PendingReminders(ctx context.Context) ([]model.FollowUp, error)
	MarkReminded(ctx context.Context, id uint) error
}

// ReminderJob sends one WhatsApp message per follow-up scheduled for today.
type ReminderJob struct {
	source    FollowUpSource
	sender    Sender
	loc       *time.Location
	at        string
	log       zerolog.Logger
	scheduler *gocron.Scheduler
}

// NewReminderJob returns a job that runs daily at at (HH:MM) in loc.
func NewReminderJob(source FollowUpSource, sender Sender, loc *time.Location, at string, log zerolog.Logger) *ReminderJob {
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderJob{
		source: source,
		sender: sender,
		loc:    loc,
		at:     at,
		log:    log.With().Str("component", "reminder").Logger(),
	}
}

func reminderText(f model.FollowUp) string {
	return fmt.Sprintf("Hello %s, this is a reminder of your dental follow-up (%s) today at %s.",
		f.Complaint.User.Name, f.Title, f.Time)
}

// Run sends the pending reminders once. A follow-up whose message fails stays
// pending and is retried on the next run.
func (j *ReminderJob) Run(ctx context.Context) (int, error) {
	pending, err := j.source.PendingReminders(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending reminders: %w", err)
	}

	sent := 0
	for _, f := range pending {
		phone := f.Complaint.User.PhoneNumber
		if phone == "" {
			continue
		}
		if err := j.sender.SendText(ctx, phone, reminderText(f)); err != nil {
			j.log.Error().Err(err).Uint("followup_id", f.ID).Msg("failed to send reminder")
			continue
		}
		if err := j.source.MarkReminded(ctx, f.ID); err != nil {
			j.log.Error().Err(err).Uint("followup_id", f.ID).Msg("failed to mark follow-up reminded")
			continue
		}
		sent++
	}
	j.log.Info().Int("pending", len(pending)).Int("sent", sent).Msg("reminder run finished")
	return sent, nil
}

// Start schedules the job and returns immediately.
func (j *ReminderJob) Start() error {
	s := gocron.NewScheduler(j.loc)
	s.SingletonModeAll()
	_, err := s.Every(1).Day().At(j.at).Do(func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.log.Error().Err(err).Msg("reminder run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminders at %s: %w", j.at, err)
	}
	s.StartAsync()
	j.scheduler = s
	j.log.Info().Str("at", j.at).Str("tz", j.loc.String()).Msg("reminder job started")
	return nil
}

// NextRun returns the next scheduled run, zero when not started.
func (j *ReminderJob) NextRun() time.Time {
	if j.scheduler == nil {
		return time.Time{}
	}
	_, next := j.scheduler.NextRun()
	return next
}

// Stop halts the scheduler. It is safe to call on a job that never started.
func (j *ReminderJob) Stop() {
	if j.scheduler != nil {
		j.scheduler.Stop()
		j.scheduler = nil
	}
}
