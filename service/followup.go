package service

import (
	"context"
	"errors"
	"time"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"gorm.io/gorm"
)

const msgComplaintNotFound = "Complaint not found"

// FollowUpService schedules follow-ups and lists them by date.
type FollowUpService struct {
	db    *gorm.DB
	clock Clock
}

// NewFollowUpService returns a FollowUpService.
func NewFollowUpService(db *gorm.DB, clock Clock) *FollowUpService {
	return &FollowUpService{db: db, clock: clock}
}

// AddFollowUpInput schedules a revisit for a complaint.
type AddFollowUpInput struct {
	ComplaintID uint
	Title       string
	Date        string
	Time        string
}

// Add schedules a follow-up for an existing complaint.
func (s *FollowUpService) Add(ctx context.Context, in AddFollowUpInput) (*model.FollowUp, error) {
	if v := util.ValidateRequired("title", in.Title); !v.Valid {
		return nil, badRequest(v.Error)
	}
	if _, err := time.Parse(model.DateLayout, in.Date); err != nil {
		return nil, badRequest("Date must be in YYYY-MM-DD format")
	}
	if len(in.Time) != len(model.TimeOfDayLayout) {
		return nil, badRequest("Time must be in HH:MM format")
	}
	if _, err := time.Parse(model.TimeOfDayLayout, in.Time); err != nil {
		return nil, badRequest("Time must be in HH:MM format")
	}

	var complaint model.Complaint
	if err := s.db.WithContext(ctx).First(&complaint, in.ComplaintID).Error; err != nil {
		return nil, storeError(err, "", msgComplaintNotFound)
	}

	fu := model.FollowUp{
		ComplaintID: complaint.ID,
		Title:       util.NormalizeName(in.Title),
		Date:        in.Date,
		Time:        in.Time,
	}
	if err := s.db.WithContext(ctx).Omit("Complaint").Create(&fu).Error; err != nil {
		return nil, internal("failed to add follow-up", err)
	}
	return &fu, nil
}

// ForDate lists the follow-ups on date ordered by time. An empty date means today.
func (s *FollowUpService) ForDate(ctx context.Context, date string) ([]model.FollowUpEntry, error) {
	if date == "" {
		date = s.clock.Today()
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, badRequest("Date must be in YYYY-MM-DD format")
	}

	followups, err := s.load(ctx, s.db.Where("followup_date = ?", date))
	if err != nil {
		return nil, err
	}

	now := s.clock.Local()
	out := make([]model.FollowUpEntry, 0, len(followups))
	for _, f := range followups {
		entry := model.FollowUpEntry{
			ID:          f.ID,
			Name:        f.Complaint.User.Name,
			PhoneNumber: f.Complaint.User.PhoneNumber,
			Time:        f.Time,
			Title:       f.Title,
		}
		if f.Complaint.User.Details != nil {
			entry.Age = f.Complaint.User.Details.Age(now)
		}
		out = append(out, entry)
	}
	return out, nil
}

// PendingReminders returns today's follow-ups that have not been reminded yet.
func (s *FollowUpService) PendingReminders(ctx context.Context) ([]model.FollowUp, error) {
	return s.load(ctx, s.db.Where("followup_date = ? AND reminded_at IS NULL", s.clock.Today()))
}

// MarkReminded stamps the follow-up as reminded. It is a no-op for one already stamped.
func (s *FollowUpService) MarkReminded(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Model(&model.FollowUp{}).
		Where("id = ? AND reminded_at IS NULL", id).
		Update("reminded_at", s.clock.Instant())
	if res.Error != nil {
		return internal("failed to mark follow-up reminded", res.Error)
	}
	return nil
}

func (s *FollowUpService) load(ctx context.Context, scope *gorm.DB) ([]model.FollowUp, error) {
	var followups []model.FollowUp
	err := scope.WithContext(ctx).
		Preload("Complaint.User.Details").
		Order("followup_time, id").
		Find(&followups).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal("failed to list follow-ups", err)
	}
	return followups, nil
}
