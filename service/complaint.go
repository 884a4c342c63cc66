package service

import (
	"context"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"gorm.io/gorm"
)

// QueuePublisher receives complaints as they are registered.
type QueuePublisher interface {
	Publish(entry model.QueueEntry)
}

// ComplaintService registers complaints and lists the day's queue.
type ComplaintService struct {
	db        *gorm.DB
	clock     Clock
	publisher QueuePublisher
}

// NewComplaintService returns a ComplaintService. publisher may be nil.
func NewComplaintService(db *gorm.DB, clock Clock, publisher QueuePublisher) *ComplaintService {
	return &ComplaintService{db: db, clock: clock, publisher: publisher}
}

// RegisterComplaintInput identifies the patient and describes the complaint.
type RegisterComplaintInput struct {
	PhoneNumber    string
	Name           string
	ChiefComplaint string
}

// Register appends a complaint for an existing patient and publishes it to the live queue.
func (s *ComplaintService) Register(ctx context.Context, in RegisterComplaintInput) (*model.QueueEntry, error) {
	if v := util.ValidatePhoneNumber(in.PhoneNumber); !v.Valid {
		return nil, badRequest(v.Error)
	}
	if v := util.ValidateRequired("name", in.Name); !v.Valid {
		return nil, badRequest(v.Error)
	}
	if v := util.ValidateRequired("chief_complaint", in.ChiefComplaint); !v.Valid {
		return nil, badRequest(v.Error)
	}

	user, err := findUser(ctx, s.db, in.PhoneNumber, in.Name)
	if err != nil {
		return nil, err
	}

	now := s.clock.Instant()
	complaint := model.Complaint{
		UserID:         user.ID,
		ChiefComplaint: in.ChiefComplaint,
		Date:           s.clock.Today(),
		Time:           now,
	}
	if err := s.db.WithContext(ctx).Omit("User").Create(&complaint).Error; err != nil {
		return nil, internal("failed to register complaint", err)
	}
	complaint.User = *user

	entry := s.toEntry(complaint)
	if s.publisher != nil {
		s.publisher.Publish(entry)
	}
	return &entry, nil
}

// Today lists the complaints made on the current clinic-local date in arrival order.
func (s *ComplaintService) Today(ctx context.Context) ([]model.QueueEntry, error) {
	var complaints []model.Complaint
	err := s.db.WithContext(ctx).
		Preload("User.Details").
		Where("complaint_date = ?", s.clock.Today()).
		Order("complaint_time, id").
		Find(&complaints).Error
	if err != nil {
		return nil, internal("failed to list complaints", err)
	}

	out := make([]model.QueueEntry, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, s.toEntry(c))
	}
	return out, nil
}

func (s *ComplaintService) toEntry(c model.Complaint) model.QueueEntry {
	entry := model.QueueEntry{
		ComplaintID:    c.ID,
		Name:           c.User.Name,
		PhoneNumber:    c.User.PhoneNumber,
		Time:           s.clock.LocalTimeOfDay(c.Time),
		ChiefComplaint: c.ChiefComplaint,
	}
	if c.User.Details != nil {
		entry.Age = c.User.Details.Age(s.clock.Local())
	}
	return entry
}
