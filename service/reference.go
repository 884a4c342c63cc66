package service

import (
	"context"
	"time"

	"github.com/ariebrainware/dentist-api/model"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const (
	allergiesCacheKey  = "allergies"
	conditionsCacheKey = "medical_conditions"
)

// ReferenceService serves the allergy and medical condition suggestion lists
// from an in-process cache.
type ReferenceService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewReferenceService returns a ReferenceService caching lookups for ttl.
func NewReferenceService(db *gorm.DB, ttl time.Duration) *ReferenceService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ReferenceService{db: db, cache: cache.New(ttl, 2*ttl)}
}

// Allergies returns the known allergy names in alphabetical order.
func (s *ReferenceService) Allergies(ctx context.Context) ([]string, error) {
	return s.names(ctx, allergiesCacheKey, &model.Allergy{})
}

// MedicalConditions returns the known condition names in alphabetical order.
func (s *ReferenceService) MedicalConditions(ctx context.Context) ([]string, error) {
	return s.names(ctx, conditionsCacheKey, &model.MedicalCondition{})
}

// Invalidate drops the cached lists.
func (s *ReferenceService) Invalidate() {
	s.cache.Flush()
}

func (s *ReferenceService) names(ctx context.Context, key string, table interface{}) ([]string, error) {
	if v, ok := s.cache.Get(key); ok {
		if names, ok := v.([]string); ok {
			return names, nil
		}
	}

	names := []string{}
	if err := s.db.WithContext(ctx).Model(table).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, internal("failed to load "+key, err)
	}
	s.cache.Set(key, names, cache.DefaultExpiration)
	return names, nil
}
