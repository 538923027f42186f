package lookup

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/internal/repository"
	apperrors "github.com/residenhealth/patient-sync-api/pkg/errors"
)

const (
	cacheKeyCategories = "categories"
	cacheKeyRooms      = "rooms"
	cacheKeyStatuses   = "statuses"
)

// Service serves the lookup lists. The lists change rarely, so reads go
// through a short-lived in-process cache.
type Service struct {
	repo  repository.LookupRepository
	cache *gocache.Cache
}

func NewService(repo repository.LookupRepository, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]*model.Category, error) {
	if cached, ok := s.cache.Get(cacheKeyCategories); ok {
		return cached.([]*model.Category), nil
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	s.cache.SetDefault(cacheKeyCategories, categories)
	return categories, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]*model.Room, error) {
	if cached, ok := s.cache.Get(cacheKeyRooms); ok {
		return cached.([]*model.Room), nil
	}
	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	s.cache.SetDefault(cacheKeyRooms, rooms)
	return rooms, nil
}

func (s *Service) ListStatuses(ctx context.Context) ([]*model.StatusOption, error) {
	if cached, ok := s.cache.Get(cacheKeyStatuses); ok {
		return cached.([]*model.StatusOption), nil
	}
	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	s.cache.SetDefault(cacheKeyStatuses, statuses)
	return statuses, nil
}

// IsCheckIn reports whether the status code is flagged as a check-in status
// in list configuration. Satisfies the appointment service's classifier.
func (s *Service) IsCheckIn(ctx context.Context, status string) (bool, error) {
	statuses, err := s.ListStatuses(ctx)
	if err != nil {
		return false, err
	}
	for _, option := range statuses {
		if option.OptionID == status {
			return option.CheckIn, nil
		}
	}
	return false, nil
}
