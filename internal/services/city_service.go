package services

import (
	"context"
	"sort"
	"strings"

	"github.com/parths301/aib-hub/internal/cache"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

// CityService feeds the city filter dropdowns: the union of cities
// seen on approved creators and on job briefs.
type CityService interface {
	Cities(ctx context.Context) ([]string, error)
}

type CityServiceImpl struct {
	creatorRepo repositories.CreatorRepository
	jobRepo     repositories.JobRepository
	cityCache   *cache.CityCache
}

func NewCityService(
	creatorRepo repositories.CreatorRepository,
	jobRepo repositories.JobRepository,
	cityCache *cache.CityCache,
) CityService {
	return &CityServiceImpl{
		creatorRepo: creatorRepo,
		jobRepo:     jobRepo,
		cityCache:   cityCache,
	}
}

func (s *CityServiceImpl) Cities(ctx context.Context) ([]string, error) {
	if cities, ok := s.cityCache.Get(ctx); ok {
		return cities, nil
	}

	creatorCities, err := s.creatorRepo.DistinctCities()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobCities, err := s.jobRepo.DistinctCities()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	seen := make(map[string]struct{}, len(creatorCities)+len(jobCities))
	cities := make([]string, 0, len(creatorCities)+len(jobCities))
	for _, c := range append(creatorCities, jobCities...) {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cities = append(cities, c)
	}
	sort.Strings(cities)

	s.cityCache.Set(ctx, cities)
	return cities, nil
}
