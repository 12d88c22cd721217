package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"reservas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeServiceRepo struct {
	services []models.AgencyService
	err      error
	calls    int
}

func (f *fakeServiceRepo) GetByAgency(string) (*models.AgencyService, error) { return nil, nil }
func (f *fakeServiceRepo) Upsert(*models.AgencyService) error                { return nil }
func (f *fakeServiceRepo) SetActive(string, bool) error                      { return nil }
func (f *fakeServiceRepo) Delete(string) error                               { return nil }

func (f *fakeServiceRepo) ListActiveWithAgency() ([]models.AgencyService, error) {
	f.calls++
	return f.services, f.err
}

type fakeCache struct {
	entries map[string]string
	failing bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if f.failing {
		return "", errors.New("cache down")
	}
	v, ok := f.entries[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return v, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if f.failing {
		return errors.New("cache down")
	}
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	if f.failing {
		return errors.New("cache down")
	}
	delete(f.entries, key)
	return nil
}

func activeStoredService(id string) models.AgencyService {
	return models.AgencyService{
		ID:         id,
		AgencyID:   "agency-" + id,
		AgencyName: "Agency " + id,
		Active:     true,
		Hours: models.ScheduleDoc{
			"monday": {Mode: "recurring", Slots: []string{"10:00"}},
		},
	}
}

func TestCatalogLoadsAndDecodes(t *testing.T) {
	repo := &fakeServiceRepo{services: []models.AgencyService{activeStoredService("a")}}
	c := NewCatalog(repo, nil, 0, zap.NewNop())

	services, err := c.LoadActive()
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.NotNil(t, services[0].Schedule)
	assert.Contains(t, services[0].Schedule, models.Monday)
}

func TestCatalogCacheHitSkipsRepo(t *testing.T) {
	repo := &fakeServiceRepo{services: []models.AgencyService{activeStoredService("a")}}
	cache := newFakeCache()
	c := NewCatalog(repo, cache, time.Minute, zap.NewNop())

	_, err := c.LoadActive()
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	services, err := c.LoadActive()
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "second load must be served from cache")
	require.Len(t, services, 1)
	assert.NotNil(t, services[0].Schedule, "cached services must still be decoded")
}

func TestCatalogInvalidateForcesReload(t *testing.T) {
	repo := &fakeServiceRepo{services: []models.AgencyService{activeStoredService("a")}}
	cache := newFakeCache()
	c := NewCatalog(repo, cache, time.Minute, zap.NewNop())

	_, err := c.LoadActive()
	require.NoError(t, err)
	c.Invalidate()

	_, err = c.LoadActive()
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestCatalogDegradesWhenCacheFails(t *testing.T) {
	repo := &fakeServiceRepo{services: []models.AgencyService{activeStoredService("a")}}
	c := NewCatalog(repo, &fakeCache{failing: true}, time.Minute, zap.NewNop())

	services, err := c.LoadActive()
	require.NoError(t, err)
	assert.Len(t, services, 1)
	assert.Equal(t, 1, repo.calls)
}

func TestCatalogKeepsCorruptRecordWithNilSchedule(t *testing.T) {
	corrupt := activeStoredService("corrupt")
	corrupt.Hours = models.ScheduleDoc{"monday": {Mode: "monthly"}}
	repo := &fakeServiceRepo{services: []models.AgencyService{corrupt, activeStoredService("ok")}}
	c := NewCatalog(repo, nil, 0, zap.NewNop())

	services, err := c.LoadActive()
	require.NoError(t, err)
	require.Len(t, services, 2, "a corrupt record must not drop the others")

	byID := map[string]models.AgencyService{}
	for _, s := range services {
		byID[s.ID] = s
	}
	assert.Nil(t, byID["corrupt"].Schedule)
	assert.NotNil(t, byID["ok"].Schedule)
}

func TestCatalogPropagatesRepoError(t *testing.T) {
	repo := &fakeServiceRepo{err: errors.New("mongo down")}
	c := NewCatalog(repo, nil, 0, zap.NewNop())

	_, err := c.LoadActive()
	assert.Error(t, err)
}
