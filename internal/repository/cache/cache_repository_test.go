package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/repository/cache"
)

// CacheRepositorySuite tests the cache repository with a real Redis
type CacheRepositorySuite struct {
	suite.Suite
	redis *cache.Redis
	repo  repository.CacheRepository
	ctx   context.Context
}

// SetupSuite runs once before all tests
func (s *CacheRepositorySuite) SetupSuite() {
	cfg := &config.RedisConfig{
		Host: "localhost",
		Port: 6379,
		DB:   1, // Use DB 1 for tests
	}

	r, err := cache.NewRedis(cfg, zap.NewNop())
	if err != nil {
		s.T().Skipf("Redis not available for integration tests: %v", err)
	}

	s.redis = r
	s.repo = cache.NewCacheRepository(r)
	s.ctx = context.Background()
}

func (s *CacheRepositorySuite) TearDownSuite() {
	if s.redis != nil {
		s.redis.Close()
	}
}

// TearDownTest удаляет тестовые ключи, не трогая чужие данные в DB 1
func (s *CacheRepositorySuite) TearDownTest() {
	client := s.redis.Client()
	var cursor uint64
	for {
		keys, next, err := client.Scan(s.ctx, cursor, "cachetest:*", 100).Result()
		s.Require().NoError(err)
		if len(keys) > 0 {
			client.Del(s.ctx, keys...)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	client.Del(s.ctx, "stats:places")
}

func (s *CacheRepositorySuite) TestGet_Miss() {
	val, err := s.repo.Get(s.ctx, "cachetest:missing")

	s.NoError(err)
	s.Nil(val)
}

func (s *CacheRepositorySuite) TestSetGet() {
	key := "cachetest:search:gaudi"
	payload := []byte(`{"results":[],"total":0}`)

	s.Require().NoError(s.repo.Set(s.ctx, key, payload, time.Minute))

	val, err := s.repo.Get(s.ctx, key)
	s.NoError(err)
	s.Equal(payload, val)

	exists, err := s.repo.Exists(s.ctx, key)
	s.NoError(err)
	s.True(exists)
}

func (s *CacheRepositorySuite) TestSet_TTLExpires() {
	key := "cachetest:ephemeral"

	s.Require().NoError(s.repo.Set(s.ctx, key, []byte("x"), 100*time.Millisecond))
	time.Sleep(200 * time.Millisecond)

	val, err := s.repo.Get(s.ctx, key)
	s.NoError(err)
	s.Nil(val)
}

func (s *CacheRepositorySuite) TestDelete() {
	key := "cachetest:to-delete"
	s.Require().NoError(s.repo.Set(s.ctx, key, []byte("x"), time.Minute))

	s.Require().NoError(s.repo.Delete(s.ctx, key))

	exists, err := s.repo.Exists(s.ctx, key)
	s.NoError(err)
	s.False(exists)

	// Удаление несуществующего ключа не ошибка
	s.NoError(s.repo.Delete(s.ctx, "cachetest:missing"))
}

func (s *CacheRepositorySuite) TestDeleteByPattern() {
	// Больше одной страницы SCAN, чтобы пройтись по курсору
	for i := 0; i < 120; i++ {
		key := fmt.Sprintf("cachetest:search:%d", i)
		s.Require().NoError(s.repo.Set(s.ctx, key, []byte("x"), time.Minute))
	}
	s.Require().NoError(s.repo.Set(s.ctx, "cachetest:stats:keep", []byte("x"), time.Minute))

	s.Require().NoError(s.repo.DeleteByPattern(s.ctx, "cachetest:search:*"))

	for _, i := range []int{0, 59, 119} {
		exists, err := s.repo.Exists(s.ctx, fmt.Sprintf("cachetest:search:%d", i))
		s.NoError(err)
		s.False(exists, "key cachetest:search:%d should be removed", i)
	}

	exists, err := s.repo.Exists(s.ctx, "cachetest:stats:keep")
	s.NoError(err)
	s.True(exists, "keys outside the pattern must survive")
}

func (s *CacheRepositorySuite) TestStats_Miss() {
	stats, err := s.repo.GetStats(s.ctx)

	s.NoError(err)
	s.Nil(stats)
}

func (s *CacheRepositorySuite) TestStats_Roundtrip() {
	stats := &domain.Statistics{
		TotalPlaces:     42,
		DescribedPlaces: 31,
		StorageBytes:    8192,
		AvgPlaceBytes:   195,
		IndexSizeBytes:  4096,
		Indexes: []domain.IndexInfo{
			{Name: "name_text_description_text", Keys: map[string]interface{}{"_fts": "text"}},
			{Name: "geo_2dsphere", Keys: map[string]interface{}{"geo": "2dsphere"}},
		},
		Coverage:    domain.ComputeCoverage(2.12, 41.38, 2.23, 41.47),
		LastUpdated: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.repo.SetStats(s.ctx, stats, time.Minute))

	fetched, err := s.repo.GetStats(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(fetched)

	s.Equal(int64(42), fetched.TotalPlaces)
	s.Equal(int64(31), fetched.DescribedPlaces)
	s.Len(fetched.Indexes, 2)
	s.Require().NotNil(fetched.Coverage)
	s.InDelta(stats.Coverage.DiagonalM, fetched.Coverage.DiagonalM, 0.1)
	s.True(fetched.LastUpdated.Equal(stats.LastUpdated))
}

func TestCacheRepositorySuite(t *testing.T) {
	suite.Run(t, new(CacheRepositorySuite))
}
