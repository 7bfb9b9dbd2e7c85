package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/entity"
	"legal-consult-api/internal/domain/repository"
	"legal-consult-api/internal/infrastructure/directory"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUnknownReferenceKind = errors.New("unknown reference data kind")

// referenceCacheTTL bounds how stale a redis-served option list can get.
const referenceCacheTTL = 10 * time.Minute

// OptionFetcher is the upstream directory surface this usecase needs.
type OptionFetcher interface {
	FetchOptions(ctx context.Context, kind string) ([]directory.Option, error)
}

type ReferenceDataUsecase interface {
	// GetOptions serves one kind's option list: redis cache first, then a
	// live fetch, then the last persisted copy when the upstream is down.
	GetOptions(ctx context.Context, kind string) (*dto.ReferenceDataResponse, error)
	// WarmCache refreshes every kind in the background, starts staggered
	// so the upstream never sees a burst of simultaneous fetches.
	WarmCache(stagger time.Duration)
}

type referenceDataUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	fetcher       OptionFetcher
	referenceRepo repository.ReferenceOptionRepository
	redisClient   *redis.Client
}

func NewReferenceDataUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	fetcher OptionFetcher,
	referenceRepo repository.ReferenceOptionRepository,
	redisClient *redis.Client,
) ReferenceDataUsecase {
	return &referenceDataUsecase{
		db:            db,
		log:           log,
		fetcher:       fetcher,
		referenceRepo: referenceRepo,
		redisClient:   redisClient,
	}
}

func (u *referenceDataUsecase) GetOptions(ctx context.Context, kind string) (*dto.ReferenceDataResponse, error) {
	if !entity.IsReferenceKind(kind) {
		return nil, ErrUnknownReferenceKind
	}

	if options, ok := u.fromRedis(ctx, kind); ok {
		return buildReferenceResponse(kind, dto.ReferenceStatusOK, options), nil
	}

	options, fetchErr := u.fetcher.FetchOptions(ctx, kind)
	if fetchErr == nil {
		u.persist(ctx, kind, options)

		status := dto.ReferenceStatusOK
		if len(options) == 0 {
			status = dto.ReferenceStatusEmpty
		}
		return buildReferenceResponse(kind, status, options), nil
	}

	u.log.Warnf("Failed to fetch %s from directory, falling back to persisted copy: %+v", kind, fetchErr)

	stored, err := u.referenceRepo.FindByKind(u.db.WithContext(ctx), kind)
	if err != nil {
		u.log.Warnf("Failed to load persisted %s options: %+v", kind, err)
		return nil, fetchErr
	}
	if len(stored) == 0 {
		// Nothing to fall back on, surface the upstream failure
		return nil, fetchErr
	}

	cached := make([]directory.Option, len(stored))
	for i, option := range stored {
		cached[i] = directory.Option{Code: option.Code, Label: option.Label, Position: option.Position}
	}
	return buildReferenceResponse(kind, dto.ReferenceStatusCached, cached), nil
}

func (u *referenceDataUsecase) WarmCache(stagger time.Duration) {
	for i, kind := range entity.ReferenceKinds {
		go func(delay time.Duration, kind string) {
			time.Sleep(delay)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			options, err := u.fetcher.FetchOptions(ctx, kind)
			if err != nil {
				u.log.Warnf("Failed to warm %s reference cache: %+v", kind, err)
				return
			}
			u.persist(ctx, kind, options)
			u.log.Debugf("Warmed %s reference cache with %d options", kind, len(options))
		}(time.Duration(i)*stagger, kind)
	}
}

func referenceCacheKey(kind string) string {
	return fmt.Sprintf("refdata:%s", kind)
}

func (u *referenceDataUsecase) fromRedis(ctx context.Context, kind string) ([]directory.Option, bool) {
	data, err := u.redisClient.Get(ctx, referenceCacheKey(kind)).Bytes()
	if err != nil {
		if err != redis.Nil {
			u.log.Warnf("Failed to read %s options from redis: %+v", kind, err)
		}
		return nil, false
	}

	var options []directory.Option
	if err := json.Unmarshal(data, &options); err != nil {
		u.log.Warnf("Failed to decode cached %s options: %+v", kind, err)
		return nil, false
	}
	return options, true
}

// persist stores a freshly fetched set in redis and as the durable fallback
// copy. An empty fetch result is not persisted so an upstream glitch can
// never wipe a good fallback.
func (u *referenceDataUsecase) persist(ctx context.Context, kind string, options []directory.Option) {
	if len(options) == 0 {
		return
	}

	if data, err := json.Marshal(options); err == nil {
		if err := u.redisClient.Set(ctx, referenceCacheKey(kind), data, referenceCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache %s options in redis: %+v", kind, err)
		}
	}

	records := make([]entity.ReferenceOption, len(options))
	for i, option := range options {
		records[i] = entity.ReferenceOption{
			Kind:     kind,
			Code:     option.Code,
			Label:    option.Label,
			Position: option.Position,
		}
	}
	if err := u.referenceRepo.ReplaceKind(u.db.WithContext(ctx), kind, records); err != nil {
		u.log.Warnf("Failed to persist %s options: %+v", kind, err)
	}
}

func buildReferenceResponse(kind, status string, options []directory.Option) *dto.ReferenceDataResponse {
	response := &dto.ReferenceDataResponse{
		Kind:    kind,
		Status:  status,
		Options: make([]dto.ReferenceOptionResponse, len(options)),
	}
	for i, option := range options {
		response.Options[i] = dto.ReferenceOptionResponse{Code: option.Code, Label: option.Label}
	}
	return response
}
