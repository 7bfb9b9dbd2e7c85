package usecase

import (
	"context"
	"fmt"
	"testing"

	"legal-consult-api/internal/domain/entity"
	"legal-consult-api/internal/infrastructure/directory"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFetcher struct {
	options []directory.Option
	err     error
	calls   int
}

func (f *fakeFetcher) FetchOptions(ctx context.Context, kind string) ([]directory.Option, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.options, nil
}

type fakeReferenceRepo struct {
	stored   []entity.ReferenceOption
	replaced map[string][]entity.ReferenceOption
}

func (r *fakeReferenceRepo) FindByKind(db *gorm.DB, kind string) ([]entity.ReferenceOption, error) {
	return r.stored, nil
}

func (r *fakeReferenceRepo) ReplaceKind(db *gorm.DB, kind string, options []entity.ReferenceOption) error {
	if r.replaced == nil {
		r.replaced = map[string][]entity.ReferenceOption{}
	}
	r.replaced[kind] = options
	return nil
}

// deadRedis returns a client whose every command fails fast; the usecase
// must treat the redis cache as best effort.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

func newReferenceFixture(t *testing.T, fetcher *fakeFetcher, repo *fakeReferenceRepo) ReferenceDataUsecase {
	t.Helper()
	return NewReferenceDataUsecase(newTestDB(t), newTestLogger(), fetcher, repo, deadRedis())
}

func TestReferenceDataLiveFetch(t *testing.T) {
	fetcher := &fakeFetcher{options: []directory.Option{
		{Code: "mumbai", Label: "Mumbai", Position: 1},
		{Code: "delhi", Label: "Delhi", Position: 2},
	}}
	repo := &fakeReferenceRepo{}
	uc := newReferenceFixture(t, fetcher, repo)

	resp, err := uc.GetOptions(context.Background(), entity.ReferenceKindCity)
	require.NoError(t, err)

	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Options, 2)
	assert.Equal(t, "mumbai", resp.Options[0].Code)

	// A successful fetch refreshes the durable fallback copy
	require.Len(t, repo.replaced[entity.ReferenceKindCity], 2)
}

func TestReferenceDataEmptyResult(t *testing.T) {
	uc := newReferenceFixture(t, &fakeFetcher{}, &fakeReferenceRepo{})

	resp, err := uc.GetOptions(context.Background(), entity.ReferenceKindLanguage)
	require.NoError(t, err)

	// Empty is a distinct outcome, not a failure
	assert.Equal(t, "empty", resp.Status)
	assert.Empty(t, resp.Options)
}

func TestReferenceDataFallsBackToPersistedCopy(t *testing.T) {
	fetcher := &fakeFetcher{err: fmt.Errorf("upstream down")}
	repo := &fakeReferenceRepo{stored: []entity.ReferenceOption{
		{Kind: entity.ReferenceKindLawType, Code: "criminal", Label: "Criminal"},
	}}
	uc := newReferenceFixture(t, fetcher, repo)

	resp, err := uc.GetOptions(context.Background(), entity.ReferenceKindLawType)
	require.NoError(t, err)

	assert.Equal(t, "cached", resp.Status)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, "criminal", resp.Options[0].Code)
}

func TestReferenceDataSurfacesFailureWithoutFallback(t *testing.T) {
	wantErr := fmt.Errorf("upstream down")
	uc := newReferenceFixture(t, &fakeFetcher{err: wantErr}, &fakeReferenceRepo{})

	_, err := uc.GetOptions(context.Background(), entity.ReferenceKindInstitution)
	assert.ErrorIs(t, err, wantErr)
}

func TestReferenceDataUnknownKind(t *testing.T) {
	fetcher := &fakeFetcher{}
	uc := newReferenceFixture(t, fetcher, &fakeReferenceRepo{})

	_, err := uc.GetOptions(context.Background(), "colors")
	assert.ErrorIs(t, err, ErrUnknownReferenceKind)
	assert.Zero(t, fetcher.calls, "unknown kinds never reach the upstream")
}
