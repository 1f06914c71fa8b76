package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/usecase/dto"
)

// SearchPageSize - merged results returned per page.
const SearchPageSize = 10

// SearchUseCase - merged substring search over establishments and spots.
type SearchUseCase struct {
	estRepo   repository.EstablishmentRepository
	spotRepo  repository.SpotRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewSearchUseCase - creates a new SearchUseCase
func NewSearchUseCase(
	estRepo repository.EstablishmentRepository,
	spotRepo repository.SpotRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		estRepo:   estRepo,
		spotRepo:  spotRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Search runs both store queries, merges establishments first then spots,
// and returns one page of the merged list. An empty or whitespace query is
// an empty result, not a full scan. Any store failure degrades to an empty
// page with total 0 rather than an error page; the failure is logged.
func (uc *SearchUseCase) Search(ctx context.Context, query string, page int) (*dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if page < 1 {
		page = 1
	}
	if query == "" {
		return &dto.SearchResponse{Results: []dto.SearchResult{}, Total: 0, Page: page}, nil
	}

	merged, ok := uc.cachedResults(ctx, query)
	if !ok {
		var failed bool
		merged, failed = uc.queryStores(ctx, query)
		if failed {
			return &dto.SearchResponse{Results: []dto.SearchResult{}, Total: 0, Page: page}, nil
		}
		uc.storeResults(ctx, query, merged)
	}

	return &dto.SearchResponse{
		Results: paginate(merged, page),
		Total:   len(merged),
		Page:    page,
	}, nil
}

// queryStores fetches and merges both result sets. failed is true when
// either store errored; partial results are never served.
func (uc *SearchUseCase) queryStores(ctx context.Context, query string) ([]dto.SearchResult, bool) {
	ests, err := uc.estRepo.SearchByNameOrCategory(ctx, query)
	if err != nil {
		uc.logger.Error("Establishment search failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, true
	}

	spots, err := uc.spotRepo.SearchByDescription(ctx, query)
	if err != nil {
		uc.logger.Error("Spot search failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, true
	}

	merged := make([]dto.SearchResult, 0, len(ests)+len(spots))
	for _, e := range ests {
		merged = append(merged, dto.SearchResult{
			ID:       e.ID,
			Kind:     "establishment",
			Name:     e.Name,
			Category: string(e.Category),
		})
	}
	for _, s := range spots {
		merged = append(merged, dto.SearchResult{
			ID:          s.ID,
			Kind:        "spot",
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return merged, false
}

func (uc *SearchUseCase) cachedResults(ctx context.Context, query string) ([]dto.SearchResult, bool) {
	data, err := uc.cacheRepo.Get(ctx, searchCacheKey(query))
	if err != nil {
		uc.logger.Warn("Search cache read failed", zap.Error(err))
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var results []dto.SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		uc.logger.Warn("Corrupt search cache entry", zap.String("query", query), zap.Error(err))
		return nil, false
	}
	return results, true
}

func (uc *SearchUseCase) storeResults(ctx context.Context, query string, results []dto.SearchResult) {
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, searchCacheKey(query), data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Search cache write failed", zap.Error(err))
	}
}

func searchCacheKey(query string) string {
	return "search:" + strings.ToLower(query)
}

// paginate slices one page out of the merged list. A page past the end is an
// empty slice, never an error. The start offset can wrap negative when the
// page number is near MaxInt, so both bounds are guarded.
func paginate(results []dto.SearchResult, page int) []dto.SearchResult {
	start := (page - 1) * SearchPageSize
	if start < 0 || start >= len(results) {
		return []dto.SearchResult{}
	}
	end := start + SearchPageSize
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}
