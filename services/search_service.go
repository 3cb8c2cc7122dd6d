package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/services/metrics"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

const searchGenerationKey = constants.SearchCachePrefix + ":gen"

type SearchServiceOptions struct {
	Hotels       repository.HotelRepository
	Cache        *Cache
	CacheTTL     time.Duration
	ApprovedOnly bool
	Logger       logger.Logger
}

type SearchService struct {
	hotels       repository.HotelRepository
	cache        *Cache
	ttl          time.Duration
	approvedOnly bool
	logger       logger.Logger
}

func NewSearchService(opts SearchServiceOptions) *SearchService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SearchService{
		hotels:       opts.Hotels,
		cache:        opts.Cache,
		ttl:          ttl,
		approvedOnly: opts.ApprovedOnly,
		logger:       log,
	}
}

// BuildQuery turns a parsed filter into a backend query for one page
func BuildQuery(f dto.SearchFilter, approvedOnly bool) repository.HotelQuery {
	page := f.Page
	if page < 1 {
		page = 1
	}
	q := repository.HotelQuery{
		Destination: strings.TrimSpace(f.Destination),
		MinAdults:   f.AdultCount,
		MinChildren: f.ChildCount,
		Facilities:  f.Facilities,
		Types:       f.Types,
		Stars:       f.Stars,
		MaxPrice:    f.MaxPrice,
		Sort:        repository.HotelSort(f.SortOption),
		Skip:        (page - 1) * constants.SearchPageSize,
		Limit:       constants.SearchPageSize,
	}
	if approvedOnly {
		q.Status = models.HotelStatusApproved
	}
	return q
}

// InvalidateSearchCache retires every cached search page by moving to a
// new key generation
func InvalidateSearchCache(ctx context.Context, cache *Cache) error {
	if !cache.Enabled() {
		return nil
	}
	if _, err := cache.Incr(ctx, searchGenerationKey); err != nil {
		return err
	}
	metrics.ObserveCache("search", "invalidate")
	return nil
}

func (s *SearchService) cacheKey(ctx context.Context, f dto.SearchFilter) (string, error) {
	gen, err := s.cache.Counter(ctx, searchGenerationKey)
	if err != nil {
		return "", err
	}
	sum := md5.Sum([]byte(fmt.Sprintf("%s|approved=%t", f.CacheKey(), s.approvedOnly)))
	return fmt.Sprintf("%s:%d:%s", constants.SearchCachePrefix, gen, hex.EncodeToString(sum[:])), nil
}

// Search returns one page of matching hotels, five per page
func (s *SearchService) Search(ctx context.Context, f dto.SearchFilter) (*dto.PaginatedResponse[[]models.Hotel], error) {
	var key string
	if s.cache.Enabled() {
		k, err := s.cacheKey(ctx, f)
		if err != nil {
			s.logger.Error("search cache key: %v", err)
		} else {
			key = k
			var cached dto.PaginatedResponse[[]models.Hotel]
			hit, err := s.cache.Get(ctx, key, &cached)
			if err != nil {
				s.logger.Error("search cache read: %v", err)
			}
			if hit {
				metrics.ObserveCache("search", "hit")
				return &cached, nil
			}
			metrics.ObserveCache("search", "miss")
		}
	}

	q := BuildQuery(f, s.approvedOnly)
	hotels, total, err := s.hotels.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if hotels == nil {
		hotels = []models.Hotel{}
	}

	page := q.Skip/constants.SearchPageSize + 1
	result := &dto.PaginatedResponse[[]models.Hotel]{
		Data:       hotels,
		Pagination: response.NewPagination(total, page, constants.SearchPageSize),
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
			s.logger.Error("search cache write: %v", err)
		} else {
			metrics.ObserveCache("search", "set")
		}
	}
	return result, nil
}

func lastFilterKey(sessionID string) string {
	return "last_filters:" + sessionID
}

// RememberFilter keeps the latest filter of a browser session for 30 minutes
func (s *SearchService) RememberFilter(ctx context.Context, sessionID string, f dto.SearchFilter) {
	if sessionID == "" || !s.cache.Enabled() {
		return
	}
	if err := s.cache.Set(ctx, lastFilterKey(sessionID), f, 30*time.Minute); err != nil {
		s.logger.Error("save last filter: %v", err)
	}
}

// LastFilter returns the filter RememberFilter kept for sessionID, nil if none
func (s *SearchService) LastFilter(ctx context.Context, sessionID string) (*dto.SearchFilter, error) {
	if sessionID == "" || !s.cache.Enabled() {
		return nil, nil
	}
	var f dto.SearchFilter
	found, err := s.cache.Get(ctx, lastFilterKey(sessionID), &f)
	if err != nil || !found {
		return nil, err
	}
	return &f, nil
}

// removeDiacritics drops combining marks after NFD decomposition
func removeDiacritics(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func normalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(removeDiacritics(input))))
}

func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if n := len([]rune(b)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(maxLen)
}

// Suggest proposes up to five known cities or countries close to a possibly
// misspelt destination
func (s *SearchService) Suggest(ctx context.Context, query string) ([]string, error) {
	q := normalizeInput(query)
	if q == "" {
		return []string{}, nil
	}

	destinations, err := s.hotels.Destinations(ctx)
	if err != nil {
		return nil, err
	}

	byNorm := make(map[string]string, len(destinations))
	keys := make([]string, 0, len(destinations))
	for _, d := range destinations {
		n := normalizeInput(d)
		if n == "" {
			continue
		}
		if _, ok := byNorm[n]; !ok {
			byNorm[n] = d
			keys = append(keys, n)
		}
	}
	if len(keys) == 0 {
		return []string{}, nil
	}

	candidates := map[string]bool{}
	cm := closestmatch.New(keys, []int{2, 3})
	for _, c := range cm.ClosestN(q, constants.SuggestLimit*2) {
		candidates[c] = true
	}
	for _, k := range keys {
		if strings.Contains(k, q) {
			candidates[k] = true
		}
	}

	type scored struct {
		key    string
		prefix bool
		score  float64
	}
	ranked := make([]scored, 0, len(candidates))
	for c := range candidates {
		sc := scored{key: c, prefix: strings.HasPrefix(c, q), score: similarity(q, c)}
		if !sc.prefix && !strings.Contains(c, q) && sc.score < 0.5 {
			continue
		}
		ranked = append(ranked, sc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].prefix != ranked[j].prefix {
			return ranked[i].prefix
		}
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].key < ranked[j].key
	})

	out := make([]string, 0, constants.SuggestLimit)
	for _, r := range ranked {
		if len(out) == constants.SuggestLimit {
			break
		}
		out = append(out, byNorm[r.key])
	}
	return out, nil
}
