package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/metrics"
	"github.com/vishalpatil-45/Adventour/repositories"
	"github.com/zeebo/xxh3"
)

const searchCacheTTL = 10 * time.Minute

// CatalogService answers catalog queries
type CatalogService interface {
	ListPackages(ctx context.Context, req dto.SearchRequest) []domain.Package
	Search(ctx context.Context, req dto.SearchRequest) []domain.Package
	GetPackage(ctx context.Context, id int) (domain.Package, error)
	ListLocations(ctx context.Context) []domain.Location
	PackagesByLocation(ctx context.Context, slug string) (domain.Location, []domain.Package, error)
}

type catalogService struct {
	catalog   repositories.CatalogRepository
	cacheRepo repositories.CacheRepository
}

// NewCatalogService creates a CatalogService. cacheRepo may be nil, in which
// case searches are always computed.
func NewCatalogService(catalog repositories.CatalogRepository, cacheRepo repositories.CacheRepository) CatalogService {
	return &catalogService{catalog: catalog, cacheRepo: cacheRepo}
}

// ListPackages applies the filters and sort order. The free text query is
// ignored here; it belongs to Search.
func (s *catalogService) ListPackages(_ context.Context, req dto.SearchRequest) []domain.Package {
	req.Query = ""
	return s.query(req)
}

// Search matches the query against title and location, then applies the same
// filters as ListPackages. Results are cached.
func (s *catalogService) Search(_ context.Context, req dto.SearchRequest) []domain.Package {
	if s.cacheRepo == nil {
		return s.query(req)
	}

	key := searchCacheKey(req)
	if packages, found := s.cacheRepo.Get(key); found {
		metrics.SearchCacheLookups.WithLabelValues("hit").Inc()
		return packages
	}
	metrics.SearchCacheLookups.WithLabelValues("miss").Inc()

	packages := s.query(req)
	s.cacheRepo.Set(key, packages, searchCacheTTL)
	log.WithFields(log.Fields{"key": key, "results": len(packages)}).Debug("search results cached")
	return packages
}

func (s *catalogService) GetPackage(_ context.Context, id int) (domain.Package, error) {
	pkg, ok := s.catalog.GetByID(id)
	if !ok {
		return domain.Package{}, ErrPackageNotFound
	}
	return pkg, nil
}

func (s *catalogService) ListLocations(_ context.Context) []domain.Location {
	return s.catalog.Locations()
}

// PackagesByLocation returns the packages located in the destination named by
// slug, best rated first.
func (s *catalogService) PackagesByLocation(_ context.Context, slug string) (domain.Location, []domain.Package, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, loc := range s.catalog.Locations() {
		if loc.Slug != slug {
			continue
		}
		prefix := strings.ToLower(loc.Name)
		packages := make([]domain.Package, 0)
		for _, p := range s.catalog.All() {
			if strings.HasPrefix(strings.ToLower(p.Location), prefix) {
				packages = append(packages, p)
			}
		}
		SortPackages(packages, dto.SortRating)
		return loc, packages, nil
	}
	return domain.Location{}, nil, ErrLocationNotFound
}

func (s *catalogService) query(req dto.SearchRequest) []domain.Package {
	packages := FilterPackages(s.catalog.All(), req)
	SortPackages(packages, req.SortBy)
	return packages
}

// FilterPackages keeps the packages matching every filter set in req
func FilterPackages(packages []domain.Package, req dto.SearchRequest) []domain.Package {
	query := strings.ToLower(strings.TrimSpace(req.Query))
	location := strings.ToLower(strings.TrimSpace(req.Location))

	out := make([]domain.Package, 0, len(packages))
	for _, p := range packages {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Location), query) {
			continue
		}
		if isSet(req.Type) && p.Type != req.Type {
			continue
		}
		if isSet(req.Category) && p.Category != req.Category {
			continue
		}
		if req.MinPrice != nil && p.Price < *req.MinPrice {
			continue
		}
		if req.MaxPrice != nil && p.Price > *req.MaxPrice {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		if req.MinRating > 0 && p.Rating < req.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortPackages orders packages in place. Unknown orders keep catalog order.
func SortPackages(packages []domain.Package, sortBy string) {
	var less func(a, b domain.Package) bool
	switch sortBy {
	case dto.SortPriceLow:
		less = func(a, b domain.Package) bool { return a.Price < b.Price }
	case dto.SortPriceHigh:
		less = func(a, b domain.Package) bool { return a.Price > b.Price }
	case dto.SortRating, dto.SortPopular:
		// rating stands in for popularity
		less = func(a, b domain.Package) bool { return a.Rating > b.Rating }
	default:
		return
	}
	sort.SliceStable(packages, func(i, j int) bool {
		return less(packages[i], packages[j])
	})
}

func isSet(filter string) bool {
	return filter != "" && filter != "all"
}

func searchCacheKey(req dto.SearchRequest) string {
	parts := []string{
		"q:" + strings.ToLower(strings.TrimSpace(req.Query)),
		"type:" + req.Type,
		"category:" + req.Category,
		"location:" + strings.ToLower(strings.TrimSpace(req.Location)),
		"min:" + optionalInt(req.MinPrice),
		"max:" + optionalInt(req.MaxPrice),
		"rating:" + strconv.FormatFloat(req.MinRating, 'f', -1, 64),
		"sort:" + req.SortBy,
	}
	return fmt.Sprintf("search:%016x", xxh3.HashString(strings.Join(parts, "|")))
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
