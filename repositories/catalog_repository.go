package repositories

import (
	"sync"

	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/utils"
)

// CatalogRepository gives read access to the package catalog
type CatalogRepository interface {
	All() []domain.Package
	GetByID(id int) (domain.Package, bool)
	Locations() []domain.Location
}

// catalogRepository keeps the catalog in process memory. It is seeded once and
// never written afterwards; every read hands out copies.
type catalogRepository struct {
	mu        sync.RWMutex
	packages  []domain.Package
	byID      map[int]int
	locations []domain.Location
}

// NewCatalogRepository creates a catalog holding the given packages and
// locations. Slugs are filled in when missing.
func NewCatalogRepository(packages []domain.Package, locations []domain.Location) CatalogRepository {
	r := &catalogRepository{
		packages:  make([]domain.Package, 0, len(packages)),
		byID:      make(map[int]int, len(packages)),
		locations: make([]domain.Location, 0, len(locations)),
	}
	for _, p := range packages {
		p = p.Clone()
		if p.Slug == "" {
			p.Slug = utils.Slugify(p.Title)
		}
		r.byID[p.ID] = len(r.packages)
		r.packages = append(r.packages, p)
	}
	for _, l := range locations {
		if l.Slug == "" {
			l.Slug = utils.Slugify(l.Name)
		}
		r.locations = append(r.locations, l)
	}
	return r
}

// NewDefaultCatalogRepository creates the catalog served by the site
func NewDefaultCatalogRepository() CatalogRepository {
	return NewCatalogRepository(DefaultPackages(), DefaultLocations())
}

// All returns every package in catalog order
func (r *catalogRepository) All() []domain.Package {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Package, len(r.packages))
	for i, p := range r.packages {
		out[i] = p.Clone()
	}
	return out
}

// GetByID looks a package up by its id
func (r *catalogRepository) GetByID(id int) (domain.Package, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.Package{}, false
	}
	return r.packages[idx].Clone(), true
}

// Locations returns the featured destinations
func (r *catalogRepository) Locations() []domain.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Location(nil), r.locations...)
}
