package repositories

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	log "github.com/sirupsen/logrus"
	"github.com/vishalpatil-45/Adventour/domain"
)

const localCacheTTL = 5 * time.Minute

// CacheRepository caches catalog query results
type CacheRepository interface {
	Get(key string) ([]domain.Package, bool)
	Set(key string, packages []domain.Package, ttl time.Duration)
}

type cacheData struct {
	Packages []domain.Package `json:"packages"`
}

// cacheRepository is a two level cache: ccache in process, memcached shared.
// memcachedClient is nil when no memcached host is configured.
type cacheRepository struct {
	localCache      *ccache.Cache[*cacheData]
	memcachedClient *memcache.Client
}

// NewCacheRepository creates a CacheRepository. An empty memcachedHost keeps
// only the local level.
func NewCacheRepository(memcachedHost string) CacheRepository {
	localCache := ccache.New(ccache.Configure[*cacheData]().MaxSize(1000))

	var client *memcache.Client
	if memcachedHost != "" {
		client = memcache.New(memcachedHost)
		client.Timeout = 200 * time.Millisecond
		log.WithField("host", memcachedHost).Info("search cache using memcached")
	} else {
		log.Info("search cache running local only")
	}

	return &cacheRepository{
		localCache:      localCache,
		memcachedClient: client,
	}
}

// Get looks in the local cache first, then memcached. A memcached hit is
// copied into the local level.
func (r *cacheRepository) Get(key string) ([]domain.Package, bool) {
	if item := r.localCache.Get(key); item != nil && !item.Expired() {
		log.WithField("key", key).Debug("cache hit (local)")
		return clonePackages(item.Value().Packages), true
	}

	if r.memcachedClient == nil {
		return nil, false
	}

	mcItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			log.WithError(err).WithField("key", key).Warn("memcached get failed")
		}
		return nil, false
	}

	var data cacheData
	if err := json.Unmarshal(mcItem.Value, &data); err != nil {
		log.WithError(err).WithField("key", key).Warn("bad cache entry in memcached")
		return nil, false
	}

	r.localCache.Set(key, &data, localCacheTTL)
	log.WithField("key", key).Debug("cache hit (memcached)")
	return clonePackages(data.Packages), true
}

// Set stores the result in both levels. The local level never keeps an entry
// longer than localCacheTTL.
func (r *cacheRepository) Set(key string, packages []domain.Package, ttl time.Duration) {
	data := &cacheData{Packages: clonePackages(packages)}

	localTTL := ttl
	if localTTL <= 0 || localTTL > localCacheTTL {
		localTTL = localCacheTTL
	}
	r.localCache.Set(key, data, localTTL)

	if r.memcachedClient == nil {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("marshal cache entry")
		return
	}

	item := &memcache.Item{
		Key:        key,
		Value:      raw,
		Expiration: int32(ttl.Seconds()),
	}
	if err := r.memcachedClient.Set(item); err != nil {
		log.WithError(err).WithField("key", key).Warn("memcached set failed")
	}
}

func clonePackages(in []domain.Package) []domain.Package {
	out := make([]domain.Package, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
