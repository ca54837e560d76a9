package catalog_cache

import (
	"sync"
	"time"

	"github.com/mummysboy/furnishandgo/models"
)

const TTL = 5 * time.Minute

// ── Full category tree cache ─────────────────────────────────────────────────
// Stores parents with children preloaded + furniture counts per category.
// The admin tree view and the storefront sidebar both read from this.

type treeEntry struct {
	parents       []models.Category
	productCounts map[uint]int
	fetchedAt     time.Time
}

var (
	treeMu    sync.RWMutex
	treeCache *treeEntry
)

func GetTree() (parents []models.Category, productCounts map[uint]int, ok bool) {
	treeMu.RLock()
	defer treeMu.RUnlock()
	if treeCache != nil && time.Since(treeCache.fetchedAt) < TTL {
		return treeCache.parents, treeCache.productCounts, true
	}
	return nil, nil, false
}

func SetTree(parents []models.Category, productCounts map[uint]int) {
	treeMu.Lock()
	defer treeMu.Unlock()
	treeCache = &treeEntry{
		parents:       parents,
		productCounts: productCounts,
		fetchedAt:     time.Now(),
	}
}

// ── Parent map cache ─────────────────────────────────────────────────────────
// The name → top-level-name map every storefront request resolves through.

type parentMapEntry struct {
	parentMap map[string]string
	fetchedAt time.Time
}

var (
	pmMu    sync.RWMutex
	pmCache *parentMapEntry
)

func GetParentMap() (map[string]string, bool) {
	pmMu.RLock()
	defer pmMu.RUnlock()
	if pmCache != nil && time.Since(pmCache.fetchedAt) < TTL {
		return pmCache.parentMap, true
	}
	return nil, false
}

func SetParentMap(parentMap map[string]string) {
	pmMu.Lock()
	defer pmMu.Unlock()
	pmCache = &parentMapEntry{parentMap: parentMap, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any category create/rename/delete) ────────

func Invalidate() {
	treeMu.Lock()
	treeCache = nil
	treeMu.Unlock()

	pmMu.Lock()
	pmCache = nil
	pmMu.Unlock()
}
