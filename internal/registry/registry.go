// registry.go - In-memory asset registry mapping asset ids to denominations.
//
// The verification engine deals only in asset ids; this registry is the small
// collaborator that remembers what those ids denominate. Ids derive
// deterministically from the denomination string, so any two parties that
// agree on a denomination agree on its id.

package registry

import (
	"sync"

	"github.com/zeebo/blake3"

	"transparentpool/internal/transparent"
)

const assetIDDomain = "transparentpool:asset-id:v1"

// DeriveAssetID derives the canonical asset id for a denomination.
func DeriveAssetID(denom string) transparent.AssetID {
	h := blake3.New()
	h.Write([]byte(assetIDDomain))
	h.Write([]byte(denom))
	var id transparent.AssetID
	copy(id[:], h.Sum(nil))
	return id
}

// Registry is a concurrency-safe map of asset ids to denominations.
type Registry struct {
	mu     sync.RWMutex
	denoms map[transparent.AssetID]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{denoms: make(map[transparent.AssetID]string)}
}

// Register records a denomination and returns its derived id. Registering a
// denomination that is already present is a no-op returning the same id.
func (r *Registry) Register(denom string) transparent.AssetID {
	id := DeriveAssetID(denom)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.denoms[id] = denom
	return id
}

// Denom looks up the denomination for an asset id.
func (r *Registry) Denom(id transparent.AssetID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	denom, ok := r.denoms[id]
	return denom, ok
}

// Len returns the number of registered assets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.denoms)
}
