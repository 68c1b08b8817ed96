// Package arena implements allocations scoped to an owning reader, freed
// in bulk when the reader closes. A value that must outlive its arena is
// deep-copied onto the Go heap by decimal.Decimal.Claim.
//
// A real arena allocator would slab-allocate the backing bytes; this one
// keeps it simple (a per-owner slice of retained byte slices) since the
// codec's actual performance-critical path is the encode/decode logic in
// varint/binfloat/decimal/timestamp, not allocation strategy. Owners are
// identified by xxHash64 of their pointer value (internal/hash) rather
// than by comparing interface values of unknown dynamic type directly.
package arena

import (
	"reflect"
	"sync"

	"github.com/arloliu/ionum/internal/hash"
)

// Owner is any arena-scoped object (typically a reader) that allocations
// are charged against.
type Owner any

// Arena tracks allocations per owner so they can be released together.
type Arena struct {
	mu      sync.Mutex
	byOwner map[uint64][][]byte
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{byOwner: make(map[uint64][][]byte)}
}

func ownerKey(owner Owner) uint64 {
	if owner == nil {
		return 0
	}
	v := reflect.ValueOf(owner)
	switch v.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return hash.PointerID(v.Pointer())
	default:
		// Non-pointer owners (e.g. a value-typed token) are identified by
		// their xxHash64 content hash instead of an address.
		return hash.ID(fmtOwner(owner))
	}
}

func fmtOwner(owner Owner) string {
	type stringer interface{ String() string }
	if s, ok := owner.(stringer); ok {
		return s.String()
	}
	return reflect.TypeOf(owner).String()
}

// AllocFor returns a zeroed byte slice of the given size charged to owner.
// A nil owner means heap allocation that FreeAll never reclaims; the Go
// garbage collector reclaims it once unreferenced instead.
func (a *Arena) AllocFor(owner Owner, size int) []byte {
	buf := make([]byte, size)
	if owner == nil {
		return buf
	}

	key := ownerKey(owner)
	a.mu.Lock()
	a.byOwner[key] = append(a.byOwner[key], buf)
	a.mu.Unlock()
	return buf
}

// FreeAll releases every allocation charged to owner. Values obtained via
// Claim are unaffected since they live on the heap independently.
func (a *Arena) FreeAll(owner Owner) {
	key := ownerKey(owner)
	a.mu.Lock()
	delete(a.byOwner, key)
	a.mu.Unlock()
}

// Outstanding reports how many allocations are currently charged to owner,
// used by tests to assert FreeAll actually released them.
func (a *Arena) Outstanding(owner Owner) int {
	key := ownerKey(owner)
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.byOwner[key])
}
