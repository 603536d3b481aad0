package sdk

import (
	"slices"
	"strings"

	"github.com/palmdev/palmdev-prep/internal/intern"
)

// Inventory holds the roots discovered during one run: generic roots in
// scan order and SDK roots keyed by canonical key.
type Inventory struct {
	store   *intern.Store
	generic []*Root
	sdks    map[string]*Root
}

// NewInventory returns an empty Inventory whose strings live in store.
// A nil store gets a fresh one.
func NewInventory(store *intern.Store) *Inventory {
	if store == nil {
		store = intern.New()
	}
	return &Inventory{
		store: store,
		sdks:  make(map[string]*Root),
	}
}

// Store returns the string store backing the inventory.
func (inv *Inventory) Store() *intern.Store {
	return inv.store
}

// Generic returns the generic roots in the order they were scanned.
func (inv *Inventory) Generic() []*Root {
	return inv.generic
}

// Lookup returns the SDK root stored for key.
func (inv *Inventory) Lookup(key string) (*Root, bool) {
	root, ok := inv.sdks[key]
	return root, ok
}

// SDKs returns the SDK roots ordered by key, compared as byte strings.
func (inv *Inventory) SDKs() []*Root {
	roots := make([]*Root, 0, len(inv.sdks))
	for _, root := range inv.sdks {
		roots = append(roots, root)
	}
	slices.SortFunc(roots, func(a, b *Root) int {
		return strings.Compare(a.Key, b.Key)
	})
	return roots
}

// Len returns the number of SDK roots.
func (inv *Inventory) Len() int {
	return len(inv.sdks)
}

// AddSDK stores root under key unless the key is taken, and reports whether
// it was stored. Roots without headers are never stored.
func (inv *Inventory) AddSDK(key string, root *Root) bool {
	if !root.HasHeaders() {
		return false
	}
	if _, taken := inv.sdks[key]; taken {
		return false
	}
	root.Key = key
	inv.sdks[key] = root
	return true
}

// AddGeneric appends root to the generic roots if it provides anything,
// and reports whether it did.
func (inv *Inventory) AddGeneric(root *Root) bool {
	if !root.Useful() {
		return false
	}
	inv.generic = append(inv.generic, root)
	return true
}
