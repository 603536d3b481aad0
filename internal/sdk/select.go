package sdk

import "github.com/palmdev/palmdev-prep/internal/errors"

// Selection is the outcome of choosing the default SDK.
type Selection struct {
	// Root is the chosen SDK, or nil when the inventory holds none.
	Root *Root

	// Requested is the SDK name the user asked for, if any.
	Requested string

	// NotFound is set when Requested did not match any SDK and the
	// automatic choice was used instead.
	NotFound bool
}

// Automatic reports whether the root was picked by key order rather than
// by request.
func (s Selection) Automatic() bool {
	return s.Root != nil && (s.Requested == "" || s.NotFound)
}

// Err returns an error marked ErrSDKNotFound when the requested SDK was
// missing, else nil.
func (s Selection) Err() error {
	if !s.NotFound {
		return nil
	}
	return errors.Wrapf(errors.ErrSDKNotFound, "SDK '%s'", s.Requested)
}

// SelectDefault picks the SDK used when the compiler is given no -palmos
// option. A requested name is canonicalized and looked up first. Otherwise
// the SDK with the greatest key wins, comparing keys as byte strings, so
// "9" beats "10".
func SelectDefault(inv *Inventory, requested string) Selection {
	sel := Selection{Requested: requested}

	if requested != "" {
		if root, ok := inv.Lookup(CanonicalKey(inv.Store(), requested)); ok {
			sel.Root = root
			return sel
		}
		sel.NotFound = true
	}

	sel.Root = Highest(inv)
	return sel
}

// Highest returns the SDK root with the greatest key, or nil.
func Highest(inv *Inventory) *Root {
	var best *Root
	for _, root := range inv.sdks {
		if best == nil || root.Key > best.Key {
			best = root
		}
	}
	return best
}
