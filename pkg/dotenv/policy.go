package dotenv

import (
	"fmt"
	"strings"
)

// Policy decides how an assignment is applied to a Store.
type Policy int

const (
	// Override sets every key from the file, replacing existing values.
	// A missing or empty value removes the key.
	Override Policy = iota
	// Skip only sets keys that are not already present. A key set to the
	// empty string counts as present.
	Skip
)

func (p Policy) String() string {
	switch p {
	case Override:
		return "override"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy returns the Policy named s, ignoring case.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "override":
		return Override, nil
	case "skip":
		return Skip, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Apply writes line to store. line.Key must already be trimmed and non-empty.
func (p Policy) Apply(store Store, line Line) error {
	switch p {
	case Override:
		if !line.HasValue || line.Value == "" {
			return store.Unset(line.Key)
		}
		return store.Set(line.Key, line.Value)
	case Skip:
		if !line.HasValue {
			return nil
		}
		if _, ok := store.Lookup(line.Key); ok {
			return nil
		}
		return store.Set(line.Key, line.Value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPolicy, p)
	}
}
