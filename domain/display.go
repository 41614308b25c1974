package domain

import "strings"

// Shorten rewrites full relative to base for display. If full lives under
// base (after stripping base's trailing separator) the remainder is returned
// with its leading separator; base itself shortens to "/". Paths outside
// base are returned unchanged.
func Shorten(base, full string) string {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return full
	}
	if full == base {
		return "/"
	}
	if strings.HasPrefix(full, base+"/") {
		return strings.TrimPrefix(full, base)
	}
	return full
}

// DisplayTable maps shortened display strings back to the absolute paths
// they were derived from. Any listing that shows shortened paths must keep
// one of these and resolve user picks by lookup: the base dir may have
// changed since the path was shortened, so re-deriving the absolute path
// from the display string is not safe.
type DisplayTable struct {
	byDisplay map[string]string
}

// NewDisplayTable builds a table for one listing, shortening each absolute
// path against base. Returns the table and the display strings in the same
// order as paths. When two paths collapse to the same display string, both
// keep their full paths so every entry stays resolvable.
func NewDisplayTable(base string, paths []string) (*DisplayTable, []string) {
	counts := make(map[string]int, len(paths))
	shortened := make([]string, len(paths))
	for i, p := range paths {
		shortened[i] = Shorten(base, p)
		counts[shortened[i]]++
	}

	t := &DisplayTable{byDisplay: make(map[string]string, len(paths))}
	displays := make([]string, len(paths))
	for i, p := range paths {
		d := shortened[i]
		if counts[d] > 1 {
			d = p
		}
		t.byDisplay[d] = p
		displays[i] = d
	}
	return t, displays
}

// Resolve returns the absolute path a display string was derived from
func (t *DisplayTable) Resolve(display string) (string, bool) {
	p, ok := t.byDisplay[display]
	return p, ok
}
