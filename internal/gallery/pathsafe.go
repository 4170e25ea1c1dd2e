package gallery

import "strings"

// IsSafeSegment reports whether segment can be safely joined onto a
// filesystem root as a single path component. It rejects empty strings,
// the traversal tokens "." and "..", and anything containing a path
// separator. Ordinary dot-prefixed filenames like ".hidden" are allowed.
//
// Every identifier taken from an external request (album slug, filename,
// size name) must pass this check before it reaches the filesystem; a
// failure is a not-found condition, never an internal error.
func IsSafeSegment(segment string) bool {
	if segment == "" || segment == "." || segment == ".." {
		return false
	}
	return !strings.ContainsAny(segment, `/\`)
}
