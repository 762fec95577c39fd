// Package version represents Debian package versions and compares them
// according to the rules in Debian Policy 5.6.12. A version string has the
// form [epoch:]upstream_version[-debian_revision].
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidEpoch is reported by Parse when the text before the first
// colon is not a plain decimal number.
var ErrInvalidEpoch = errors.New("epoch must contain only digits")

// Version is a Debian package version split into its components.
type Version struct {
	Epoch    uint64
	Upstream string
	Revision string
}

// Parse splits a version string into epoch, upstream version and Debian
// revision. The epoch is the part before the first colon and must be
// numeric; the revision is the part after the last hyphen.
func Parse(vstring string) (Version, error) {
	var v Version

	rest := vstring
	if epoch, tail, found := strings.Cut(rest, ":"); found {
		for i := 0; i < len(epoch); i++ {
			if epoch[i] < '0' || epoch[i] > '9' {
				return Version{}, fmt.Errorf("invalid epoch %q: %w", epoch, ErrInvalidEpoch)
			}
		}
		if epoch != "" {
			n, err := strconv.ParseUint(epoch, 10, 64)
			if err != nil {
				return Version{}, fmt.Errorf("invalid epoch %q: %w", epoch, ErrInvalidEpoch)
			}
			v.Epoch = n
		}
		rest = tail
	}

	if i := strings.LastIndexByte(rest, '-'); i >= 0 {
		v.Revision = rest[i+1:]
		rest = rest[:i]
	}
	v.Upstream = rest

	return v, nil
}

// String rejoins the components into a version string.
func (v Version) String() string {
	var sb strings.Builder
	if v.Epoch > 0 {
		fmt.Fprintf(&sb, "%d:", v.Epoch)
	}
	sb.WriteString(v.Upstream)
	if v.Revision != "" {
		sb.WriteString("-")
		sb.WriteString(v.Revision)
	}
	return sb.String()
}

// Compare orders two versions per Debian Policy: epochs numerically, then
// the upstream versions, then the revisions. It returns a negative number
// if a sorts before b, zero if they are equal, and a positive number
// otherwise.
func Compare(a, b Version) int {
	if a.Epoch != b.Epoch {
		if a.Epoch < b.Epoch {
			return -1
		}
		return 1
	}
	if c := verrevcmp(a.Upstream, b.Upstream); c != 0 {
		return c
	}
	return verrevcmp(a.Revision, b.Revision)
}

// verrevcmp compares two version parts by alternating runs of non-digit
// and digit characters. Within non-digit runs, a tilde sorts before
// anything, including the end of the part; letters sort before all other
// characters.
func verrevcmp(a, b string) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		firstDiff := 0

		for (i < len(a) && !isDigit(a[i])) || (j < len(b) && !isDigit(b[j])) {
			ac, bc := 0, 0
			if i < len(a) {
				ac = charOrder(a[i])
			}
			if j < len(b) {
				bc = charOrder(b[j])
			}
			if ac != bc {
				return ac - bc
			}
			i++
			j++
		}

		for i < len(a) && a[i] == '0' {
			i++
		}
		for j < len(b) && b[j] == '0' {
			j++
		}
		for i < len(a) && j < len(b) && isDigit(a[i]) && isDigit(b[j]) {
			if firstDiff == 0 {
				firstDiff = int(a[i]) - int(b[j])
			}
			i++
			j++
		}
		if i < len(a) && isDigit(a[i]) {
			return 1
		}
		if j < len(b) && isDigit(b[j]) {
			return -1
		}
		if firstDiff != 0 {
			return firstDiff
		}
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func charOrder(c byte) int {
	switch {
	case isDigit(c):
		return 0
	case c == '~':
		return -1
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return int(c)
	default:
		return int(c) + 256
	}
}
