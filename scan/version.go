package scan

import (
	"errors"
	"fmt"
)

// Version is the JSXBIN format version. Versions are ordered; decoders
// compare against them (e.g. "version >= V20" gates optional fields).
type Version int

const (
	VersionUnknown Version = 0
	V10            Version = 10
	V20            Version = 20
)

// ErrUnsupportedVersion is returned for version strings outside the known set.
var ErrUnsupportedVersion = errors.New("unsupported jsxbin version")

// ParseVersion maps the textual version found in a JSXBIN header
// ("1.0", "2.0") to a Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "1.0", "1":
		return V10, nil
	case "2.0", "2":
		return V20, nil
	}
	return VersionUnknown, fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
}

// String returns the header form of the version ("2.0").
func (v Version) String() string {
	switch v {
	case V10:
		return "1.0"
	case V20:
		return "2.0"
	}
	return fmt.Sprintf("unknown(%d)", int(v))
}

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	return v >= other
}
