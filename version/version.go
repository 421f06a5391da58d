// Package version holds the three part application version shown in usage headers.
package version

import (
	"fmt"
	"math"

	"github.com/Masterminds/semver/v3"
	"github.com/littlesmith/arguments/types"
)

// Version is a major.minor.revision triple. Its packed form keeps major in the top 16 bits, minor in the
// next 16 and revision in the low 32.
type Version struct {
	Major    uint16
	Minor    uint16
	Revision uint32
}

// New returns the version major.minor.revision
func New(major, minor uint16, revision uint32) Version {
	return Version{Major: major, Minor: minor, Revision: revision}
}

// Parse reads a dotted "major.minor.revision" string. Pre-release and build suffixes are rejected.
func Parse(s string) (Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, types.NewError(types.ErrMalformed, fmt.Sprintf("invalid version %q: %s", s, err))
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return Version{}, types.NewError(types.ErrMalformed, fmt.Sprintf("invalid version %q: suffixes are not supported", s))
	}
	if v.Major() > math.MaxUint16 || v.Minor() > math.MaxUint16 || v.Patch() > math.MaxUint32 {
		return Version{}, types.NewError(types.ErrOutOfRange, fmt.Sprintf("version %q is out of range", s))
	}

	return New(uint16(v.Major()), uint16(v.Minor()), uint32(v.Patch())), nil
}

// MustParse is like Parse but panics on error. Meant for version literals.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// FromUint64 unpacks a version from its 64-bit form
func FromUint64(packed uint64) Version {
	return Version{
		Major:    uint16(packed >> 48),
		Minor:    uint16(packed >> 32),
		Revision: uint32(packed),
	}
}

// Uint64 packs v into 64 bits
func (v Version) Uint64() uint64 {
	return uint64(v.Major)<<48 | uint64(v.Minor)<<32 | uint64(v.Revision)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or higher than other
func (v Version) Compare(other Version) int {
	return v.semver().Compare(other.semver())
}

func (v Version) semver() *semver.Version {
	return semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Revision), "", "")
}
