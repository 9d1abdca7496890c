// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version construction and parsing failures
var (
	ErrMalformed  = errors.New("version string is not of the form major.minor.patch")
	ErrOutOfRange = errors.New("version component exceeds the 16-bit bound")
)

// MaxComponent is the largest value a single version component can hold.
const MaxComponent = 65535

// Version represents a semantic version number with Major, Minor, and Patch
// components, each bounded to 16 bits. The uint16 fields make an out-of-range
// Version unrepresentable: the fallible constructors validate at the boundary,
// so any Version a caller holds is valid. Values are small and immutable;
// every operation takes a value receiver and copies are fully independent.
type Version struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// New creates a Version from an integer triple, validating that each
// component fits in [0, MaxComponent]. Wider or signed caller values are
// narrowed only after the range check, never truncated.
// Returns an error wrapping ErrOutOfRange if any component is negative
// or exceeds MaxComponent.
func New(major, minor, patch int) (Version, error) {
	for _, c := range []struct {
		name  string
		value int
	}{
		{"major", major},
		{"minor", minor},
		{"patch", patch},
	} {
		if c.value < 0 || c.value > MaxComponent {
			return Version{}, fmt.Errorf("%w: %s %d", ErrOutOfRange, c.name, c.value)
		}
	}
	return Version{
		Major: uint16(major),
		Minor: uint16(minor),
		Patch: uint16(patch),
	}, nil
}

// MustNew creates a Version from an integer triple and panics if any
// component is out of range. Only use this for hardcoded values or in tests.
// For runtime data, always use New and handle errors explicitly.
func MustNew(major, minor, patch int) Version {
	v, err := New(major, minor, patch)
	if err != nil {
		panic(fmt.Sprintf("MustNew: %v", err))
	}
	return v
}

// String returns the canonical string representation "major.minor.patch"
// using minimal decimal digits, no sign, no padding. The result always
// re-parses to the identical Version. Rendering never fails.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses a dotted decimal version string into a Version.
// The input must be exactly three non-empty runs of ASCII digits separated
// by two dots: no "v" prefix, no signs, no whitespace, no suffixes.
// Leading zeros in a component are accepted and parsed numerically
// ("01" parses as 1).
//
// The two failure modes are distinguishable with errors.Is:
//   - ErrMalformed: wrong part count, empty part, or non-digit characters
//   - ErrOutOfRange: a numeric part exceeds MaxComponent
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q has %d part(s), want 3", ErrMalformed, s, len(parts))
	}

	var nums [3]uint16
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Version{}, fmt.Errorf("%w: %q", ErrOutOfRange, part)
			}
			return Version{}, fmt.Errorf("%w: component %q", ErrMalformed, part)
		}
		nums[i] = uint16(n)
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParse parses a version string and panics if parsing fails.
// This function is useful for initializing package-level constants or test
// data where the version string is known to be valid at compile time.
//
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
//
// Example usage:
//
//	v := version.MustParse("1.33.0") // OK in init() or tests
//	v, err := version.Parse(userInput) // Required for runtime data
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// The order is lexicographic on (Major, Minor, Patch), each component
// compared numerically. Useful for sorting versions.
func (v Version) Compare(other Version) int {
	if v.Major < other.Major {
		return -1
	}
	if v.Major > other.Major {
		return 1
	}

	if v.Minor < other.Minor {
		return -1
	}
	if v.Minor > other.Minor {
		return 1
	}

	if v.Patch < other.Patch {
		return -1
	}
	if v.Patch > other.Patch {
		return 1
	}

	return 0
}

// Equals returns true if v exactly equals other (all components match).
// Version has no hidden state, so this agrees with the == operator and
// with Compare returning 0.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor && v.Patch == other.Patch
}

// Less returns true if v orders strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// IsNewer returns true if v is strictly newer than other (not equal).
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// EqualsOrNewer returns true if v is equal to or newer than other.
// This is the predicate for "is the running version at least the required
// version" gating checks.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// BumpPatch returns a copy of v with the patch component incremented.
// Returns an error wrapping ErrOutOfRange if the patch component is
// already at MaxComponent.
func (v Version) BumpPatch() (Version, error) {
	if v.Patch == MaxComponent {
		return Version{}, fmt.Errorf("%w: patch %d cannot be incremented", ErrOutOfRange, v.Patch)
	}
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
}

// BumpMinor returns a copy of v with the minor component incremented and
// the patch component reset to 0. Returns an error wrapping ErrOutOfRange
// if the minor component is already at MaxComponent.
func (v Version) BumpMinor() (Version, error) {
	if v.Minor == MaxComponent {
		return Version{}, fmt.Errorf("%w: minor %d cannot be incremented", ErrOutOfRange, v.Minor)
	}
	return Version{Major: v.Major, Minor: v.Minor + 1}, nil
}

// BumpMajor returns a copy of v with the major component incremented and
// the minor and patch components reset to 0. Returns an error wrapping
// ErrOutOfRange if the major component is already at MaxComponent.
func (v Version) BumpMajor() (Version, error) {
	if v.Major == MaxComponent {
		return Version{}, fmt.Errorf("%w: major %d cannot be incremented", ErrOutOfRange, v.Major)
	}
	return Version{Major: v.Major + 1}, nil
}

// Provider is implemented by components that report their own version.
// It lets version-gating logic accept any component without naming its
// concrete type.
type Provider interface {
	Version() Version
}
