// Package version provides a bounded semantic version value type with
// canonical text interchange and total ordering.
//
// # Overview
//
// A Version holds three components, Major.Minor.Patch, each a 16-bit
// unsigned integer. The type is built for version numbers exchanged
// between deterministic components over a network: two independently
// built systems parsing the same string must agree on the result
// bit-for-bit, and rendering must reproduce the exact value on re-parse.
//
// The type is a plain value: immutable after construction, comparable
// with ==, safe to copy and to share across goroutines without
// synchronization.
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.Parse("1.2.3")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3
//
// Create versions programmatically:
//
//	v, err := version.New(1, 2, 3)
//
// Compare versions:
//
//	running := version.MustParse("1.10.0")
//	required := version.MustParse("1.9.0")
//	if running.EqualsOrNewer(required) {
//	    fmt.Println("Version requirement met")
//	}
//
// # Text Interchange
//
// The canonical form "major.minor.patch" (minimal decimal digits, two
// dots, nothing else) is the wire and config representation. Version
// implements encoding.TextMarshaler/TextUnmarshaler, which covers JSON
// and TOML embedding, and yaml.Marshaler/yaml.Unmarshaler for YAML
// documents. Parsing is strict: no "v" prefix, no signs, no whitespace,
// no pre-release or build-metadata suffixes. Leading zeros in a component
// are accepted on input ("01" parses as 1) and never produced on output.
//
// # Ordering
//
// Versions order lexicographically on (Major, Minor, Patch) with each
// component compared numerically, so 1.9.0 < 1.10.0. Compare, Less,
// IsNewer, and EqualsOrNewer all derive from the same total order, and
// Compare returning 0 coincides exactly with equality.
//
// # Error Handling
//
// The fallible constructors return one of two error kinds, matched with
// errors.Is:
//
//   - ErrMalformed: the string is not <digits>.<digits>.<digits>
//   - ErrOutOfRange: a component is negative or exceeds 65535
//
// Construction either fully succeeds or fails; no operation produces a
// partially valid Version. For constant initialization, MustParse and
// MustNew panic on error:
//
//	var MinSupported = version.MustParse("1.0.0")
package version
