// Package crossuuid generates, compares and encodes 128 bit universally unique identifiers.
//
// A UUID is an opaque 16 byte value; version and variant bits are neither set nor checked.
// New identifiers come from a pluggable source (see the source package), selected per
// platform at build time or injected with WithSource:
//
//	id, err := crossuuid.Generate()
//	text := id.String()                  // 8-4-4-4-12 lowercase hex
//	back, err := crossuuid.Parse(text)   // lenient: hyphens optional, non-hex digits read as 0
//	strict, err := crossuuid.ParseStrict(text)
//	id.Clear()
//
// Generation failures are reported as ErrSourceUnavailable. WithZeroFallback restores the
// legacy behaviour of returning the zero UUID instead.
package crossuuid
