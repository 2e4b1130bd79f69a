// Package source defines the identifier source capability backing UUID generation.
//
// Each platform facility lives in its own sub-package and registers itself by name:
//
//   - system  - kernel provided UUID text (Linux procfs)
//   - guid    - OS GUID facility (CoCreateGuid on Windows)
//   - library - github.com/google/uuid
//   - gofrs   - github.com/gofrs/uuid/v5
//   - random  - any io.Reader, crypto/rand by default
//
// Import a sub-package (or blank import it) to make it available to Lookup.
package source
