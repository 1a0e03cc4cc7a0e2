// Package integrity checks the infrastructure the dex depends on.
//
// # Checks Provided
//
//   - Structure: the dataset prefix folders exist in the storage bucket.
//   - Datasets: every {kind}.json file is published under the prefix.
//   - References: internal names in one dataset resolve in the dataset they
//     point to (move lists, party species, encounter slots, ...), and each
//     index is self-consistent.
//   - Mirror: the mirror database tables carry the columns and types the
//     mirror models declare.
//
// A check whose backend is not configured answers 503 on its own endpoint
// and is reported as skipped by the combined check.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/datasets : Runs dataset presence check.
//   - GET /integrity/references : Runs cross reference check.
//   - GET /integrity/mirror : Runs mirror schema check.
package integrity
