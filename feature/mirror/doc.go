// Package mirror keeps a relational copy of the catalog.
//
// Pokémon, moves, items, types and abilities are written to the dex_*
// tables of the configured database (MySQL or SQLite) so they can be
// queried with SQL. Sync upserts by id and can prune rows the catalog no
// longer has. Diff reports missing rows, extra rows and rows whose columns
// disagree with the catalog.
//
// # HTTP Endpoints
//
//   - GET /mirror/diff : compares the mirror with the catalog
//   - POST /mirror/sync : upserts the catalog (supports ?prune=true)
package mirror
