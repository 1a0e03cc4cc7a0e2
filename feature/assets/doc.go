// Package assets serves the dataset files under /data/json.
//
// Files come from a Source: the bundle embedded in the binary or the
// object-storage bucket the datasets were published to. Responses are
// cacheable for an hour, carry an ETag and answer conditional requests
// with 304. Any origin may read them.
//
// # HTTP Endpoints
//
//   - GET /data/json/:file : returns one dataset, e.g. /data/json/pokemon.json
package assets
