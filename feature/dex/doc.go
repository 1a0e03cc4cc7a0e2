// Package dex exposes the catalog to HTTP clients.
//
// Each handler plays the role of a page loader: it takes the configured
// dataset origin (never the request Host), loads the kinds it
// needs through the catalog and shapes the response. A kind that fails to
// load is replaced by an empty dataset and logged at warn level, so list
// pages render empty instead of failing. Detail pages answer 404 when the
// key is unknown.
//
// # HTTP Endpoints
//
//   - GET /api/pokemon?q=&type=&page=&limit= : paginated species list
//   - GET /api/pokemon/:id : species by national id or internal name
//   - GET /api/moves?q=&type=&category= : move list
//   - GET /api/moves/:id : move with decoded flags
//   - GET /api/items?q=&pocket= : item list
//   - GET /api/items/:id : item by id or internal name
//   - GET /api/trainers?q=&type= : trainer list
//   - GET /api/trainers/:id : trainer with type and resolved party
//   - GET /api/encounters : wild encounters of every map
//   - GET /api/encounters/:mapId : wild encounters of one map
//   - GET /api/types, /api/abilities, /api/trainertypes : reference lists
//   - GET /api/tournaments/:name : tournament roster
//   - GET /api/compare?ids=1,4 : side by side species
//   - GET /api/search?q=&limit= : search across pokemon, moves, items, trainers
//   - GET /api/stats : record count of every dataset
package dex
