// Package catalog provides the process-wide data catalog for the dex viewer.
//
// The catalog lazily loads the normalized JSON datasets produced by the
// offline converter (Pokémon, moves, items, trainers, trainer types,
// encounters, types, abilities and tournament rosters), indexes them and
// keeps them in memory for the lifetime of the process.
//
// # Execution Modes
//
// Two loading strategies are supported:
//   - Static: datasets are decoded from a bundled fs.FS (the embedded asset
//     bundle by default). No network is involved and the network cache is
//     never touched.
//   - Network: datasets are fetched from {origin}/data/json/{kind}.json.
//     Concurrent first loads of the same kind share one request, only
//     successful loads are cached, and a failed load can be retried.
//
// # Accessors
//
// Lookup and search helpers (PokemonByID, SearchMoves, ...) read what the
// mode has loaded: the network cache or the decoded bundle memo. They never
// fail: an unloaded kind or a missing key yields "not found" or an empty
// slice.
//
// # Usage
//
//	cat, err := catalog.New(cfg.Catalog, assets.JSON(), logger)
//	pokemon, err := cat.LoadPokemon(ctx, "https://dex.example.com")
//	if p, ok := cat.PokemonByID(4); ok {
//	    fmt.Println(p.Name)
//	}
package catalog
