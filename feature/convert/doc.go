// Package convert turns the flat game-data files into the JSON datasets the
// catalog reads.
//
// Every input is parsed into a catalog index: records by id, records in
// source order, and the secondary indexes (byInternalName for pokemon,
// moves, items, types and abilities, byType for trainers). ConvertDir runs
// all conversions of a directory, skipping missing inputs, and writes one
// {kind}.json per dataset plus conversion-stats.json.
//
// Supported inputs:
//   - pokemon.txt, types.txt and tournament rosters: [id] blocks of Key=Value lines
//   - moves.txt, items.txt, abilities.txt, trainertypes.txt: CSV lines
//   - trainers.txt, encounters.txt: sections separated by #--- lines
package convert
