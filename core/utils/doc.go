// Package utils provides the lenient value conversions used when reading
// the flat game-data files.
package utils
