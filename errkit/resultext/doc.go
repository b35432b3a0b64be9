// Package resultext provides context-adding adapters over Go's native
// (value, error) results and pointer-based optionals.
package resultext
