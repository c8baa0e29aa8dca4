// Package block implements BlockLattice2D/3D (spec.md C4): a regular
// grid of cell.Cell values addressed by row-pointer slices, with
// background dynamics, per-axis periodicity, a BlockStatistics
// accumulator, and the cache-blocked skewed collideAndStream kernel
// (spec.md §4.4.3).
package block

// Config carries construction-time parameters that the source hard-codes
// into a package-level cachePolicy() singleton (spec.md §9 Design Notes,
// "Global singletons" — inject instead). CacheBlockSize 0 means "pick the
// dimension-appropriate default the source uses" (200 for 2D, 30 for 3D,
// per CachePolicy2D/3D's default constructors).
type Config struct {
	CacheBlockSize int
	Periodic       [3]bool // periodicity per axis; Periodic[2] unused in 2D
}

func (c Config) blockSize(defaultSize int) int {
	if c.CacheBlockSize > 0 {
		return c.CacheBlockSize
	}
	return defaultSize
}
