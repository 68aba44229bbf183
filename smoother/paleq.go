package smoother

const (
	clusterStart = 228
	clusterEnd   = 240
	clusterSize  = 4
)

// PalEq checks if two palette indices should be treated
// as the same surface when looking for smoothing patterns.
//
// Indices 228 through 239 are reserved for shades of the
// same material, and are grouped into clusters of four
// consecutive indices. All other indices must match
// exactly.
func PalEq(c1, c2 int) bool {
	return clusterColor(c1) == clusterColor(c2)
}

func clusterColor(c int) int {
	if c >= clusterStart && c < clusterEnd {
		return c / clusterSize * clusterSize
	}
	return c
}
