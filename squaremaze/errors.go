package squaremaze

import "errors"

// Sentinel errors for maze construction. The growth loop itself is total
// and never returns an error.
var (
	// ErrInvalidDimensions indicates the grid cannot hold the requested
	// number of non-overlapping seed clusters with a 2-cell border margin.
	ErrInvalidDimensions = errors.New("squaremaze: grid too small for requested seed clusters")

	// ErrInvalidParameter indicates a construction parameter outside its
	// supported domain (tree count < 1, spacing < 1, or a pinned
	// seed-center list whose length differs from the tree count).
	ErrInvalidParameter = errors.New("squaremaze: parameter outside supported domain")
)
