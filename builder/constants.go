package builder

// Method names prefix constructor errors.
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
)

// CenterVertexID is the hub label used by Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes. Each one is the smallest input that yields at least one edge
// without a self-loop.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 2
	MinPartition     = 1
	MinGridDim       = 1
	// MinGridCells rules out the 1x1 grid, which has no edges.
	MinGridCells = 2
)

// gridIDFmt renders a grid cell as "row,col".
const gridIDFmt = "%d,%d"
