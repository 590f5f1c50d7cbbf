package core

// Color tags a screen cell with the role it plays in a plot. The
// platform layer maps each tag to a concrete terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPath          // Segments joining consecutive steps
	ColorNode          // Visited cells
	ColorStart         // Step 0
	ColorEnd           // Last step
)
