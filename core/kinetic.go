package core

// Kinetic holds continuous position and a heading split into unit direction and scalar speed
type Kinetic struct {
	// X and Y are the center coordinates in court units
	X, Y float64
	// DirX and DirY form a unit vector, mutated only by reflection
	DirX, DirY float64
	// Speed is distance per unit time (court units per millisecond), fixed after construction
	Speed float64
}
