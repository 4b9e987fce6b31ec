package constant

import "time"

// Game Loop
const (
	// TickInterval is how long a tick waits for directional input
	TickInterval = 250 * time.Millisecond

	// InitialLength is the body length of a new snake, in cells
	InitialLength = 10

	// StartX, StartY place the head on the lattice origin, the center of the screen
	StartX = 0
	StartY = 0

	// FoodPlacementRetries bounds re-rolls when food lands on the body
	FoodPlacementRetries = 64
)

// Screens
const (
	SplashTitle  = "Snakes are Snakeing!"
	SplashStart  = "Press enter to start...."
	SplashExit   = "q or ESC to exit."
	DeathMessage = "You DIE!"
	WindowTitle  = "Snake"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "snaking.log"
	MaxLogSize  = 10 * 1024 * 1024 // 10MB
)
