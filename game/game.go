// Package game runs the splash, play and death screens over a render surface
// and an input source.
package game

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/snaking/audio"
	"github.com/lixenwraith/snaking/config"
	"github.com/lixenwraith/snaking/constant"
	"github.com/lixenwraith/snaking/input"
	"github.com/lixenwraith/snaking/render"
	"github.com/lixenwraith/snaking/snake"
)

// Sound receives gameplay cues
type Sound interface {
	Eat()
	Die()
}

// Screen draws one screen and blocks until it is done. It returns the screen
// to show next, or nil to exit.
type Screen func(g *Game) (Screen, error)

// Game owns the snake and food for the lifetime of one process
type Game struct {
	surface render.Surface
	source  input.Source
	sound   Sound
	rng     *rand.Rand

	tick   time.Duration
	length int
	glyphs snake.GlyphSet
	food   rune

	// spawn picks a food cell; replaced in tests
	spawn func(snake.Bound, *rand.Rand) snake.Food

	// Round state, reset by Play
	bound snake.Bound
	snake *snake.Snake
	meal  snake.Food
}

// Option customizes a Game
type Option func(*Game)

// WithSound routes cues to s
func WithSound(s Sound) Option {
	return func(g *Game) { g.sound = s }
}

// WithRand fixes the food generator
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// New creates a game from a validated config
func New(surface render.Surface, source input.Source, cfg *config.Config, opts ...Option) *Game {
	g := &Game{
		surface: surface,
		source:  source,
		sound:   audio.Silent{},
		tick:    cfg.Tick,
		length:  cfg.Length,
		glyphs:  cfg.GlyphSet(),
		food:    cfg.FoodGlyph(),
		spawn:   snake.SomewhereWithin,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = snake.NewRand()
	}
	return g
}

// Run shows screens starting from the splash until one returns nil
func (g *Game) Run() error {
	return g.RunFrom(Splash)
}

// RunFrom shows screens starting from first
func (g *Game) RunFrom(first Screen) error {
	for screen := first; screen != nil; {
		next, err := screen(g)
		if err != nil {
			return err
		}
		screen = next
	}
	return nil
}

// Snake returns the snake of the current round, nil before the first round
func (g *Game) Snake() *snake.Snake { return g.snake }

// Food returns the food of the current round
func (g *Game) Food() snake.Food { return g.meal }

// reset starts a new round sized to the current surface
func (g *Game) reset() {
	w, h := g.surface.Size()
	g.bound = snake.NewBound(w, h)
	g.snake = snake.New(snake.P(constant.StartX, constant.StartY), g.length)
	g.meal = g.placeFood()
	log.Printf("Round started: bound %dx%d, length %d, food at %v",
		g.bound.Width, g.bound.Height, g.snake.Len(), g.meal.Cell())
}

// placeFood draws a food cell off the snake; after the retry budget the last
// draw is kept even if it lands on the body.
func (g *Game) placeFood() snake.Food {
	var f snake.Food
	for range constant.FoodPlacementRetries {
		f = g.spawn(g.bound, g.rng).WithGlyph(g.food)
		if g.snake == nil || !g.snake.Occupies(g.bound, f.Cell()) {
			break
		}
	}
	return f
}

// step advances one tick and reports whether the snake hit itself
func (g *Game) step(turn snake.Direction) (collided bool) {
	g.snake.Advance(turn)
	if g.snake.Collided() {
		log.Printf("Collision at %v, length %d", g.snake.Head(), g.snake.Len())
		return true
	}
	if g.meal.IsEatenBy(g.snake) {
		g.snake.Grow()
		g.sound.Eat()
		g.meal = g.placeFood()
		log.Printf("Food eaten: length %d, next food at %v", g.snake.Len(), g.meal.Cell())
	}
	return false
}

func (g *Game) drawFrame() error {
	g.surface.Clear()
	g.surface.Draw(render.LayerSnake, g.snake.Glyphs(g.bound, g.glyphs)...)
	g.surface.Draw(render.LayerFood, g.meal.Glyph())
	if err := g.surface.Show(); err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}
	return nil
}
