package game

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/snaking/config"
	"github.com/lixenwraith/snaking/constant"
	"github.com/lixenwraith/snaking/input"
	"github.com/lixenwraith/snaking/render"
	"github.com/lixenwraith/snaking/snake"
)

// fakeSurface keeps the frame in progress and the last shown frame
type fakeSurface struct {
	width, height int
	glyphs        map[render.Layer][]snake.Glyph
	texts         map[[2]int]string
	shown         int
	last          map[[2]int]string
	lastGlyphs    map[render.Layer][]snake.Glyph
	err           error
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{width: w, height: h}
}

func (f *fakeSurface) Size() (int, int) { return f.width, f.height }

func (f *fakeSurface) Clear() {
	f.glyphs = make(map[render.Layer][]snake.Glyph)
	f.texts = make(map[[2]int]string)
}

func (f *fakeSurface) Draw(layer render.Layer, glyphs ...snake.Glyph) {
	f.glyphs[layer] = append(f.glyphs[layer], glyphs...)
}

func (f *fakeSurface) Text(x, y int, s string) {
	f.texts[[2]int{x, y}] = s
}

func (f *fakeSurface) Show() error {
	if f.err != nil {
		return f.err
	}
	f.shown++
	f.last = f.texts
	f.lastGlyphs = f.glyphs
	return nil
}

// step is one scripted key press; a timeout step makes Poll expire
type step struct {
	intent  input.Intent
	timeout bool
}

var (
	confirm = step{intent: input.Intent{Type: input.IntentConfirm}}
	quit    = step{intent: input.Intent{Type: input.IntentQuit}}
	idle    = step{timeout: true}
)

func turn(d snake.Direction) step {
	return step{intent: input.Intent{Type: input.IntentTurn, Dir: d}}
}

// scriptSource replays steps and reports ErrClosed when they run out
type scriptSource struct {
	steps []step
	polls []time.Duration
}

func (s *scriptSource) next() (step, bool) {
	if len(s.steps) == 0 {
		return step{}, false
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	return st, true
}

func (s *scriptSource) Poll(timeout time.Duration) (input.Intent, bool, error) {
	s.polls = append(s.polls, timeout)
	st, ok := s.next()
	if !ok {
		return input.Intent{}, false, input.ErrClosed
	}
	if st.timeout {
		return input.Intent{}, false, nil
	}
	return st.intent, true, nil
}

func (s *scriptSource) Wait() (input.Intent, error) {
	for {
		st, ok := s.next()
		if !ok {
			return input.Intent{}, input.ErrClosed
		}
		if !st.timeout {
			return st.intent, nil
		}
	}
}

type countingSound struct {
	eat, die int
}

func (c *countingSound) Eat() { c.eat++ }
func (c *countingSound) Die() { c.die++ }

// newTestGame builds a 20x10 game whose food spawns at the given cells in order,
// repeating the last one
func newTestGame(t *testing.T, length int, steps []step, cells ...snake.Cell) (*Game, *fakeSurface, *scriptSource, *countingSound) {
	t.Helper()
	cfg := config.Default()
	cfg.Length = length

	surface := newFakeSurface(20, 10)
	source := &scriptSource{steps: steps}
	sound := &countingSound{}
	g := New(surface, source, cfg, WithSound(sound), WithRand(rand.New(rand.NewPCG(1, 2))))

	if len(cells) > 0 {
		g.spawn = func(b snake.Bound, _ *rand.Rand) snake.Food {
			c := cells[0]
			if len(cells) > 1 {
				cells = cells[1:]
			}
			return snake.FoodAt(b, c)
		}
	}
	return g, surface, source, sound
}

// far is a cell none of the scripted snakes reach
var far = snake.C(0, 0)

func TestSplash(t *testing.T) {
	tests := []struct {
		name  string
		steps []step
		want  string
	}{
		{"enter starts", []step{confirm}, "play"},
		{"quit exits", []step{quit}, "exit"},
		{"other keys ignored", []step{turn(snake.Left), idle, confirm}, "play"},
		{"closed exits", nil, "exit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, surface, _, _ := newTestGame(t, 3, tt.steps)
			next, err := Splash(g)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			got := "exit"
			if next != nil {
				got = "play"
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}

			// 20 wide: title at 20/2 - 9
			if s := surface.last[[2]int{1, 4}]; s != constant.SplashTitle {
				t.Errorf("Expected title at (1,4), got %q", s)
			}
			if s := surface.last[[2]int{0, 5}]; s != constant.SplashStart {
				t.Errorf("Expected start hint at (0,5), got %q", s)
			}
		})
	}
}

func TestPlayEatsFood(t *testing.T) {
	// Heading up from (0,0), the head reaches (0,2) on the second tick
	bound := snake.NewBound(20, 10)
	g, _, source, sound := newTestGame(t, 3, []step{idle, idle, quit},
		bound.Project(snake.P(0, 2)), far)

	if err := g.RunFrom(Play); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if g.Snake().Len() != 4 {
		t.Errorf("Expected length 4 after eating, got %d", g.Snake().Len())
	}
	if sound.eat != 1 {
		t.Errorf("Expected 1 eat cue, got %d", sound.eat)
	}
	if g.Food().Cell() != far {
		t.Errorf("Expected new food at %v, got %v", far, g.Food().Cell())
	}
	if g.Food().Glyph().Rune != constant.GlyphFood {
		t.Errorf("Expected food glyph %q, got %q", constant.GlyphFood, g.Food().Glyph().Rune)
	}
	for i, d := range source.polls {
		if d != constant.TickInterval {
			t.Errorf("Poll %d: expected timeout %v, got %v", i, constant.TickInterval, d)
		}
	}
}

func TestPlayCollides(t *testing.T) {
	steps := []step{turn(snake.Right), turn(snake.Down), turn(snake.Left), confirm}
	g, surface, _, sound := newTestGame(t, 5, steps, far)

	if err := g.RunFrom(Play); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !g.Snake().Collided() {
		t.Error("Expected snake to have collided")
	}
	if sound.die != 1 {
		t.Errorf("Expected 1 death cue, got %d", sound.die)
	}
	if s := surface.last[[2]int{7, 5}]; s != constant.DeathMessage {
		t.Errorf("Expected %q at (7,5), got %q", constant.DeathMessage, s)
	}
	// Three game frames plus the death screen
	if surface.shown != 4 {
		t.Errorf("Expected 4 frames, got %d", surface.shown)
	}
}

func TestPlayReversalIgnored(t *testing.T) {
	g, _, _, sound := newTestGame(t, 5, []step{turn(snake.Down), turn(snake.Down), quit}, far)

	if err := g.RunFrom(Play); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sound.die != 0 {
		t.Errorf("Expected no collision, got %d death cues", sound.die)
	}
	if g.Snake().Head() != snake.P(0, 2) {
		t.Errorf("Expected head (0,2), got %v", g.Snake().Head())
	}
}

func TestPlayFrame(t *testing.T) {
	g, surface, _, _ := newTestGame(t, 3, []step{quit}, far)

	if err := g.RunFrom(Play); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	body := surface.lastGlyphs[render.LayerSnake]
	if len(body) != 3 {
		t.Fatalf("Expected 3 snake glyphs, got %d", len(body))
	}
	if body[0].Rune != constant.GlyphUp || body[0].Cell != snake.C(10, 5) {
		t.Errorf("Expected head %q at [10,5], got %q at %v", constant.GlyphUp, body[0].Rune, body[0].Cell)
	}
	if body[1].Rune != constant.GlyphBody {
		t.Errorf("Expected body glyph %q, got %q", constant.GlyphBody, body[1].Rune)
	}
	food := surface.lastGlyphs[render.LayerFood]
	if len(food) != 1 || food[0].Cell != far {
		t.Errorf("Expected food at %v, got %v", far, food)
	}
}

func TestPlaceFoodRerolls(t *testing.T) {
	// The first draw lands on the head, the second is free
	g, _, _, _ := newTestGame(t, 3, []step{quit}, snake.C(10, 5), snake.C(10, 5), far)

	if err := g.RunFrom(Play); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if g.Food().Cell() != far {
		t.Errorf("Expected food rerolled to %v, got %v", far, g.Food().Cell())
	}
}

func TestPlaceFoodGivesUp(t *testing.T) {
	calls := 0
	g, _, _, _ := newTestGame(t, 3, []step{quit})
	g.spawn = func(b snake.Bound, _ *rand.Rand) snake.Food {
		calls++
		return snake.FoodAt(b, snake.C(10, 5))
	}

	if err := g.RunFrom(Play); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if calls != constant.FoodPlacementRetries {
		t.Errorf("Expected %d draws, got %d", constant.FoodPlacementRetries, calls)
	}
}

func TestRandomFoodInBound(t *testing.T) {
	g, _, _, _ := newTestGame(t, 3, []step{quit})

	if err := g.RunFrom(Play); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !snake.NewBound(20, 10).Contains(g.Food().Cell()) {
		t.Errorf("Expected food inside bound, got %v", g.Food().Cell())
	}
}

func TestRunFullSession(t *testing.T) {
	steps := []step{confirm, turn(snake.Right), turn(snake.Down), turn(snake.Left), idle, confirm}
	g, _, _, sound := newTestGame(t, 5, steps, far)

	if err := g.Run(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sound.die != 1 {
		t.Errorf("Expected 1 death cue, got %d", sound.die)
	}
}

func TestRunShowError(t *testing.T) {
	g, surface, _, _ := newTestGame(t, 3, []step{confirm})
	broken := errors.New("broken pipe")
	surface.err = broken

	err := g.Run()
	if !errors.Is(err, broken) {
		t.Errorf("Expected wrapped %v, got %v", broken, err)
	}
}

func TestRunInputError(t *testing.T) {
	g, _, _, _ := newTestGame(t, 3, nil)
	bad := errors.New("read failed")
	g.source = failingSource{bad}

	err := g.Run()
	if !errors.Is(err, bad) {
		t.Errorf("Expected wrapped %v, got %v", bad, err)
	}
}

type failingSource struct{ err error }

func (f failingSource) Poll(time.Duration) (input.Intent, bool, error) {
	return input.Intent{}, false, f.err
}

func (f failingSource) Wait() (input.Intent, error) { return input.Intent{}, f.err }
