package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/snaking/constant"
	"github.com/lixenwraith/snaking/input"
	"github.com/lixenwraith/snaking/render"
)

// Splash shows the title and waits for Enter (play) or quit
func Splash(g *Game) (Screen, error) {
	w, h := g.surface.Size()
	g.surface.Clear()
	g.surface.Text(render.Centered(w, constant.SplashTitle, 1), h/2-1, constant.SplashTitle)
	g.surface.Text(render.Centered(w, constant.SplashStart, 0), h/2, constant.SplashStart)
	g.surface.Text(render.Centered(w, constant.SplashExit, 0), h/2+1, constant.SplashExit)
	if err := g.surface.Show(); err != nil {
		return nil, fmt.Errorf("failed to draw splash: %w", err)
	}

	for {
		intent, err := g.source.Wait()
		if err != nil {
			return closed(err)
		}
		switch intent.Type {
		case input.IntentQuit:
			return nil, nil
		case input.IntentConfirm:
			return Play, nil
		}
	}
}

// Play runs rounds of draw, poll, advance until the snake collides or the
// player quits.
func Play(g *Game) (Screen, error) {
	g.reset()

	for {
		if err := g.drawFrame(); err != nil {
			return nil, err
		}

		intent, _, err := g.source.Poll(g.tick)
		if err != nil {
			return closed(err)
		}
		if intent.Type == input.IntentQuit {
			log.Printf("Quit during play, length %d", g.snake.Len())
			return nil, nil
		}

		if g.step(intent.Turn()) {
			g.sound.Die()
			return Death, nil
		}
	}
}

// Death shows the death message and waits for Enter
func Death(g *Game) (Screen, error) {
	w, h := g.surface.Size()
	g.surface.Clear()
	g.surface.Text(render.Centered(w, constant.DeathMessage, 1), h/2, constant.DeathMessage)
	if err := g.surface.Show(); err != nil {
		return nil, fmt.Errorf("failed to draw death screen: %w", err)
	}

	for {
		intent, err := g.source.Wait()
		if err != nil {
			return closed(err)
		}
		if intent.Type == input.IntentConfirm || intent.Type == input.IntentQuit {
			return nil, nil
		}
	}
}

// closed ends the screen chain cleanly when input is gone and wraps anything else
func closed(err error) (Screen, error) {
	if errors.Is(err, input.ErrClosed) {
		log.Printf("Input closed, exiting")
		return nil, nil
	}
	return nil, fmt.Errorf("failed to read input: %w", err)
}
