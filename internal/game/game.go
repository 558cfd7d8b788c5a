package game

import (
	"fmt"

	"dungeon-roguelike/internal/component"
	"dungeon-roguelike/internal/config"
	"dungeon-roguelike/internal/ecs"
	"dungeon-roguelike/internal/gamemap"
	"dungeon-roguelike/internal/logger"
	"dungeon-roguelike/internal/render"
	"dungeon-roguelike/internal/rng"
	"dungeon-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// maxMessages bounds the message log kept in memory.
const maxMessages = 50

// Game is the top-level orchestrator for one terminal.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	world    *ecs.World
	gmap     *gamemap.GameMap
	playerID ecs.EntityID
	rng      *rng.Generator
	level    config.LevelConfig
	depth    int
	messages []string
	log      *logrus.Entry
}

// New creates a Game drawing to an initialised screen and generates the
// first level. The caller keeps ownership of screen until Run returns.
func New(screen tcell.Screen, level config.LevelConfig) *Game {
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, render.DefaultTheme),
		rng:      rng.New(level.Seed),
		level:    level,
	}
	g.log = logger.Log.WithField("seed", g.rng.Seed())
	g.loadLevel()
	return g
}

// loadLevel generates a fresh map from the next part of the random stream
// and places the player in it.
func (g *Game) loadLevel() {
	g.depth++
	g.gmap = newLevel(g.level, g.rng)
	g.world = ecs.NewWorld()

	px, py := startPosition(g.gmap)
	g.playerID = g.world.Spawn(
		component.Position{X: px, Y: py},
		component.Renderable{
			Glyph:       "@",
			FGColor:     tcell.ColorYellow,
			BGColor:     tcell.ColorBlack,
			RenderOrder: 10,
		},
		component.TagPlayer{},
	)

	g.log.WithFields(logrus.Fields{
		"depth": g.depth,
		"rooms": len(g.gmap.Rooms),
		"start": fmt.Sprintf("%d,%d", px, py),
	}).Info("level loaded")
	g.addMessage(fmt.Sprintf("Level %d: %d rooms.", g.depth, len(g.gmap.Rooms)))
}

// Run is the main loop. It returns when the player quits or the screen
// stops delivering events.
func (g *Game) Run() {
	defer g.screen.Fini()
	g.addMessage("Use hjklyubn or arrow keys to move. r for a new level, q to quit.")

	for {
		g.draw()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.renderer.Resize()
			g.screen.Sync()
		case *tcell.EventKey:
			if !g.processAction(keyToAction(ev)) {
				g.log.WithField("depth", g.depth).Info("player quit")
				return
			}
		}
	}
}

func (g *Game) draw() {
	pos, _ := system.PlayerPosition(g.world)
	g.renderer.Follow(pos.X, pos.Y, g.gmap)
	g.renderer.DrawFrame(g.world, g.gmap)
	status := fmt.Sprintf("Seed %d  Level %d  Rooms %d  @ %d,%d",
		g.rng.Seed(), g.depth, len(g.gmap.Rooms), pos.X, pos.Y)
	g.renderer.DrawHUD(status, g.messages)
}

// processAction applies one action and reports whether the game continues.
func (g *Game) processAction(action Action) bool {
	switch action {
	case ActionQuit:
		return false
	case ActionRegenerate:
		g.loadLevel()
	default:
		dx, dy := actionToDelta(action)
		if dx != 0 || dy != 0 {
			system.TryMove(g.world, g.gmap, g.playerID, dx, dy)
		}
	}
	g.world.Maintain()
	return true
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
