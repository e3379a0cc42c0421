// Package bricker implements the brick breaker game around the brick-effect
// engine in package bricks.
package bricker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/bricker/internal/bricks"
	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar     = '='
	BallChar       = '●'
	PuckChar       = '•'
	HeartChar      = '♥'
	EmptyHeartChar = '♡'
	BrickChar      = '█'
	WallChar       = '│'
	BorderHoriz    = '─'
)

// GameState constants
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Every brick cleared
	StatePaused   = "paused"   // Game paused
)

// serveDelayTicks is the pause after a lost ball before the next serve.
const serveDelayTicks = 60

// chaosBehaviors is how many strategies one brick may combine in chaos mode.
const chaosBehaviors = 3

// rowColors cycles through brick rows when strategies are hidden.
var rowColors = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen,
	core.ColorCyan, core.ColorBlue, core.ColorMagenta,
}

// KindColor returns the reveal-mode color of a strategy kind.
func KindColor(k bricks.Kind) core.Color {
	switch k {
	case bricks.KindPucks:
		return core.ColorCyan
	case bricks.KindExtraPaddle:
		return core.ColorBlue
	case bricks.KindExplosion:
		return core.ColorOrange
	case bricks.KindNewLife:
		return core.ColorRed
	case bricks.KindDouble:
		return core.ColorMagenta
	default:
		return core.ColorWhite
	}
}

var (
	// configPath stores the custom config path set via CLI
	configPath string
	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset
	// boardRows and boardCols override the configured grid when positive
	boardRows, boardCols int

	logger               = log.New(io.Discard)
	sounds bricks.Sounds = bricks.Silent{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetBoard overrides the configured brick grid. Zero keeps the config value.
func SetBoard(rows, cols int) {
	boardRows, boardCols = rows, cols
}

// SetLogger sets the logger used by games and their brick engines.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetSounds sets the sound bank used for effects.
func SetSounds(s bricks.Sounds) {
	if s == nil {
		s = bricks.Silent{}
	}
	sounds = s
}

// contact is a ball touching a tile, found during detection and delivered
// after every ball has moved.
type contact struct {
	tile *bricks.Tile
	ball *Ball
	side CollisionSide
}

// Game implements the bricker game logic.
type Game struct {
	chaos bool

	// Engine state, rebuilt on Reset
	objects  *Objects
	counters *bricks.Counters
	env      *bricks.Env
	factory  *bricks.Factory

	paddle *Paddle
	ball   *Ball // Main ball; pucks live only in objects
	blop   bricks.Sound

	state       string
	tickCount   int
	serveDelay  int
	totalBricks int

	runtime    core.RuntimeConfig
	cfg        config.BrickerConfig
	difficulty *config.DifficultyManager
	layout     Layout
	behaviors  int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	// strategyFor replaces the factory when set; tests use it to lay out
	// known boards.
	strategyFor func(env *bricks.Env, row, col int) bricks.Strategy
}

// New creates a game using the configured behaviors_allowed.
func New() *Game {
	return &Game{}
}

// NewChaos creates a game whose bricks may combine up to three strategies.
func NewChaos() *Game {
	return &Game{chaos: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.chaos {
		return "bricker_chaos"
	}
	return "bricker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.chaos {
		return "Bricker (Chaos)"
	}
	return "Bricker"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBricker(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultBrickerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBrickerPreset(&cfg, difficultyPreset)
	}
	if boardRows > 0 {
		cfg.Board.Rows = boardRows
	}
	if boardCols > 0 {
		cfg.Board.Cols = boardCols
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultBrickerConfig()
	}
	g.cfg = cfg

	g.behaviors = cfg.Board.BehaviorsAllowed
	if g.chaos {
		g.behaviors = chaosBehaviors
	}
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW, g.minScreenH = MinSize(cfg.Board.Rows, cfg.Board.Cols)
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	g.layout = NewLayout(runtime.ScreenW, runtime.ScreenH, cfg.Board.Rows, cfg.Board.Cols)

	g.state = StateServe
	g.tickCount = 0
	g.serveDelay = 0

	bank := sounds
	if !cfg.Sound.Enabled {
		bank = bricks.Silent{}
	}
	g.blop = bank.Sound(cfg.Sound.Blop)

	g.buildLevel(bank)
}

// buildLevel creates the paddle, ball, HUD widgets and every brick.
func (g *Game) buildLevel(bank bricks.Sounds) {
	g.objects = NewObjects()
	g.counters = bricks.NewCounters(g.cfg.Gameplay.Lives, g.cfg.Gameplay.MaxLives)

	g.paddle = &Paddle{
		X:     ToFixed(g.layout.Field.X + (g.layout.Field.W-g.cfg.Paddle.Width)/2),
		Y:     g.layout.PaddleY,
		Width: g.cfg.Paddle.Width,
	}
	g.objects.Add(g.paddle, bricks.LayerDefault)
	g.ball = &Ball{Stuck: true}
	g.stickBall()
	g.objects.Add(g.ball, bricks.LayerDefault)

	hearts := &LifeHearts{X: g.runtime.ScreenW - g.counters.Lives.Max() - 4, Y: 0, lives: g.counters.Lives}
	g.objects.Add(hearts, bricks.LayerUI)
	g.objects.Add(&LifeNumber{X: hearts.X + hearts.lives.Max() + 1, Y: 0, lives: g.counters.Lives}, bricks.LayerUI)

	env := bricks.NewEnv(
		g.objects,
		bricks.NewGrid(g.cfg.Board.Rows, g.cfg.Board.Cols),
		g.counters,
		spawner{g: g},
		bricks.NewRand(g.runtime.Seed),
	)
	env.Sounds = bank
	env.Log = logger.With("game", g.ID())
	env.Field = g.layout.Field
	env.PuckSpeed = g.puckSpeed().Float()
	env.ExplosionSound = g.cfg.Sound.Explosion
	g.env = env
	g.factory = bricks.NewFactory(env)

	pick := func(int, int) bricks.Strategy {
		return g.factory.Strategy(g.behaviors)
	}
	if g.strategyFor != nil {
		pick = func(row, col int) bricks.Strategy {
			return g.strategyFor(env, row, col)
		}
	}
	env.Populate(g.layout.Bounds, pick)
	g.totalBricks = g.counters.Bricks.Value()

	logger.Info("level built",
		"game", g.ID(),
		"rows", g.cfg.Board.Rows,
		"cols", g.cfg.Board.Cols,
		"behaviors", g.behaviors,
		"bricks", g.totalBricks,
		"seed", g.runtime.Seed,
	)
}

// stickBall puts the main ball on top of the paddle.
func (g *Game) stickBall() {
	g.ball.Stuck = true
	g.ball.VX, g.ball.VY = 0, 0
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = ToFixed(g.paddle.Y - 1)
}

// ballSpeed returns the main ball speed for the current difficulty.
func (g *Game) ballSpeed() Fixed {
	base := float64(g.cfg.Physics.BallSpeed)
	return Fixed(g.difficulty.Speed(base, g.score(), g.tickCount))
}

// puckSpeed returns the puck speed for the current difficulty. It scales with
// the same factor as ballSpeed, so pucks stay strictly faster than the ball.
func (g *Game) puckSpeed() Fixed {
	base := float64(g.cfg.Physics.PuckSpeed)
	return Fixed(g.difficulty.Speed(base, g.score(), g.tickCount))
}

// speedFor returns the speed a paddle bounce gives ball.
func (g *Game) speedFor(ball *Ball) Fixed {
	if ball.Puck {
		return g.puckSpeed()
	}
	return g.ballSpeed()
}

// launchBall sends the stuck main ball upward.
func (g *Game) launchBall() {
	speed := g.ballSpeed()
	g.ball.Stuck = false
	g.ball.VX = speed / 4
	g.ball.VY = -vertical(g.ball.VX, speed, false)
	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.serveDelay > 0 {
		g.serveDelay--
		return core.StepResult{State: g.State()}
	}

	g.updatePaddles(in)
	g.updateHearts()

	if g.state == StateServe {
		g.stickBall()
		if in.Has(core.ActionLaunch) {
			g.launchBall()
		}
	}

	g.deliver(g.updateBalls())

	if g.counters.Bricks.Value() == 0 && g.state != StateGameOver {
		g.state = StateWin
		logger.Info("board cleared", "game", g.ID(), "score", g.score(), "ticks", g.tickCount)
	}

	return core.StepResult{State: g.State()}
}

// updatePaddles moves the main and extra paddles together.
func (g *Game) updatePaddles(in core.InputFrame) {
	var dx Fixed
	speed := Fixed(g.cfg.Physics.PaddleSpeed)
	if in.Has(core.ActionLeft) {
		dx -= speed
	}
	if in.Has(core.ActionRight) {
		dx += speed
	}
	if dx == 0 {
		return
	}

	g.paddle.Move(dx, g.layout.Field)
	for _, e := range g.objects.Entities(bricks.LayerDefault) {
		if p, ok := e.(*ExtraPaddle); ok {
			p.Move(dx, g.layout.Field)
		}
	}
}

// updateHearts drops hearts and offers each to every paddle it touches.
// Hearts decide for themselves which paddle may collect them.
func (g *Game) updateHearts() {
	for _, e := range g.objects.Entities(bricks.LayerDefault) {
		h, ok := e.(*Heart)
		if !ok {
			continue
		}
		h.Fall(g.layout.Field)
		if !g.objects.Contains(h, bricks.LayerDefault) {
			continue
		}
		for _, p := range g.paddles() {
			covers := p.paddle.Covers(h.X, h.Y.ToCell())
			if h.touch(p.entity, covers) && p.extra != nil {
				p.extra.Collide(h)
				logger.Debug("extra paddle hit by heart", "hits_left", p.extra.HitsLeft())
			}
			if covers {
				h.Collide(p.entity)
			}
		}
	}
}

// paddleRef pairs a paddle's geometry with the entity collisions report.
type paddleRef struct {
	paddle *Paddle
	entity bricks.Entity
	extra  *ExtraPaddle
}

func (g *Game) paddles() []paddleRef {
	refs := []paddleRef{{paddle: g.paddle, entity: g.paddle}}
	for _, e := range g.objects.Entities(bricks.LayerDefault) {
		if p, ok := e.(*ExtraPaddle); ok {
			refs = append(refs, paddleRef{paddle: &p.Paddle, entity: p, extra: p})
		}
	}
	return refs
}

// updateBalls moves every ball and bounces it off walls, paddles and tiles.
// Tile contacts are returned rather than delivered so that two balls hitting
// the same tile in one tick both reach it.
func (g *Game) updateBalls() []contact {
	var contacts []contact
	puckSpeed := g.puckSpeed()
	g.env.PuckSpeed = puckSpeed.Float()

	for _, e := range g.objects.Entities(bricks.LayerDefault) {
		ball, ok := e.(*Ball)
		if !ok || ball.Stuck {
			continue
		}

		if ball.Puck {
			ball.Retune(puckSpeed)
		}
		ball.Move()

		side, fellOff := CheckWallCollision(ball, g.layout.Field)
		if fellOff {
			g.objects.Remove(ball, bricks.LayerDefault)
			if ball.Puck {
				continue
			}
			g.loseBall()
			continue
		}
		if side != CollisionNone {
			BounceOffWall(ball, side)
			g.blop.Play()
		}

		if g.bouncePaddles(ball, g.speedFor(ball)) {
			g.blop.Play()
			continue
		}

		if tile, side := CheckTileCollision(ball, g.env.Grid, g.layout); tile != nil {
			contacts = append(contacts, contact{tile: tile, ball: ball, side: side})
			ApplyCollisionBounce(ball, side)
			g.blop.Play()
		}
	}
	return contacts
}

// bouncePaddles bounces ball off the first paddle it meets. Extra paddles
// count the hit.
func (g *Game) bouncePaddles(ball *Ball, speed Fixed) bool {
	for _, p := range g.paddles() {
		if !CheckPaddleCollision(ball, p.paddle, speed) {
			continue
		}
		if p.extra != nil {
			p.extra.Collide(ball)
			logger.Debug("extra paddle hit", "hits_left", p.extra.HitsLeft())
		}
		return true
	}
	return false
}

// deliver hands every detected contact to its tile.
func (g *Game) deliver(contacts []contact) {
	for _, c := range contacts {
		c.tile.Collide(c.ball, &bricks.Collision{Normal: c.side.Normal()})
	}
}

// loseBall handles the main ball leaving the field.
func (g *Game) loseBall() {
	g.counters.Lives.Decrement()
	lives := g.counters.Lives.Value()
	logger.Info("ball lost", "game", g.ID(), "lives", lives)

	if lives <= 0 {
		g.state = StateGameOver
		logger.Info("game over", "game", g.ID(), "score", g.score())
		return
	}

	g.stickBall()
	g.objects.Add(g.ball, bricks.LayerDefault)
	g.state = StateServe
	g.serveDelay = serveDelayTicks
}

// score is the number of bricks removed times the brick value.
func (g *Game) score() int {
	if g.counters == nil {
		return 0
	}
	return (g.totalBricks - g.counters.Bricks.Value()) * g.cfg.Gameplay.BrickPoints
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderWalls(dst)
	g.renderTiles(dst)
	g.renderObjects(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, the bricks left and the life widgets.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score()))
	dst.DrawTextCentered(0, fmt.Sprintf("Bricks: %d/%d", g.counters.Bricks.Value(), g.totalBricks))

	for _, e := range g.objects.Entities(bricks.LayerUI) {
		if w, ok := e.(widget); ok {
			w.Draw(dst)
		}
	}

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderWalls draws the side walls.
func (g *Game) renderWalls(dst *core.Screen) {
	f := g.layout.Field
	for y := f.Y; y < f.Bottom(); y++ {
		dst.SetColored(f.X-1, y, WallChar, core.ColorMagenta)
		dst.SetColored(f.Right(), y, WallChar, core.ColorMagenta)
	}
}

// renderTiles draws every live brick.
func (g *Game) renderTiles(dst *core.Screen) {
	for _, e := range g.objects.Entities(bricks.LayerStatic) {
		tile, ok := e.(*bricks.Tile)
		if !ok {
			continue
		}
		color := rowColors[tile.Row()%len(rowColors)]
		if g.cfg.Gameplay.Reveal {
			color = KindColor(tile.Strategy().Kind())
		}

		b := tile.Bounds()
		w := b.W
		if w >= 3 {
			w-- // gap between neighbours
		}
		for dx := 0; dx < w; dx++ {
			dst.SetColored(b.X+dx, b.Y, BrickChar, color)
		}
	}
}

// renderObjects draws paddles, balls, pucks and hearts.
func (g *Game) renderObjects(dst *core.Screen) {
	for _, e := range g.objects.Entities(bricks.LayerDefault) {
		switch o := e.(type) {
		case *Paddle:
			dst.DrawHLine(o.CellX(), o.Y, o.Width, PaddleChar)
		case *ExtraPaddle:
			for i := 0; i < o.Width; i++ {
				dst.SetColored(o.CellX()+i, o.Y, PaddleChar, core.ColorCyan)
			}
		case *Ball:
			if o.Puck {
				dst.SetColored(o.CellX(), o.CellY(), PuckChar, core.ColorYellow)
			} else {
				dst.Set(o.CellX(), o.CellY(), BallChar)
			}
		case *Heart:
			dst.SetColored(o.X.ToCell(), o.Y.ToCell(), HeartChar, core.ColorRed)
		}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score()))
	case StateWin:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score()))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.counters.Lives.Value()
}

// Bricks returns the bricks still standing.
func (g *Game) Bricks() int {
	return g.counters.Bricks.Value()
}

// Register the games with the registry
func init() {
	registry.Register("bricker", func() registry.Game {
		return New()
	})
	registry.Register("bricker_chaos", func() registry.Game {
		return NewChaos()
	})
}
