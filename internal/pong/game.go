// Package pong wires the simulation together: it owns the arena registry and
// the flow machine, runs one tick per call, and publishes a Frame.
package pong

import (
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/flow"
	"github.com/vovakirdan/tui-pong/internal/physics"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for state transitions and goals.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRecorder stores every finished match.
func WithRecorder(r ResultRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithSink subscribes s to published frames.
func WithSink(s Sink) Option {
	return func(g *Game) {
		if s != nil {
			g.sinks = append(g.sinks, s)
		}
	}
}

// Game is one hot-seat pong session. It is not safe for concurrent use.
type Game struct {
	cfg     config.PongConfig
	reg     *registry.Registry
	scene   Scene
	machine *flow.Machine
	edges   *core.EdgeTracker
	bounds  physics.Bounds

	input      core.InputFrame
	score      Score
	lastScorer registry.Side
	winner     registry.Side
	hasWinner  bool
	tick       uint64
	quit       bool

	matchID    uuid.UUID
	matchTicks uint64
	matchTime  time.Duration

	logger   *log.Logger
	recorder ResultRecorder
	sinks    []Sink
}

// New creates a game in Title with the arena already set up.
// cfg is assumed to be validated.
func New(cfg config.PongConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		reg:    registry.New(),
		edges:  core.NewEdgeTracker(),
		bounds: paddleBounds(cfg.Arena),
		input:  core.NewInputFrame(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.scene = SetupScene(g.reg, cfg.Arena, cfg.Physics.LaunchVelocity.Vec2())
	g.machine = flow.NewMachine(map[flow.State]time.Duration{
		flow.Ready: cfg.Timers.ReadyDuration(),
		flow.Goal:  cfg.Timers.GoalDuration(),
		flow.Win:   cfg.Timers.WinDuration(),
	})
	g.registerStates()
	g.machine.Start()
	return g
}

func (g *Game) registerStates() {
	g.machine.Observe(func(from, to flow.State) {
		g.logger.Debug("state", "from", from, "to", to, "score", g.score.String())
	})

	g.machine.Handle(flow.Title, flow.Hooks{
		OnEnter:  g.edges.Reset,
		OnUpdate: func(time.Duration) { g.pollTitle() },
	})
	g.machine.Handle(flow.NewGame, flow.Hooks{
		OnEnter: func() {
			g.startMatch()
			g.machine.Set(flow.Ready)
		},
	})
	g.machine.Handle(flow.Ready, flow.Hooks{
		OnEnter:  g.serve,
		OnExpire: func() flow.State { return flow.InGame },
	})
	g.machine.Handle(flow.InGame, flow.Hooks{
		OnUpdate: g.play,
		OnExit:   g.stopPaddles,
	})
	g.machine.Handle(flow.Goal, flow.Hooks{
		OnEnter: g.recordGoal,
		OnExpire: func() flow.State {
			goals := g.cfg.Arena.GoalsToWin
			if g.score.Left >= goals || g.score.Right >= goals {
				return flow.Win
			}
			return flow.Ready
		},
	})
	g.machine.Handle(flow.Win, flow.Hooks{
		OnEnter:  g.finishMatch,
		OnExpire: func() flow.State { return flow.Title },
	})
}

// Tick advances the game by one step and publishes the resulting frame.
// dt is clamped to the configured maximum frame step.
func (g *Game) Tick(dt time.Duration, in core.InputFrame) Frame {
	dt = physics.ClampStep(dt, g.cfg.Physics.MaxStep())
	g.tick++
	g.input = in

	if s := g.machine.State(); s != flow.Title {
		g.matchTicks++
		g.matchTime += dt
	}
	g.machine.Update(dt)

	f := g.Frame()
	for _, s := range g.sinks {
		s.Publish(f)
	}
	return f
}

// State returns the current flow state.
func (g *Game) State() flow.State {
	return g.machine.State()
}

// Score returns the current match score.
func (g *Game) Score() Score {
	return g.score
}

// Quit reports whether quit was requested from the title screen.
func (g *Game) Quit() bool {
	return g.quit
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// Frame builds a snapshot of the current state without advancing time.
func (g *Game) Frame() Frame {
	bodies := g.reg.All()
	views := make([]BodyView, 0, len(bodies))
	for _, b := range bodies {
		views = append(views, BodyView{
			ID:          b.ID,
			Role:        b.Role,
			Position:    b.Position,
			HalfExtents: b.HalfExtents,
		})
	}

	f := Frame{
		Tick:      g.tick,
		State:     g.machine.State(),
		Score:     g.score,
		Bodies:    views,
		Winner:    g.winner,
		HasWinner: g.hasWinner,
		Quit:      g.quit,
	}
	g.describeBanner(&f)
	return f
}

func (g *Game) describeBanner(f *Frame) {
	c := g.machine.Countdown()
	if c != nil {
		f.Countdown = CountdownView{
			Active:   true,
			Display:  c.Display(),
			Fraction: c.Fraction(),
			Scale:    1,
			Visible:  true,
		}
	}

	switch f.State {
	case flow.Title:
		f.Banner = TitleBanner
		f.Prompt = TitlePrompt
	case flow.Ready:
		f.Banner = strconv.Itoa(c.Display())
		f.Countdown.Scale = c.BannerScale()
	case flow.Goal:
		f.Banner = "GOAL"
		f.Countdown.Scale = c.GrowScale()
	case flow.Win:
		f.Banner = g.winner.String() + " player wins!"
		f.Countdown.Visible = c.BlinkVisible(g.cfg.Timers.Blink())
	}
}

// pollTitle watches start and quit. Both fire when the key is released.
func (g *Game) pollTitle() {
	start := g.edges.Released(g.input, core.ActionStart)
	quit := g.edges.Released(g.input, core.ActionQuit)
	switch {
	case quit:
		g.quit = true
		g.logger.Debug("quit requested")
	case start:
		g.machine.Set(flow.NewGame)
	}
}

func (g *Game) startMatch() {
	g.score = Score{}
	g.hasWinner = false
	g.matchID = uuid.New()
	g.matchTicks = 0
	g.matchTime = 0

	for _, side := range []registry.Side{registry.Left, registry.Right} {
		if p, ok := g.reg.Get(g.scene.Paddle(side)); ok {
			p.Position.Y = 0
			p.Velocity = core.Vec2{}
			g.update(p)
		}
	}
}

// serve puts the ball back at the centre with the launch velocity.
func (g *Game) serve() {
	if b, ok := g.reg.Get(g.scene.Ball); ok {
		b.Position = core.Vec2{}
		b.Velocity = g.cfg.Physics.LaunchVelocity.Vec2()
		g.update(b)
	}
}

// play runs the in-game pipeline: input, motion, collisions, goals.
func (g *Game) play(dt time.Duration) {
	left, right := MapPaddles(g.input, g.cfg.Physics.PaddleSpeed)
	g.setPaddleVelocity(registry.Left, left)
	g.setPaddleVelocity(registry.Right, right)

	physics.Step(g.reg, dt)
	if g.cfg.Physics.ConfinePaddles {
		physics.ConfinePaddles(g.reg, g.bounds)
	}

	events := physics.Resolve(g.reg)
	if len(events) == 0 {
		return
	}
	g.lastScorer = events[0].Scorer
	g.machine.Set(flow.Goal)
}

func (g *Game) stopPaddles() {
	g.setPaddleVelocity(registry.Left, core.Vec2{})
	g.setPaddleVelocity(registry.Right, core.Vec2{})
}

func (g *Game) setPaddleVelocity(side registry.Side, v core.Vec2) {
	if p, ok := g.reg.Get(g.scene.Paddle(side)); ok {
		p.Velocity = v
		g.update(p)
	}
}

func (g *Game) recordGoal() {
	g.score.Add(g.lastScorer)
	g.logger.Info("goal", "scorer", g.lastScorer, "score", g.score.String())
}

func (g *Game) finishMatch() {
	g.winner = registry.Left
	if g.score.Right > g.score.Left {
		g.winner = registry.Right
	}
	g.hasWinner = true
	g.logger.Info("match won", "winner", g.winner, "score", g.score.String(), "match", g.matchID)

	if g.recorder == nil {
		return
	}
	result := MatchResult{
		MatchID:  g.matchID,
		Score:    g.score,
		Winner:   g.winner,
		Ticks:    g.matchTicks,
		Duration: g.matchTime,
	}
	if err := g.recorder.SaveMatchResult(result); err != nil {
		g.logger.Warn("could not record match", "error", err)
	}
}

func (g *Game) update(b registry.Body) {
	if err := g.reg.Update(b); err != nil {
		g.logger.Error("registry update", "body", b.Role, "error", err)
	}
}
