package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"word-ring/internal/config"
	"word-ring/internal/game"
	"word-ring/internal/geom"
	"word-ring/internal/puzzle"
	"word-ring/internal/state"
)

type keyMap struct {
	Play    key.Binding
	Shuffle key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Shuffle, k.Restart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap() keyMap {
	return keyMap{
		Play: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

type LocalState struct {
	Puzzle   *puzzle.Puzzle
	Geometry geom.Geometry
	Options  state.GameOptions
	Session  *game.Session
	FPS      int

	keys   keyMap
	help   help.Model
	width  int
	height int
	err    error
}

type frameMsg time.Time

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func initialModel(cfg *config.Config) (*LocalState, error) {
	p := puzzle.Default()
	if cfg.PuzzlePath != "" {
		loaded, err := puzzle.LoadPuzzle(cfg.PuzzlePath)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &LocalState{
		Puzzle:   p,
		Geometry: geom.DefaultGeometry(),
		Options:  state.GameOptions{Seed: cfg.Seed, Measure: measureGlyph},
		FPS:      cfg.FPS,
		keys:     newKeyMap(),
		help:     help.New(),
	}
	if cfg.SkipIntro {
		if err := s.startGame(); err != nil {
			return nil, err
		}
	}
	s.syncKeys()
	return s, nil
}

// startGame leaves the start screen and initializes the first game.
func (s *LocalState) startGame() error {
	sess, err := game.NewSession(s.Puzzle, s.Geometry, s.Options)
	if err != nil {
		return err
	}
	s.Session = sess
	return nil
}

// syncKeys enables only the bindings that make sense in the current phase, so
// the help line never advertises a dead key.
func (s *LocalState) syncKeys() {
	playing := s.Session != nil
	s.keys.Play.SetEnabled(!playing)
	idle := playing && s.Session.CurrentGame.Phase() == state.Idle
	s.keys.Shuffle.SetEnabled(idle)
	s.keys.Restart.SetEnabled(idle || playing && s.Session.IsFinished())
}

func (s *LocalState) Init() tea.Cmd {
	return frameCmd(s.FPS)
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer s.syncKeys()

	switch msg := msg.(type) {
	case frameMsg:
		if s.Session != nil {
			s.Session.CurrentGame.HandleTick()
			s.Session.Update()
		}
		return s, frameCmd(s.FPS)
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keys.Play):
			if err := s.startGame(); err != nil {
				s.err = err
				return s, tea.Quit
			}
		case key.Matches(msg, s.keys.Shuffle):
			s.Session.CurrentGame.Shuffle()
		case key.Matches(msg, s.keys.Restart):
			s.Session.Restart()
		}
	case tea.MouseMsg:
		return s, s.handleMouse(msg)
	}

	return s, nil
}

func (s *LocalState) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Geometry.ScreenWidth && y < s.Geometry.ScreenHeight
}

// handleMouse bridges terminal mouse events to the game's pointer handlers.
// Buttons drawn by the frontend take the press before the game sees it.
func (s *LocalState) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if s.Session == nil {
		if msg.Action == tea.MouseActionPress && playButton(s.Geometry).contains(msg.X, msg.Y) {
			if err := s.startGame(); err != nil {
				s.err = err
				return tea.Quit
			}
		}
		return nil
	}

	g := s.Session.CurrentGame
	p := geom.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if s.Session.IsFinished() {
			if restartButton(s.Geometry).contains(msg.X, msg.Y) {
				s.Session.Restart()
			}
			return nil
		}
		if g.Phase() == state.Idle && shuffleButton(s.Geometry).contains(msg.X, msg.Y) {
			g.Shuffle()
			return nil
		}
		g.HandlePointerDown(p)
	case tea.MouseActionMotion:
		g.HandlePointerMove(p)
	case tea.MouseActionRelease:
		if !s.inBounds(msg.X, msg.Y) {
			g.HandleReleaseOutside()
			return nil
		}
		g.HandlePointerUp(p)
	}
	return nil
}

func (s *LocalState) View() string {
	g := s.Geometry
	if s.width > 0 && (s.width < g.ScreenWidth || s.height < g.ScreenHeight) {
		return palette[rejectPaint].Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", g.ScreenWidth, g.ScreenHeight, s.width, s.height))
	}

	// The last row is the help line.
	c := newCanvas(g.ScreenWidth, g.ScreenHeight-1)
	if s.Session == nil {
		renderStart(c, s.Puzzle, g)
	} else {
		renderGame(c, s.Session)
	}
	return c.String() + "\n" + s.help.View(s.keys)
}

func main() {
	env, err := config.WithDotEnv(os.LookupEnv, ".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load(os.Args[1:], env, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile, err := config.SetupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	model, err := initialModel(cfg)
	if err != nil {
		fmt.Printf("Error initializing model: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		fmt.Printf("Error starting the program: %v\n", err)
	}
	if model.err != nil {
		fmt.Printf("Error: %v\n", model.err)
	}

	if model.Session != nil {
		if model.Session.Rounds > 0 {
			fmt.Printf("Rounds solved: %d | Total score: %d\n", model.Session.Rounds, model.Session.TotalScore)
		}
		model.Session.Teardown()
	}
}
