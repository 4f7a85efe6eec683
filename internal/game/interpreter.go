// Package game implements the terminal game itself: the session state,
// the append-only output log, and the command interpreter that ties them
// to the world dataset.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-hacknet/internal/leaderboard"
	"github.com/pixil98/go-hacknet/internal/world"
)

// BroadcastSubject carries win announcements to every connected session.
const BroadcastSubject = "hacknet.broadcast"

// MaxUsernameLen caps handles at the leaderboard column width.
const MaxUsernameLen = 15

const politeClearPhrase = "pls clear"

const (
	scanDelay       = 2 * time.Second
	connectDelay    = 1500 * time.Millisecond
	ejectDelay      = time.Second
	disconnectDelay = time.Second
)

// Publisher fans session events out to other parts of the system.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Snapshotter persists the full session state across reconnects.
type Snapshotter interface {
	Load() (*State, bool, error)
	Save(*State) error
	Clear() error
}

// Scoreboard is the leaderboard service as the interpreter sees it.
type Scoreboard interface {
	Top(ctx context.Context) ([]leaderboard.Entry, error)
	Submit(ctx context.Context, entry leaderboard.Entry) (*leaderboard.Entry, error)
}

type handlerFunc func(ctx context.Context, cmd string, args []string) (Result, error)

// Interpreter parses command lines, mutates the session state, and
// narrates into the output log. One interpreter serves one session; all
// entry points serialize on its mutex, including deferred continuations.
type Interpreter struct {
	mu    sync.Mutex
	world *world.World
	state *State
	log   *Log

	snaps Snapshotter
	board Scoreboard
	pub   Publisher
	sched Scheduler
	clock func() time.Time

	session string

	// gen is bumped on reset so continuations scheduled against an
	// abandoned session detect staleness and no-op.
	gen            int
	pendingDecrypt int

	handlers map[string]handlerFunc
}

type Option func(*Interpreter)

func WithSnapshots(s Snapshotter) Option {
	return func(i *Interpreter) { i.snaps = s }
}

func WithScoreboard(b Scoreboard) Option {
	return func(i *Interpreter) { i.board = b }
}

func WithPublisher(p Publisher) Option {
	return func(i *Interpreter) { i.pub = p }
}

func WithScheduler(s Scheduler) Option {
	return func(i *Interpreter) { i.sched = s }
}

func WithClock(fn func() time.Time) Option {
	return func(i *Interpreter) { i.clock = fn }
}

func WithSessionID(id string) Option {
	return func(i *Interpreter) { i.session = id }
}

func NewInterpreter(w *world.World, opts ...Option) *Interpreter {
	i := &Interpreter{
		world:          w,
		log:            NewLog(),
		sched:          timerScheduler{},
		clock:          time.Now,
		session:        uuid.NewString(),
		pendingDecrypt: -1,
	}

	for _, opt := range opts {
		opt(i)
	}

	i.state = NewState(i.clock())

	i.handlers = map[string]handlerFunc{
		"help":        i.handleHelp,
		"scan":        i.handleScan,
		"connect":     i.handleConnect,
		"ls":          i.handleLs,
		"cd":          i.handleCd,
		"cat":         i.handleCat,
		"decrypt":     i.handleDecrypt,
		"sudo":        i.handleSudo,
		"clear":       i.handleClear,
		"eject":       i.handleEject,
		"neo":         i.handleNeo,
		"rickroll":    i.handleRickroll,
		"backdoor":    i.handleBackdoor,
		"open":        i.handleOpen,
		"why":         i.handleWhy,
		"leaderboard": i.handleLeaderboard,
		"disconnect":  i.handleDisconnect,
	}

	return i
}

// Boot restores a prior snapshot if one exists and prints the welcome
// banner. Call once, before the first Submit.
func (i *Interpreter) Boot() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.snaps != nil {
		saved, found, err := i.snaps.Load()
		switch {
		case err != nil:
			// A corrupt save falls back to a fresh session
			slog.Warn("could not restore session snapshot", "session", i.session, "error", err)
		case found:
			saved.Normalize(i.world, i.clock())
			i.state = saved
			i.append(Line{
				Text:  fmt.Sprintf("> Session restored from %s", saved.SessionStart.Format("15:04:05")),
				Style: StyleInfo,
			})
		}
	}

	i.welcome()
}

// Submit interprets one raw command line. It never returns an error:
// every failure is narrated into the log and reported via Result.OK.
func (i *Interpreter) Submit(ctx context.Context, raw string) Result {
	i.mu.Lock()
	defer i.mu.Unlock()

	// The polite phrase is matched case-sensitively against the raw
	// trimmed line, before any other normalization, and does not count
	// as a command.
	trimmed := strings.TrimSpace(raw)
	if trimmed == politeClearPhrase {
		i.log.Clear()
		return Result{OK: true}
	}

	cmd := strings.ToLower(trimmed)
	tokens := strings.Split(cmd, " ")
	verb := tokens[0]

	i.state.CommandCount++
	i.state.CommandHistory = append(i.state.CommandHistory, raw)
	i.persist()

	i.append(Line{Text: fmt.Sprintf("%s %s", i.state.Prompt, raw), Style: StyleSuccess, Echo: true})

	handler, ok := i.handlers[verb]
	if !ok {
		i.append(Line{
			Text:  fmt.Sprintf("ERROR: Unknown command '%s'. Type 'help' for available commands.", verb),
			Style: StyleError,
		})
		return Result{OK: false}
	}

	res, err := handler(ctx, cmd, tokens[1:])
	if err != nil {
		var userErr *UserError
		if errors.As(err, &userErr) {
			i.append(Line{Text: userErr.Message, Style: StyleError})
			for _, hint := range userErr.Hints {
				i.append(Line{Text: hint})
			}
		} else {
			slog.Warn("command failed", "session", i.session, "verb", verb, "error", err)
			i.append(Line{Text: "ERROR: Command failed unexpectedly", Style: StyleError})
		}
		return Result{OK: false}
	}

	return res
}

// Reset discards the session and starts over: new state, empty log,
// deleted snapshot. Pending continuations from the old session become
// no-ops.
func (i *Interpreter) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.gen++
	i.pendingDecrypt = -1

	if i.snaps != nil {
		if err := i.snaps.Clear(); err != nil {
			slog.Warn("could not clear session snapshot", "session", i.session, "error", err)
		}
	}

	i.state = NewState(i.clock())
	i.log.Clear()
	i.welcome()
}

// SetUsername records the player's handle and rebuilds the prompt.
func (i *Interpreter) SetUsername(name string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > MaxUsernameLen {
		name = string(runes[:MaxUsernameLen])
	}

	i.state.Username = name
	i.state.Prompt = PromptFor(name, i.state.CurrentServer)
	i.persist()
}

// State returns a copy of the current session state.
func (i *Interpreter) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()

	s := *i.state
	s.KeysFound = append([]string(nil), i.state.KeysFound...)
	s.CommandHistory = append([]string(nil), i.state.CommandHistory...)
	return s
}

func (i *Interpreter) Log() *Log {
	return i.log
}

func (i *Interpreter) SessionID() string {
	return i.session
}

// Prompt returns the current display prompt.
func (i *Interpreter) Prompt() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state.Prompt
}

func (i *Interpreter) append(line Line) {
	i.log.Append(line)
}

// later defers fn by d. The continuation runs under the interpreter
// lock and is dropped entirely if the session has been reset since it
// was scheduled.
func (i *Interpreter) later(d time.Duration, fn func()) {
	gen := i.gen
	i.sched.After(d, func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		if i.gen != gen {
			return
		}
		fn()
	})
}

// persist snapshots the full state. Persistence trouble never interrupts
// play; it only gets logged.
func (i *Interpreter) persist() {
	if i.snaps == nil {
		return
	}
	if err := i.snaps.Save(i.state); err != nil {
		slog.Warn("could not save session snapshot", "session", i.session, "error", err)
	}
}

func (i *Interpreter) welcome() {
	mission := strings.TrimSuffix(i.world.Mission().Artifact, ".enc")

	for _, text := range []string{
		"╔══════════════════════════════════════════════════════════════════╗",
		"║  WELCOME TO THE UNDERGROUND NETWORK ACCESS TERMINAL            ║",
		"║  WARNING: UNAUTHORIZED ACCESS IS MONITORED AND PROSECUTED     ║",
		"╚══════════════════════════════════════════════════════════════════╝",
	} {
		i.append(Line{Text: text, Style: StyleBanner})
	}

	i.append(Line{Text: "> System initialization complete.", Style: StyleInfo})
	i.append(Line{Text: "> Type 'help' for available commands.", Style: StyleInfo})
	i.append(Line{Text: fmt.Sprintf("> Your mission: Retrieve %s from the secure servers.", mission), Style: StyleInfo})
	i.append(Line{})
}
