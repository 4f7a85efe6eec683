package player

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pixil98/go-hacknet/internal/display"
	"github.com/pixil98/go-hacknet/internal/game"
	"github.com/pixil98/go-hacknet/internal/world"
)

// decryptPlayout is how long the decryption animation runs before the
// win lands. The interpreter only marks the decrypt pending; the
// session owns the pacing.
const decryptPlayout = 5 * time.Second

var styleCodes = map[game.Style]string{
	game.StyleInfo:    "\x1b[33m",
	game.StyleError:   "\x1b[31m",
	game.StyleSuccess: "\x1b[32m",
	game.StyleAccent:  "\x1b[36m",
	game.StyleBanner:  "\x1b[1;32m",
}

// Session drives one connected terminal: it streams the interpreter's
// log to the connection, feeds input lines back in, and plays out
// effects that need pacing.
type Session struct {
	conn     io.ReadWriter
	interp   *game.Interpreter
	world    *world.World
	broker   Broker
	username string

	mu         sync.Mutex
	lastActive time.Time

	done      chan struct{}
	closeOnce sync.Once
}

func newSession(conn io.ReadWriter, interp *game.Interpreter, w *world.World, broker Broker, username string) *Session {
	return &Session{
		conn:       conn,
		interp:     interp,
		world:      w,
		broker:     broker,
		username:   username,
		lastActive: time.Now(),
		done:       make(chan struct{}),
	}
}

func (s *Session) Id() string {
	return s.interp.SessionID()
}

// close unblocks Play. Safe to call more than once.
func (s *Session) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Session) idleFor() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastActive)
}

func (s *Session) markActive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
}

func (s *Session) Play(ctx context.Context) error {
	// Stream the log before booting so the welcome banner lands on the wire
	unwatch := s.interp.Log().Watch(func(ev game.LogEvent) {
		switch ev.Kind {
		case game.EventClear:
			s.write(display.ClearScreen)
		case game.EventAppend:
			// The submitted command is already on the player's screen
			if ev.Line.Echo {
				return
			}
			s.writeLine(renderLine(ev.Line))
		}
	})
	defer unwatch()

	if s.broker != nil {
		unsub, err := s.broker.Subscribe(game.BroadcastSubject, func(data []byte) {
			s.writeLine("\n" + string(data))
			s.prompt()
		})
		if err != nil {
			slog.Warn("subscribing to broadcasts", "session", s.Id(), "error", err)
		} else {
			defer unsub()
		}
	}

	s.interp.Boot()
	s.interp.SetUsername(s.username)
	s.prompt()

	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.conn)
		for scanner.Scan() {
			inputChan <- scanner.Text()
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-s.done:
			s.writeLine("\nDisconnected for inactivity.")
			return nil

		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			s.markActive()

			line = strings.TrimSpace(line)
			switch {
			case line == "":

			case strings.EqualFold(line, "exit"), strings.EqualFold(line, "quit"):
				s.writeLine("Connection closed.")
				return nil

			case strings.EqualFold(line, "reset"):
				s.interp.Reset()
				s.interp.SetUsername(s.username)

			default:
				res := s.interp.Submit(ctx, line)
				s.playEffect(res)
			}

			s.prompt()
		}
	}
}

// playEffect handles the effects that need more than a log line.
func (s *Session) playEffect(res game.Result) {
	if res.Message != "" {
		s.writeLine(renderLine(game.Line{Text: res.Message, Style: game.StyleAccent}))
	}

	switch res.Effect {
	case game.EffectDecrypt:
		time.AfterFunc(decryptPlayout, func() {
			if won := s.interp.CompleteDecryption(context.Background()); won.OK {
				s.prompt()
			}
		})

	case game.EffectRickroll:
		if t := s.world.Trigger("rickroll"); t != nil {
			for _, line := range t.Art {
				s.writeLine(renderLine(game.Line{Text: line, Style: game.StyleBanner}))
			}
		}
	}
}

func (s *Session) prompt() {
	s.write("\n" + s.interp.Prompt() + " ")
}

func (s *Session) write(text string) {
	if _, err := s.conn.Write([]byte(text)); err != nil {
		slog.Warn("writing to session", "session", s.Id(), "error", err)
	}
}

func (s *Session) writeLine(text string) {
	s.write(display.Wrap(text) + "\n")
}

func renderLine(line game.Line) string {
	code := styleCodes[line.Style]
	if code == "" {
		return line.Text
	}
	return code + line.Text + "\x1b[0m"
}
