package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-hacknet/internal/world"
)

// State is the mutable record of one play-through. It is mutated only by
// the interpreter, and snapshotted in full after every mutation.
type State struct {
	CurrentServer  string    `json:"currentServer"`
	CurrentPath    string    `json:"currentPath"`
	KeysFound      []string  `json:"keysFound"`
	CommandHistory []string  `json:"commandHistory"`
	SessionStart   time.Time `json:"sessionStartTime"`
	CommandCount   int       `json:"commandCount"`
	IsWin          bool      `json:"isWin"`
	CompletionMs   int64     `json:"completionTime,omitempty"`
	Prompt         string    `json:"prompt"`
	Username       string    `json:"username"`
}

func NewState(now time.Time) *State {
	return &State{
		CurrentServer: world.LocalServer,
		CurrentPath:   world.Home,
		SessionStart:  now,
		Prompt:        PromptFor("", world.LocalServer),
	}
}

// PromptFor derives the display prompt. Remote servers show the server
// key; the local terminal shows the username, or "guest" before one is
// set.
func PromptFor(username, serverKey string) string {
	who := serverKey
	if serverKey == world.LocalServer {
		who = username
		if who == "" {
			who = "guest"
		}
	}
	return fmt.Sprintf("%s@hacknet:~$", who)
}

func (s *State) Validate() error {
	if s.CommandCount < 0 {
		return fmt.Errorf("command count must not be negative")
	}
	if s.CurrentServer == "" {
		return fmt.Errorf("current server must be set")
	}
	if s.CurrentPath == "" {
		return fmt.Errorf("current path must be set")
	}
	return nil
}

// Normalize forces a restored snapshot back inside the world's
// invariants: an unknown server falls back to local, a path that no
// longer names a directory falls back to home, and tokens the dataset
// does not embed are dropped. A corrupted save degrades instead of
// wedging the session.
func (s *State) Normalize(w *world.World, now time.Time) {
	srv := w.Server(s.CurrentServer)
	if srv == nil {
		s.CurrentServer = world.LocalServer
		s.CurrentPath = world.Home
		srv = w.Server(world.LocalServer)
	}

	if s.CurrentPath != world.Home {
		node, ok := srv.Files[s.CurrentPath]
		if !ok || !node.IsDir() {
			s.CurrentPath = world.Home
		}
	}

	known := map[string]bool{}
	for _, token := range w.FragmentTokens() {
		known[token] = true
	}
	var keys []string
	seen := map[string]bool{}
	for _, k := range s.KeysFound {
		if known[k] && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	s.KeysFound = keys

	if s.SessionStart.IsZero() {
		s.SessionStart = now
	}
	if s.CommandCount < len(s.CommandHistory) {
		s.CommandCount = len(s.CommandHistory)
	}

	s.Prompt = PromptFor(s.Username, s.CurrentServer)
}

// HasKey reports whether token has already been collected.
func (s *State) HasKey(token string) bool {
	for _, k := range s.KeysFound {
		if k == token {
			return true
		}
	}
	return false
}

// AddKey collects token, preserving insertion order and rejecting
// duplicates. It reports whether the token was new.
func (s *State) AddKey(token string) bool {
	if s.HasKey(token) {
		return false
	}
	s.KeysFound = append(s.KeysFound, token)
	return true
}
