package world

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Server is one machine in the simulated network: a display name and a
// flat path-keyed file tree.
type Server struct {
	DisplayName string          `json:"display_name"`
	Files       map[string]Node `json:"files"`
}

func (s *Server) Validate() error {
	el := errors.NewErrorList()

	if s.DisplayName == "" {
		el.Add(fmt.Errorf("display_name is required"))
	}

	home, ok := s.Files[Home]
	if !ok {
		el.Add(fmt.Errorf("file tree must contain a home directory %q", Home))
	} else if !home.IsDir() {
		el.Add(fmt.Errorf("home must be a directory"))
	}

	for path, node := range s.Files {
		if path == "" {
			el.Add(fmt.Errorf("empty path key"))
			continue
		}
		if node.IsDir() && !IsDirPath(path) {
			el.Add(fmt.Errorf("directory key %q must end in a slash", path))
		}
		if !node.IsDir() && path != Home && strings.HasSuffix(path, "/") {
			el.Add(fmt.Errorf("file key %q must not end in a slash", path))
		}
	}

	return el.Err()
}

type HostStatus string

const (
	StatusSecure    HostStatus = "SECURE"
	StatusEncrypted HostStatus = "ENCRYPTED"
	StatusOffline   HostStatus = "OFFLINE"
)

// Host is one scannable network address.
type Host struct {
	Address     string     `json:"address"`
	DisplayName string     `json:"display_name"`
	Status      HostStatus `json:"status"`
	Server      string     `json:"server,omitempty"`
}

func (h *Host) Validate() error {
	el := errors.NewErrorList()

	if h.Address == "" {
		el.Add(fmt.Errorf("address is required"))
	}
	if h.DisplayName == "" {
		el.Add(fmt.Errorf("display_name is required"))
	}

	switch h.Status {
	case StatusSecure, StatusEncrypted, StatusOffline:
	default:
		el.Add(fmt.Errorf("unknown status %q", h.Status))
	}

	if h.Reachable() && h.Server == "" {
		el.Add(fmt.Errorf("reachable host must name a server"))
	}

	return el.Err()
}

// Reachable reports whether a connection attempt can succeed.
func (h *Host) Reachable() bool {
	return h.Status != StatusOffline
}

// TriggerLine is one narrative line printed when a trigger fires. Lines
// with a delay are printed that many milliseconds later.
type TriggerLine struct {
	Text    string `json:"text"`
	Style   string `json:"style,omitempty"`
	DelayMs int    `json:"delay_ms,omitempty"`
}

// Trigger maps a literal phrase to a named presentation effect, an
// optional result message, and the lines it prints.
type Trigger struct {
	Phrase  string        `json:"phrase"`
	Effect  string        `json:"effect"`
	Message string        `json:"message,omitempty"`
	Lines   []TriggerLine `json:"lines,omitempty"`
	Art     []string      `json:"art,omitempty"`
}

func (t *Trigger) Validate() error {
	el := errors.NewErrorList()

	if t.Phrase == "" {
		el.Add(fmt.Errorf("phrase is required"))
	}
	if t.Phrase != strings.ToLower(t.Phrase) {
		el.Add(fmt.Errorf("phrase must be lowercase"))
	}
	if t.Effect == "" {
		el.Add(fmt.Errorf("effect is required"))
	}

	return el.Err()
}

// Mission describes the win condition: the encrypted artifact, how many
// fragment tokens it takes to decrypt it, and the narrative shown on
// completion. A zero RequiredFragments means "every token in the dataset".
type Mission struct {
	Artifact          string   `json:"artifact"`
	Aliases           []string `json:"aliases,omitempty"`
	RequiredFragments int      `json:"required_fragments,omitempty"`
	Hint              string   `json:"hint,omitempty"`
	WinMessage        []string `json:"win_message"`
}

func (m *Mission) Validate() error {
	el := errors.NewErrorList()

	if m.Artifact == "" {
		el.Add(fmt.Errorf("artifact is required"))
	}
	if m.RequiredFragments < 0 {
		el.Add(fmt.Errorf("required_fragments must not be negative"))
	}
	if len(m.WinMessage) == 0 {
		el.Add(fmt.Errorf("win_message is required"))
	}

	return el.Err()
}

// Matches reports whether name refers to the artifact.
func (m *Mission) Matches(name string) bool {
	if name == m.Artifact {
		return true
	}
	for _, alias := range m.Aliases {
		if name == alias {
			return true
		}
	}
	return false
}
