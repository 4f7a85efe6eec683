package game

import "sync"

// Style classifies a terminal line so consumers (renderers, audio cues)
// can react to what a line is instead of sniffing its text.
type Style string

const (
	StylePlain   Style = ""
	StyleInfo    Style = "info"
	StyleError   Style = "error"
	StyleSuccess Style = "success"
	StyleAccent  Style = "accent"
	StyleBanner  Style = "banner"
)

// Line is one rendered terminal line. Echo marks the copy of a submitted
// command that the interpreter writes back into the log.
type Line struct {
	Text  string `json:"text"`
	Style Style  `json:"style,omitempty"`
	Echo  bool   `json:"echo,omitempty"`
}

type EventKind int

const (
	EventAppend EventKind = iota
	EventClear
)

// LogEvent is delivered to watchers as the log changes.
type LogEvent struct {
	Kind EventKind
	Line Line
}

// Log is the append-only record of everything the terminal has printed
// this session. It only ever shrinks by being cleared outright.
type Log struct {
	mu       sync.Mutex
	lines    []Line
	watchers map[int]func(LogEvent)
	nextID   int
}

func NewLog() *Log {
	return &Log{watchers: map[int]func(LogEvent){}}
}

func (l *Log) Append(line Line) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, line)
	for _, fn := range l.watchers {
		fn(LogEvent{Kind: EventAppend, Line: line})
	}
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = nil
	for _, fn := range l.watchers {
		fn(LogEvent{Kind: EventClear})
	}
}

// Watch registers fn for every future log event. The returned function
// removes the watcher.
func (l *Log) Watch(fn func(LogEvent)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.watchers[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.watchers, id)
	}
}

// Lines returns a copy of the current log contents.
func (l *Log) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}
