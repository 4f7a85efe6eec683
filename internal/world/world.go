// Package world holds the immutable dataset the game plays over: servers
// with flat path-keyed file trees, scannable network hosts, easter-egg
// triggers, and the mission record. Loaded once at startup, never mutated.
package world

import (
	"fmt"
	"sort"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-hacknet/internal/storage"
)

// LocalServer is the key of the player's own machine. Sessions start
// here and disconnect returns here.
const LocalServer = "local"

type World struct {
	servers  map[string]*Server
	hosts    []*Host
	triggers map[string]*Trigger
	mission  *Mission
	tokens   []string
}

// New assembles and cross-checks a dataset. Host server references must
// resolve for every reachable host, the local server must exist, and the
// fragment token census is taken once up front.
func New(
	servers map[storage.Identifier]*Server,
	hosts map[storage.Identifier]*Host,
	triggers map[storage.Identifier]*Trigger,
	mission *Mission,
) (*World, error) {
	el := errors.NewErrorList()

	w := &World{
		servers:  make(map[string]*Server, len(servers)),
		triggers: make(map[string]*Trigger, len(triggers)),
		mission:  mission,
	}

	for id, srv := range servers {
		w.servers[id.String()] = srv
	}
	if _, ok := w.servers[LocalServer]; !ok {
		el.Add(fmt.Errorf("server %q is required", LocalServer))
	}

	for id, h := range hosts {
		if h.Reachable() {
			if _, ok := w.servers[h.Server]; !ok {
				el.Add(fmt.Errorf("host %q references unknown server %q", id, h.Server))
			}
		}
		w.hosts = append(w.hosts, h)
	}
	// Scan results are presented in a stable roster order
	sort.Slice(w.hosts, func(i, j int) bool {
		return w.hosts[i].DisplayName < w.hosts[j].DisplayName
	})

	for id, t := range triggers {
		if _, ok := w.triggers[t.Phrase]; ok {
			el.Add(fmt.Errorf("trigger %q duplicates phrase %q", id, t.Phrase))
			continue
		}
		w.triggers[t.Phrase] = t
	}

	if mission == nil {
		el.Add(fmt.Errorf("mission is required"))
	}

	if err := el.Err(); err != nil {
		return nil, err
	}

	w.tokens = w.censusTokens()

	if mission.RequiredFragments > len(w.tokens) {
		return nil, fmt.Errorf("mission requires %d fragments but the dataset only embeds %d",
			mission.RequiredFragments, len(w.tokens))
	}

	return w, nil
}

// censusTokens collects every distinct fragment token embedded anywhere
// in the dataset, in a deterministic order.
func (w *World) censusTokens() []string {
	keys := make([]string, 0, len(w.servers))
	for k := range w.servers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tokens []string
	seen := map[string]bool{}
	for _, key := range keys {
		srv := w.servers[key]

		paths := make([]string, 0, len(srv.Files))
		for p := range srv.Files {
			paths = append(paths, p)
		}
		sort.Strings(paths)

		for _, p := range paths {
			node := srv.Files[p]
			if node.IsDir() {
				continue
			}
			for _, token := range ScanFragments(node.Content()) {
				if seen[token] {
					continue
				}
				seen[token] = true
				tokens = append(tokens, token)
			}
		}
	}

	return tokens
}

// Server returns the server for key, or nil.
func (w *World) Server(key string) *Server {
	return w.servers[key]
}

// Hosts returns the scannable network roster.
func (w *World) Hosts() []*Host {
	out := make([]*Host, len(w.hosts))
	copy(out, w.hosts)
	return out
}

// HostByAddress returns the host listening at addr, or nil.
func (w *World) HostByAddress(addr string) *Host {
	for _, h := range w.hosts {
		if h.Address == addr {
			return h
		}
	}
	return nil
}

// Trigger returns the trigger for a literal phrase, or nil.
func (w *World) Trigger(phrase string) *Trigger {
	return w.triggers[phrase]
}

func (w *World) Mission() *Mission {
	return w.mission
}

// FragmentTokens returns every distinct token embedded in the dataset.
func (w *World) FragmentTokens() []string {
	out := make([]string, len(w.tokens))
	copy(out, w.tokens)
	return out
}

// RequiredFragments is the number of tokens it takes to win: the
// mission's threshold, or every token the dataset embeds.
func (w *World) RequiredFragments() int {
	if w.mission.RequiredFragments > 0 {
		return w.mission.RequiredFragments
	}
	return len(w.tokens)
}
