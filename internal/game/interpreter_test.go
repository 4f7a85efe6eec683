package game

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pixil98/go-hacknet/internal/leaderboard"
	"github.com/pixil98/go-hacknet/internal/storage"
	"github.com/pixil98/go-hacknet/internal/world"
	"github.com/pixil98/go-testutil"
)

// manualScheduler collects deferred work so tests control when the
// narration lands.
type manualScheduler struct {
	fns []func()
}

func (s *manualScheduler) After(_ time.Duration, fn func()) {
	s.fns = append(s.fns, fn)
}

func (s *manualScheduler) fire() {
	fns := s.fns
	s.fns = nil
	for _, fn := range fns {
		fn()
	}
}

type fakeSnaps struct {
	saved   *State
	saves   int
	clears  int
	loadErr error
	saveErr error
}

func (f *fakeSnaps) Load() (*State, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	if f.saved == nil {
		return nil, false, nil
	}
	cp := *f.saved
	return &cp, true, nil
}

func (f *fakeSnaps) Save(s *State) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *s
	cp.KeysFound = append([]string(nil), s.KeysFound...)
	cp.CommandHistory = append([]string(nil), s.CommandHistory...)
	f.saved = &cp
	return nil
}

func (f *fakeSnaps) Clear() error {
	f.clears++
	f.saved = nil
	return nil
}

type fakeBoard struct {
	entries []leaderboard.Entry
	topErr  error
	subs    []leaderboard.Entry
	subErr  error
}

func (f *fakeBoard) Top(_ context.Context) ([]leaderboard.Entry, error) {
	if f.topErr != nil {
		return nil, f.topErr
	}
	return f.entries, nil
}

func (f *fakeBoard) Submit(_ context.Context, e leaderboard.Entry) (*leaderboard.Entry, error) {
	if f.subErr != nil {
		return nil, f.subErr
	}
	f.subs = append(f.subs, e)
	return &e, nil
}

type fakePub struct {
	subjects []string
	payloads []string
}

func (f *fakePub) Publish(subject string, data []byte) error {
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, string(data))
	return nil
}

func testWorld(t *testing.T) *world.World {
	t.Helper()

	servers := map[storage.Identifier]*world.Server{
		"local": {
			DisplayName: "LOCAL",
			Files: map[string]world.Node{
				"~":              world.DirNode("readme.txt", "docs/"),
				"readme.txt":     world.FileNode("Start by running \"scan\"."),
				"docs/":          world.DirNode("notes.txt"),
				"docs/notes.txt": world.FileNode("Nothing here."),
			},
		},
		"alpha": {
			DisplayName: "ALPHA-SERVER",
			Files: map[string]world.Node{
				"~":            world.DirNode("fragment.txt"),
				"fragment.txt": world.FileNode("Access log.\nKEY_FRAGMENT_1: ALPHA_UNLOCK_7F3A\nEnd."),
			},
		},
		"beta": {
			DisplayName: "BETA-SERVER",
			Files: map[string]world.Node{
				"~":          world.DirNode("secret.txt"),
				"secret.txt": world.FileNode("KEY_FRAGMENT_2: BETA_SECURE_9X2B"),
			},
		},
	}

	hosts := map[storage.Identifier]*world.Host{
		"alpha": {Address: "192.168.1.101", DisplayName: "ALPHA-SERVER", Status: world.StatusSecure, Server: "alpha"},
		"beta":  {Address: "192.168.1.102", DisplayName: "BETA-SERVER", Status: world.StatusEncrypted, Server: "beta"},
		"gamma": {Address: "192.168.1.103", DisplayName: "GAMMA-SERVER", Status: world.StatusOffline},
	}

	triggers := map[storage.Identifier]*world.Trigger{
		"neo": {
			Phrase:  "neo",
			Effect:  "matrix",
			Message: "Entering the Matrix...",
			Lines:   []world.TriggerLine{{Text: "Wake up, Neo...", Style: "banner"}},
		},
		"rickroll": {
			Phrase:  "rickroll",
			Effect:  "rickroll",
			Message: "Never gonna give you up...",
		},
		"sudo-dance": {
			Phrase:  "sudo dance",
			Effect:  "disco",
			Message: "DISCO MODE ACTIVATED!",
		},
		"open-ai": {
			Phrase: "open ai",
			Effect: "ai_takeover",
			Lines: []world.TriggerLine{
				{Text: "AI HAS TAKEN OVER. HUMAN OBSOLETE.", Style: "error"},
				{Text: "SYSTEM LOCKED. PLEASE RESTART.", Style: "error", DelayMs: 2000},
			},
		},
		"why-am-i-here": {
			Phrase:  "why am i here",
			Effect:  "existential",
			Message: "Reality glitching...",
			Lines:   []world.TriggerLine{{Text: "You've always been here...", Style: "error"}},
		},
	}

	mission := &world.Mission{
		Artifact:          "project-x.omega.enc",
		Aliases:           []string{"project-x.omega"},
		RequiredFragments: 2,
		Hint:              "Hint: Search ALPHA and BETA servers for key fragments",
		WinMessage:        []string{"█ ACCESS GRANTED █", "You are in."},
	}

	w, err := world.New(servers, hosts, triggers, mission)
	if err != nil {
		t.Fatalf("building world: %v", err)
	}
	return w
}

func testInterpreter(t *testing.T, opts ...Option) (*Interpreter, *manualScheduler) {
	t.Helper()

	sched := &manualScheduler{}
	opts = append([]Option{WithScheduler(sched)}, opts...)
	return NewInterpreter(testWorld(t), opts...), sched
}

func logText(i *Interpreter) string {
	var sb strings.Builder
	for _, line := range i.Log().Lines() {
		sb.WriteString(line.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestSubmitCounters(t *testing.T) {
	i, _ := testInterpreter(t)

	i.Submit(context.Background(), "help")
	i.Submit(context.Background(), "bogus")

	st := i.State()
	testutil.AssertEqual(t, "command count", st.CommandCount, 2)
	testutil.AssertEqual(t, "history length", len(st.CommandHistory), 2)
	testutil.AssertEqual(t, "history[1]", st.CommandHistory[1], "bogus")
}

func TestSubmitUnknownCommand(t *testing.T) {
	i, _ := testInterpreter(t)

	res := i.Submit(context.Background(), "frobnicate now")

	testutil.AssertEqual(t, "ok", res.OK, false)
	if !strings.Contains(logText(i), "ERROR: Unknown command 'frobnicate'.") {
		t.Errorf("missing unknown-command error, log:\n%s", logText(i))
	}
}

func TestSubmitEchoesPrompt(t *testing.T) {
	i, _ := testInterpreter(t)

	i.Submit(context.Background(), "help")

	var echo *Line
	for _, line := range i.Log().Lines() {
		if line.Echo {
			l := line
			echo = &l
			break
		}
	}
	if echo == nil {
		t.Fatal("no echo line in log")
	}
	testutil.AssertEqual(t, "echo text", echo.Text, "guest@hacknet:~$ help")
}

func TestClearPhrasing(t *testing.T) {
	tests := map[string]struct {
		input      string
		expOK      bool
		expCount   int
		expCleared bool
	}{
		"polite": {
			input:      "pls clear",
			expOK:      true,
			expCount:   0,
			expCleared: true,
		},
		"polite with padding": {
			input:      "  pls clear  ",
			expOK:      true,
			expCount:   0,
			expCleared: true,
		},
		"polite wrong case": {
			input:    "PLS CLEAR",
			expOK:    false,
			expCount: 1,
		},
		"impolite": {
			input:    "clear",
			expOK:    false,
			expCount: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i, _ := testInterpreter(t)
			i.Log().Append(Line{Text: "old output"})

			res := i.Submit(context.Background(), tt.input)

			testutil.AssertEqual(t, "ok", res.OK, tt.expOK)
			testutil.AssertEqual(t, "command count", i.State().CommandCount, tt.expCount)
			if tt.expCleared {
				testutil.AssertEqual(t, "log length", i.Log().Len(), 0)
			} else if !strings.Contains(logText(i), "ERROR: Permission denied. Maybe try asking nicely?") {
				t.Errorf("missing permission-denied error, log:\n%s", logText(i))
			}
		})
	}
}

func TestScanListsHostsAfterDelay(t *testing.T) {
	i, sched := testInterpreter(t)

	res := i.Submit(context.Background(), "scan")
	testutil.AssertEqual(t, "ok", res.OK, true)

	if strings.Contains(logText(i), "SCAN RESULTS:") {
		t.Fatal("scan results printed before the delay elapsed")
	}

	sched.fire()

	out := logText(i)
	for _, want := range []string{
		"SCAN RESULTS:",
		"192.168.1.101     - ALPHA-SERVER [SECURE]",
		"192.168.1.102     - BETA-SERVER [ENCRYPTED]",
		"192.168.1.103     - GAMMA-SERVER [OFFLINE]",
		`Use "connect <ip>" to establish connection`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("scan output missing %q, log:\n%s", want, out)
		}
	}
}

func TestConnect(t *testing.T) {
	tests := map[string]struct {
		input     string
		expOK     bool
		expServer string
		expErr    string
	}{
		"no address": {
			input:     "connect",
			expOK:     false,
			expServer: "local",
			expErr:    "ERROR: Please specify an IP address",
		},
		"unknown address": {
			input:     "connect 10.0.0.1",
			expOK:     false,
			expServer: "local",
			expErr:    "ERROR: Cannot connect to 10.0.0.1 - Server not found",
		},
		"offline host": {
			input:     "connect 192.168.1.103",
			expOK:     false,
			expServer: "local",
			expErr:    "ERROR: GAMMA-SERVER is currently offline",
		},
		"reachable host": {
			input:     "connect 192.168.1.101",
			expOK:     true,
			expServer: "alpha",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i, sched := testInterpreter(t)

			res := i.Submit(context.Background(), tt.input)
			sched.fire()

			testutil.AssertEqual(t, "ok", res.OK, tt.expOK)
			testutil.AssertEqual(t, "current server", i.State().CurrentServer, tt.expServer)
			if tt.expErr != "" && !strings.Contains(logText(i), tt.expErr) {
				t.Errorf("missing %q, log:\n%s", tt.expErr, logText(i))
			}
		})
	}
}

func TestConnectRewritesPrompt(t *testing.T) {
	i, sched := testInterpreter(t)
	i.SetUsername("trinity")

	i.Submit(context.Background(), "connect 192.168.1.101")
	sched.fire()

	st := i.State()
	testutil.AssertEqual(t, "prompt", st.Prompt, "alpha@hacknet:~$")
	testutil.AssertEqual(t, "path", st.CurrentPath, world.Home)
}

func TestNavigationRoundTrip(t *testing.T) {
	i, _ := testInterpreter(t)

	res := i.Submit(context.Background(), "cd docs")
	testutil.AssertEqual(t, "cd ok", res.OK, true)
	testutil.AssertEqual(t, "path", i.State().CurrentPath, "docs/")

	res = i.Submit(context.Background(), "ls")
	testutil.AssertEqual(t, "ls ok", res.OK, true)
	if !strings.Contains(logText(i), "-rwxr-xr-x  notes.txt") {
		t.Errorf("ls output missing notes.txt, log:\n%s", logText(i))
	}

	res = i.Submit(context.Background(), "cd ..")
	testutil.AssertEqual(t, "cd .. ok", res.OK, true)
	testutil.AssertEqual(t, "path home again", i.State().CurrentPath, world.Home)
}

func TestCdMissingDirectory(t *testing.T) {
	i, _ := testInterpreter(t)

	res := i.Submit(context.Background(), "cd vault")

	testutil.AssertEqual(t, "ok", res.OK, false)
	testutil.AssertEqual(t, "path unchanged", i.State().CurrentPath, world.Home)
	if !strings.Contains(logText(i), "ERROR: Directory 'vault' not found") {
		t.Errorf("missing error, log:\n%s", logText(i))
	}
}

func TestCatMissingFile(t *testing.T) {
	i, _ := testInterpreter(t)

	res := i.Submit(context.Background(), "cat nope.txt")

	testutil.AssertEqual(t, "ok", res.OK, false)
	if !strings.Contains(logText(i), "ERROR: File 'nope.txt' not found") {
		t.Errorf("missing error, log:\n%s", logText(i))
	}
}

func TestCatDiscoversFragmentOnce(t *testing.T) {
	i, sched := testInterpreter(t)

	i.Submit(context.Background(), "connect 192.168.1.101")
	sched.fire()

	res := i.Submit(context.Background(), "cat fragment.txt")
	testutil.AssertEqual(t, "ok", res.OK, true)
	testutil.AssertEqual(t, "keys found", len(i.State().KeysFound), 1)
	testutil.AssertEqual(t, "token", i.State().KeysFound[0], "ALPHA_UNLOCK_7F3A")
	if !strings.Contains(logText(i), "[KEY FRAGMENT FOUND: ALPHA_UNLOCK_7F3A]") {
		t.Errorf("missing discovery line, log:\n%s", logText(i))
	}

	// A second read shows the content but never re-announces
	i.Submit(context.Background(), "cat fragment.txt")
	testutil.AssertEqual(t, "keys still one", len(i.State().KeysFound), 1)
	if strings.Count(logText(i), "[KEY FRAGMENT FOUND: ALPHA_UNLOCK_7F3A]") != 1 {
		t.Errorf("fragment announced more than once, log:\n%s", logText(i))
	}
}

func collectKeys(t *testing.T, i *Interpreter, sched *manualScheduler) {
	t.Helper()

	i.Submit(context.Background(), "connect 192.168.1.101")
	sched.fire()
	i.Submit(context.Background(), "cat fragment.txt")

	i.Submit(context.Background(), "connect 192.168.1.102")
	sched.fire()
	i.Submit(context.Background(), "cat secret.txt")
}

func TestDecrypt(t *testing.T) {
	tests := map[string]struct {
		input     string
		withKeys  bool
		expOK     bool
		expEffect Effect
		expErr    string
	}{
		"no filename": {
			input:  "decrypt",
			expOK:  false,
			expErr: "ERROR: Please specify a file to decrypt",
		},
		"wrong file": {
			input:  "decrypt passwords.txt",
			expOK:  false,
			expErr: "ERROR: Cannot decrypt 'passwords.txt' - File not found or not encrypted",
		},
		"insufficient fragments": {
			input:  "decrypt project-x.omega",
			expOK:  false,
			expErr: "ERROR: Insufficient key fragments. Found 0/2",
		},
		"artifact with extension": {
			input:     "decrypt project-x.omega.enc",
			withKeys:  true,
			expOK:     true,
			expEffect: EffectDecrypt,
		},
		"artifact alias": {
			input:     "decrypt project-x.omega",
			withKeys:  true,
			expOK:     true,
			expEffect: EffectDecrypt,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i, sched := testInterpreter(t)
			if tt.withKeys {
				collectKeys(t, i, sched)
			}

			res := i.Submit(context.Background(), tt.input)

			testutil.AssertEqual(t, "ok", res.OK, tt.expOK)
			testutil.AssertEqual(t, "effect", res.Effect, tt.expEffect)
			if tt.expErr != "" && !strings.Contains(logText(i), tt.expErr) {
				t.Errorf("missing %q, log:\n%s", tt.expErr, logText(i))
			}
		})
	}
}

func TestDecryptHintFollowsError(t *testing.T) {
	i, _ := testInterpreter(t)

	i.Submit(context.Background(), "decrypt project-x.omega")

	if !strings.Contains(logText(i), "Hint: Search ALPHA and BETA servers for key fragments") {
		t.Errorf("missing hint line, log:\n%s", logText(i))
	}
}

func TestCompleteDecryptionWins(t *testing.T) {
	start := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	now := start
	board := &fakeBoard{}
	pub := &fakePub{}

	i, sched := testInterpreter(t,
		WithClock(func() time.Time { return now }),
		WithScoreboard(board),
		WithPublisher(pub),
	)
	i.SetUsername("neo")
	collectKeys(t, i, sched)

	res := i.Submit(context.Background(), "decrypt project-x.omega")
	testutil.AssertEqual(t, "decrypt effect", res.Effect, EffectDecrypt)

	now = start.Add(95 * time.Second)
	res = i.CompleteDecryption(context.Background())

	testutil.AssertEqual(t, "win ok", res.OK, true)
	testutil.AssertEqual(t, "win effect", res.Effect, EffectWin)

	st := i.State()
	testutil.AssertEqual(t, "is win", st.IsWin, true)
	testutil.AssertEqual(t, "completion ms", st.CompletionMs, int64(95000))

	if !strings.Contains(logText(i), "DECRYPTION COMPLETE!") {
		t.Errorf("missing completion banner, log:\n%s", logText(i))
	}
	if !strings.Contains(logText(i), "Score saved to global leaderboard!") {
		t.Errorf("missing leaderboard confirmation, log:\n%s", logText(i))
	}

	testutil.AssertEqual(t, "submissions", len(board.subs), 1)
	testutil.AssertEqual(t, "submitted user", board.subs[0].Username, "neo")
	testutil.AssertEqual(t, "submitted time", board.subs[0].CompletionTime, int64(95000))

	testutil.AssertEqual(t, "broadcasts", len(pub.subjects), 1)
	testutil.AssertEqual(t, "subject", pub.subjects[0], BroadcastSubject)
	if !strings.Contains(pub.payloads[0], "neo") {
		t.Errorf("broadcast payload missing username: %q", pub.payloads[0])
	}
}

func TestCompleteDecryptionRequiresPending(t *testing.T) {
	i, _ := testInterpreter(t)

	res := i.CompleteDecryption(context.Background())

	testutil.AssertEqual(t, "ok", res.OK, false)
	testutil.AssertEqual(t, "is win", i.State().IsWin, false)
}

func TestCompleteDecryptionFiresOnce(t *testing.T) {
	i, sched := testInterpreter(t)
	collectKeys(t, i, sched)
	i.Submit(context.Background(), "decrypt project-x.omega")

	first := i.CompleteDecryption(context.Background())
	second := i.CompleteDecryption(context.Background())

	testutil.AssertEqual(t, "first ok", first.OK, true)
	testutil.AssertEqual(t, "second ok", second.OK, false)
	if strings.Count(logText(i), "DECRYPTION COMPLETE!") != 1 {
		t.Errorf("win narration repeated, log:\n%s", logText(i))
	}
}

func TestDecryptAfterWin(t *testing.T) {
	i, sched := testInterpreter(t)
	collectKeys(t, i, sched)
	i.Submit(context.Background(), "decrypt project-x.omega")
	i.CompleteDecryption(context.Background())

	res := i.Submit(context.Background(), "decrypt project-x.omega")

	testutil.AssertEqual(t, "ok", res.OK, false)
	testutil.AssertEqual(t, "effect", res.Effect, EffectNone)
	if !strings.Contains(logText(i), "You have already completed the mission! Reset the game to play again.") {
		t.Errorf("missing already-won notice, log:\n%s", logText(i))
	}
}

func TestResetAbandonsPendingDecrypt(t *testing.T) {
	i, sched := testInterpreter(t)
	collectKeys(t, i, sched)
	i.Submit(context.Background(), "decrypt project-x.omega")

	i.Reset()
	res := i.CompleteDecryption(context.Background())

	testutil.AssertEqual(t, "ok", res.OK, false)
	testutil.AssertEqual(t, "is win", i.State().IsWin, false)
}

func TestResetAbandonsScheduledNarration(t *testing.T) {
	i, sched := testInterpreter(t)

	i.Submit(context.Background(), "scan")
	i.Reset()
	sched.fire()

	if strings.Contains(logText(i), "SCAN RESULTS:") {
		t.Errorf("stale scan narration survived the reset, log:\n%s", logText(i))
	}
}

func TestResetStartsOver(t *testing.T) {
	snaps := &fakeSnaps{}
	i, sched := testInterpreter(t, WithSnapshots(snaps))
	i.SetUsername("morpheus")
	collectKeys(t, i, sched)

	i.Reset()

	st := i.State()
	testutil.AssertEqual(t, "command count", st.CommandCount, 0)
	testutil.AssertEqual(t, "keys", len(st.KeysFound), 0)
	testutil.AssertEqual(t, "username", st.Username, "")
	testutil.AssertEqual(t, "prompt", st.Prompt, "guest@hacknet:~$")
	testutil.AssertEqual(t, "snapshot cleared", snaps.clears, 1)
	if !strings.Contains(logText(i), "WELCOME TO THE UNDERGROUND NETWORK ACCESS TERMINAL") {
		t.Errorf("missing welcome banner after reset, log:\n%s", logText(i))
	}
}

func TestBootRestoresSnapshot(t *testing.T) {
	saved := NewState(time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC))
	saved.CommandCount = 7
	saved.KeysFound = []string{"ALPHA_UNLOCK_7F3A"}
	saved.CurrentServer = "alpha"
	saved.Username = "neo"
	saved.Prompt = PromptFor("neo", "alpha")

	snaps := &fakeSnaps{saved: saved}
	i, _ := testInterpreter(t, WithSnapshots(snaps))
	i.Boot()

	st := i.State()
	testutil.AssertEqual(t, "command count", st.CommandCount, 7)
	testutil.AssertEqual(t, "server", st.CurrentServer, "alpha")
	testutil.AssertEqual(t, "keys", len(st.KeysFound), 1)
	if !strings.Contains(logText(i), "> Session restored from") {
		t.Errorf("missing restore notice, log:\n%s", logText(i))
	}
	if !strings.Contains(logText(i), "WELCOME TO THE UNDERGROUND NETWORK ACCESS TERMINAL") {
		t.Errorf("missing welcome banner, log:\n%s", logText(i))
	}
}

func TestBootSurvivesCorruptSnapshot(t *testing.T) {
	snaps := &fakeSnaps{loadErr: errors.New("yaml where json should be")}
	i, _ := testInterpreter(t, WithSnapshots(snaps))

	i.Boot()

	st := i.State()
	testutil.AssertEqual(t, "server", st.CurrentServer, world.LocalServer)
	testutil.AssertEqual(t, "command count", st.CommandCount, 0)
}

func TestBootNormalizesStaleSnapshot(t *testing.T) {
	saved := NewState(time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC))
	saved.CurrentServer = "decommissioned"
	saved.CurrentPath = "vault/"
	saved.KeysFound = []string{"NOT_A_REAL_TOKEN", "ALPHA_UNLOCK_7F3A"}

	snaps := &fakeSnaps{saved: saved}
	i, _ := testInterpreter(t, WithSnapshots(snaps))
	i.Boot()

	st := i.State()
	testutil.AssertEqual(t, "server reset", st.CurrentServer, world.LocalServer)
	testutil.AssertEqual(t, "path reset", st.CurrentPath, world.Home)
	testutil.AssertEqual(t, "keys pruned", len(st.KeysFound), 1)
	testutil.AssertEqual(t, "surviving key", st.KeysFound[0], "ALPHA_UNLOCK_7F3A")
}

func TestSetUsername(t *testing.T) {
	tests := map[string]struct {
		input     string
		expName   string
		expPrompt string
	}{
		"plain": {
			input:     "neo",
			expName:   "neo",
			expPrompt: "neo@hacknet:~$",
		},
		"padded": {
			input:     "  trinity  ",
			expName:   "trinity",
			expPrompt: "trinity@hacknet:~$",
		},
		"over the column width": {
			input:     "thisnameiswaytoolongfortheboard",
			expName:   "thisnameiswayto",
			expPrompt: "thisnameiswayto@hacknet:~$",
		},
		"multibyte runes stay whole": {
			input:     "가나다라마바사아자차카타파하거너더",
			expName:   "가나다라마바사아자차카타파하거",
			expPrompt: "가나다라마바사아자차카타파하거@hacknet:~$",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i, _ := testInterpreter(t)

			i.SetUsername(tt.input)

			testutil.AssertEqual(t, "username", i.State().Username, tt.expName)
			testutil.AssertEqual(t, "prompt", i.State().Prompt, tt.expPrompt)
		})
	}
}

func TestSudo(t *testing.T) {
	i, _ := testInterpreter(t)

	res := i.Submit(context.Background(), "sudo dance")
	testutil.AssertEqual(t, "dance effect", res.Effect, EffectDisco)

	res = i.Submit(context.Background(), "sudo rm -rf /")
	testutil.AssertEqual(t, "ok", res.OK, false)
	if !strings.Contains(logText(i), "ERROR: sudo password required") {
		t.Errorf("missing sudo error, log:\n%s", logText(i))
	}
	if !strings.Contains(logText(i), "Hint: The password might be hidden in the server files...") {
		t.Errorf("missing sudo hint, log:\n%s", logText(i))
	}
}

func TestEasterEggs(t *testing.T) {
	tests := map[string]struct {
		input     string
		expOK     bool
		expEffect Effect
		expLine   string
	}{
		"neo": {
			input:     "neo",
			expOK:     true,
			expEffect: EffectMatrix,
			expLine:   "Wake up, Neo...",
		},
		"rickroll": {
			input:     "rickroll",
			expOK:     true,
			expEffect: EffectRickroll,
		},
		"open ai": {
			input:     "open ai",
			expOK:     true,
			expEffect: EffectAITakeover,
			expLine:   "AI HAS TAKEN OVER. HUMAN OBSOLETE.",
		},
		"open other": {
			input:   "open notepad",
			expOK:   false,
			expLine: "ERROR: Unknown file or application",
		},
		"why am i here": {
			input:     "why am i here",
			expOK:     true,
			expEffect: EffectExistential,
			expLine:   "You've always been here...",
		},
		"why alone": {
			input:   "why",
			expOK:   false,
			expLine: "ERROR: Unknown command",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i, _ := testInterpreter(t)

			res := i.Submit(context.Background(), tt.input)

			testutil.AssertEqual(t, "ok", res.OK, tt.expOK)
			testutil.AssertEqual(t, "effect", res.Effect, tt.expEffect)
			if tt.expLine != "" && !strings.Contains(logText(i), tt.expLine) {
				t.Errorf("missing %q, log:\n%s", tt.expLine, logText(i))
			}
		})
	}
}

func TestOpenAIDefersSecondLine(t *testing.T) {
	i, sched := testInterpreter(t)

	i.Submit(context.Background(), "open ai")

	if strings.Contains(logText(i), "SYSTEM LOCKED. PLEASE RESTART.") {
		t.Fatal("delayed line printed immediately")
	}
	sched.fire()
	if !strings.Contains(logText(i), "SYSTEM LOCKED. PLEASE RESTART.") {
		t.Errorf("delayed line never landed, log:\n%s", logText(i))
	}
}

func TestLeaderboardCommand(t *testing.T) {
	board := &fakeBoard{entries: []leaderboard.Entry{
		{Username: "neo", CompletionTime: 61000, CommandCount: 42},
		{Username: "trinity", CompletionTime: 83000, CommandCount: 57},
	}}
	i, _ := testInterpreter(t, WithScoreboard(board))

	res := i.Submit(context.Background(), "leaderboard")

	testutil.AssertEqual(t, "ok", res.OK, true)
	out := logText(i)
	for _, want := range []string{
		"HALL OF FAME - TOP HACKERS",
		"#01   | neo             | 01:01   |  42",
		"#02   | trinity         | 01:23   |  57",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing %q, log:\n%s", want, out)
		}
	}
}

func TestLeaderboardCommandEmpty(t *testing.T) {
	i, _ := testInterpreter(t, WithScoreboard(&fakeBoard{}))

	res := i.Submit(context.Background(), "leaderboard")

	testutil.AssertEqual(t, "ok", res.OK, true)
	if !strings.Contains(logText(i), "No records found. Complete the mission to be the first!") {
		t.Errorf("missing empty notice, log:\n%s", logText(i))
	}
}

func TestLeaderboardCommandFetchFailure(t *testing.T) {
	board := &fakeBoard{topErr: errors.New("connection refused")}
	i, _ := testInterpreter(t, WithScoreboard(board))

	res := i.Submit(context.Background(), "leaderboard")

	// A dead scoreboard is narrated, not escalated
	testutil.AssertEqual(t, "ok", res.OK, true)
	if !strings.Contains(logText(i), "ERROR: Failed to load leaderboard") {
		t.Errorf("missing failure notice, log:\n%s", logText(i))
	}
}

func TestDisconnect(t *testing.T) {
	i, sched := testInterpreter(t)

	res := i.Submit(context.Background(), "disconnect")
	testutil.AssertEqual(t, "local disconnect ok", res.OK, false)
	if !strings.Contains(logText(i), "ERROR: Already on local terminal") {
		t.Errorf("missing local error, log:\n%s", logText(i))
	}

	i.Submit(context.Background(), "connect 192.168.1.101")
	sched.fire()

	res = i.Submit(context.Background(), "disconnect")
	sched.fire()

	testutil.AssertEqual(t, "remote disconnect ok", res.OK, true)
	st := i.State()
	testutil.AssertEqual(t, "server", st.CurrentServer, world.LocalServer)
	testutil.AssertEqual(t, "path", st.CurrentPath, world.Home)
	testutil.AssertEqual(t, "prompt", st.Prompt, "guest@hacknet:~$")
}

func TestSnapshotSavedOnEveryCommand(t *testing.T) {
	snaps := &fakeSnaps{}
	i, _ := testInterpreter(t, WithSnapshots(snaps))

	i.Submit(context.Background(), "help")
	i.Submit(context.Background(), "ls")

	if snaps.saves < 2 {
		t.Errorf("expected at least 2 snapshot saves, got %d", snaps.saves)
	}
	testutil.AssertEqual(t, "saved count", snaps.saved.CommandCount, 2)
}

func TestSnapshotFailureDoesNotInterrupt(t *testing.T) {
	snaps := &fakeSnaps{saveErr: errors.New("disk full")}
	i, _ := testInterpreter(t, WithSnapshots(snaps))

	res := i.Submit(context.Background(), "help")

	testutil.AssertEqual(t, "ok", res.OK, true)
}

func TestEjectNarration(t *testing.T) {
	i, sched := testInterpreter(t)

	res := i.Submit(context.Background(), "eject")
	testutil.AssertEqual(t, "ok", res.OK, true)

	sched.fire()
	if !strings.Contains(logText(i), "ERROR: No CD found in drive") {
		t.Errorf("missing eject narration, log:\n%s", logText(i))
	}
}
