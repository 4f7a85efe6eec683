package game

// Effect names a presentation-layer response to a command: an animation,
// a modal, a sound. The interpreter only ever emits the name; rendering
// and duration are the caller's business.
type Effect string

const (
	EffectNone        Effect = ""
	EffectMatrix      Effect = "matrix"
	EffectDisco       Effect = "disco"
	EffectRickroll    Effect = "rickroll"
	EffectDebug       Effect = "debug"
	EffectDecrypt     Effect = "decrypt"
	EffectWin         Effect = "win"
	EffectAITakeover  Effect = "ai_takeover"
	EffectExistential Effect = "existential"
)

// Result is what Submit hands back for one command line.
type Result struct {
	OK      bool
	Effect  Effect
	Message string
}
