package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fps-proto/input"
)

// Action is what the frontend loop must do after an event
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
)

// Options tunes event translation
type Options struct {
	// InitialHoldWindow is how long a fresh press stays held before its first repeat
	InitialHoldWindow time.Duration
	// HoldWindow is how long a repeating key stays held without a further repeat
	HoldWindow time.Duration
	// MouseCellScale converts one cell of mouse motion to pointer units
	MouseCellScale float64
	// ArrowLookStep is the pointer delta injected per arrow key
	ArrowLookStep float64
}

// Translator turns tcell events into input.State changes.
// Terminals report no key releases, so held keys are tracked by repeat timing.
type Translator struct {
	opts Options
	hold *input.HoldTracker

	lastX, lastY int
	haveMouse    bool
}

// NewTranslator creates a translator
func NewTranslator(opts Options) *Translator {
	return &Translator{
		opts: opts,
		hold: input.NewHoldTracker(opts.InitialHoldWindow, opts.HoldWindow),
	}
}

// Apply updates st from ev. Pointer motion is only accumulated while captured.
// Caller holds the world update lock.
func (t *Translator) Apply(ev tcell.Event, st *input.State, captured bool, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.applyKey(ev, st, captured, now)

	case *tcell.EventMouse:
		x, y := ev.Position()
		if t.haveMouse && captured {
			st.Mouse.Accumulate(
				float64(x-t.lastX)*t.opts.MouseCellScale,
				float64(y-t.lastY)*t.opts.MouseCellScale,
			)
		}
		t.lastX, t.lastY = x, y
		t.haveMouse = true

	case *tcell.EventResize:
		return ActionResize

	case *tcell.EventFocus:
		// Keys held while focus leaves would otherwise never release
		if !ev.Focused {
			t.hold.Reset(st.Keys)
		}
	}
	return ActionNone
}

func (t *Translator) applyKey(ev *tcell.EventKey, st *input.State, captured bool, now time.Time) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEscape:
		t.hold.Observe(st.Keys, input.KeyEscape, now)
		return ActionNone
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		if captured {
			t.arrowLook(ev.Key(), st)
		}
		return ActionNone
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	r := ev.Rune()
	if r == 'q' || r == 'Q' {
		return ActionQuit
	}
	if k := KeyForRune(r); k != input.KeyUnknown {
		t.hold.Observe(st.Keys, k, now)
	}
	return ActionNone
}

func (t *Translator) arrowLook(k tcell.Key, st *input.State) {
	step := t.opts.ArrowLookStep
	switch k {
	case tcell.KeyUp:
		st.Mouse.Accumulate(0, -step)
	case tcell.KeyDown:
		st.Mouse.Accumulate(0, step)
	case tcell.KeyLeft:
		st.Mouse.Accumulate(-step, 0)
	case tcell.KeyRight:
		st.Mouse.Accumulate(step, 0)
	}
}

// Expire synthesizes releases for keys whose hold window elapsed
func (t *Translator) Expire(st *input.State, now time.Time) []input.KeyCode {
	return t.hold.Expire(st.Keys, now)
}

// KeyForRune maps a typed character to a simulation key, ignoring case
func KeyForRune(r rune) input.KeyCode {
	switch r {
	case 'w', 'W':
		return input.KeyW
	case 'a', 'A':
		return input.KeyA
	case 's', 'S':
		return input.KeyS
	case 'd', 'D':
		return input.KeyD
	case ' ':
		return input.KeySpace
	default:
		return input.KeyUnknown
	}
}
