package puzzle

import (
	"fmt"
	"unicode"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/core"
)

var dirActions = map[board.Dir]core.Action{
	board.North: core.ActionUp,
	board.East:  core.ActionRight,
	board.South: core.ActionDown,
	board.West:  core.ActionLeft,
}

// ParseScript turns a key script into one input frame per key.
// n/e/s/w press a direction, x presses the action key and r restarts.
// Whitespace is ignored.
func ParseScript(script string) ([]core.InputFrame, error) {
	var frames []core.InputFrame
	for i, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case 'x', 'X':
			frames = append(frames, core.FrameOf(core.ActionUse))
		case 'r', 'R':
			frames = append(frames, core.FrameOf(core.ActionRestart))
		default:
			d, ok := board.ParseDir(string(r))
			if !ok {
				return nil, fmt.Errorf("puzzle: bad key %q at offset %d", r, i)
			}
			frames = append(frames, core.FrameOf(dirActions[d]))
		}
	}
	return frames, nil
}

// Play applies every frame in order and returns how many changed the state.
func (g *Game) Play(frames []core.InputFrame) int {
	changed := 0
	for _, f := range frames {
		if g.Step(f).Changed {
			changed++
		}
	}
	return changed
}
