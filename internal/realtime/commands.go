package realtime

import (
	"encoding/json"

	"github.com/crossplay/wfc/internal/worker"
	"github.com/crossplay/wfc/pkg/wfc"
)

// translateCommand decodes frame.Payload according to frame.Type and
// builds the matching worker.Command. The second return is false for
// any frame type the protocol doesn't recognize.
func translateCommand(frame Frame) (worker.Command, bool) {
	switch frame.Type {
	case FrameSetLetter:
		var p CellPayload
		if err := json.Unmarshal(frame.Payload, &p); err != nil {
			return worker.Command{}, false
		}
		letter := []rune(p.Letter)
		if len(letter) != 1 {
			return worker.Command{}, false
		}
		return worker.Command{
			Kind: worker.CmdSetLetter,
			Args: worker.CommandArgs{Coord: wfc.Coord{X: p.X, Y: p.Y}, Letter: letter[0]},
		}, true

	case FrameSetMask:
		var p CellPayload
		if err := json.Unmarshal(frame.Payload, &p); err != nil {
			return worker.Command{}, false
		}
		return worker.Command{
			Kind: worker.CmdSetMask,
			Args: worker.CommandArgs{Coord: wfc.Coord{X: p.X, Y: p.Y}, Mask: p.Mask},
		}, true

	case FrameResetCell:
		var p CellPayload
		if err := json.Unmarshal(frame.Payload, &p); err != nil {
			return worker.Command{}, false
		}
		return worker.Command{
			Kind: worker.CmdResetCell,
			Args: worker.CommandArgs{Coord: wfc.Coord{X: p.X, Y: p.Y}},
		}, true

	case FrameReset:
		return worker.Command{Kind: worker.CmdReset}, true

	case FrameUpdateOptions:
		return worker.Command{Kind: worker.CmdUpdateOptions}, true

	case FrameSolve:
		return worker.Command{Kind: worker.CmdSolve}, true

	case FrameStop:
		return worker.Command{Kind: worker.CmdStop}, true

	default:
		return worker.Command{}, false
	}
}

func outcomeString(o wfc.Outcome) string {
	switch o {
	case wfc.Solved:
		return "solved"
	case wfc.Exhausted:
		return "exhausted"
	case wfc.Cancelled:
		return "cancelled"
	default:
		return "running"
	}
}
