package protocol

import (
	"strings"

	"github.com/JPricey/santorini-ai/common"
)

// toActionJSON converts a god's atomic action script into the JSON
// shapes spec section 6.2 defines: most actions carry a bare square,
// force_opponent_worker carries a [from,to] pair, and
// set_wind_direction carries a direction name or null.
func toActionJSON(actions []common.Action) []ActionJSON {
	out := make([]ActionJSON, 0, len(actions))
	for _, a := range actions {
		switch a.Kind {
		case common.ActionForceOpponentWorker:
			out = append(out, ActionJSON{Type: a.Kind.String(), Value: []string{a.From.String(), a.Sq.String()}})
		case common.ActionSetWindDirection:
			if a.Dir == nil {
				out = append(out, ActionJSON{Type: a.Kind.String(), Value: nil})
			} else {
				out = append(out, ActionJSON{Type: a.Kind.String(), Value: windDirName(*a.Dir)})
			}
		case common.ActionEndTurn, common.ActionNoMoves:
			out = append(out, ActionJSON{Type: a.Kind.String()})
		default:
			out = append(out, ActionJSON{Type: a.Kind.String(), Value: a.Sq.String()})
		}
	}
	return out
}

var windDirNames = [8]string{"nw", "n", "ne", "w", "e", "sw", "s", "se"}

func windDirName(dir int) string {
	if dir < 0 || dir >= len(windDirNames) {
		return ""
	}
	return windDirNames[dir]
}

// actionScriptString renders the action list as a compact
// human-readable string for meta.action_str.
func actionScriptString(actions []common.Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		switch a.Kind {
		case common.ActionForceOpponentWorker:
			parts = append(parts, a.Kind.String()+"("+a.From.String()+"->"+a.Sq.String()+")")
		case common.ActionSetWindDirection:
			if a.Dir == nil {
				parts = append(parts, a.Kind.String()+"(none)")
			} else {
				parts = append(parts, a.Kind.String()+"("+windDirName(*a.Dir)+")")
			}
		case common.ActionEndTurn, common.ActionNoMoves:
			parts = append(parts, a.Kind.String())
		default:
			parts = append(parts, a.Kind.String()+"("+a.Sq.String()+")")
		}
	}
	return strings.Join(parts, " ")
}
