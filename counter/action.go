package counter

import (
	"strings"

	"github.com/pkg/errors"
)

// Action is a user request against the counter.
type Action int

const (
	ActionIncrement Action = iota + 1
	ActionDecrement
)

func (a Action) String() string {
	switch a {
	case ActionIncrement:
		return "increment"
	case ActionDecrement:
		return "decrement"
	default:
		return "unknown"
	}
}

// ParseAction accepts "increment", "inc" or "+", and "decrement", "dec" or "-".
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increment", "inc", "+":
		return ActionIncrement, nil
	case "decrement", "dec", "-":
		return ActionDecrement, nil
	default:
		return 0, errors.Errorf("unknown counter action %q", s)
	}
}

// ParseScript parses an action script. A script is either a run of "+" and
// "-" characters ("++-") or a comma separated list of action names
// ("increment,decrement"). Blank scripts yield no actions.
func ParseScript(script string) ([]Action, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var tokens []string
	if strings.Trim(script, "+- ") == "" {
		for _, r := range script {
			if r == ' ' {
				continue
			}
			tokens = append(tokens, string(r))
		}
	} else {
		tokens = strings.Split(script, ",")
	}

	actions := make([]Action, 0, len(tokens))
	for i, tok := range tokens {
		a, err := ParseAction(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "action %d", i)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
