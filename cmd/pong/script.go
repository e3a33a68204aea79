package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// scriptActions maps script verbs to actions.
var scriptActions = map[string]core.Action{
	"lup":   core.ActionLeftUp,
	"ldown": core.ActionLeftDown,
	"rup":   core.ActionRightUp,
	"rdown": core.ActionRightDown,
	"start": core.ActionStart,
	"quit":  core.ActionQuit,
}

var errBadScript = errors.New("bad script entry")

// scriptEntry holds an action pressed on ticks From through To inclusive.
// Ticks count from 1.
type scriptEntry struct {
	Action   core.Action
	From, To uint64
}

// script is a list of timed intents for the headless simulation.
type script []scriptEntry

// parseScript parses "verb@tick" and "verb@from-to" entries separated by
// commas, e.g. "start@1,ldown@200-260".
func parseScript(s string) (script, error) {
	var sc script
	for _, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		verb, ticks, ok := strings.Cut(raw, "@")
		if !ok {
			return nil, fmt.Errorf("%w %q: missing @tick", errBadScript, raw)
		}
		action, ok := scriptActions[strings.ToLower(verb)]
		if !ok {
			return nil, fmt.Errorf("%w %q: unknown action %q", errBadScript, raw, verb)
		}

		fromStr, toStr, isRange := strings.Cut(ticks, "-")
		from, err := strconv.ParseUint(fromStr, 10, 64)
		if err != nil || from == 0 {
			return nil, fmt.Errorf("%w %q: bad tick %q", errBadScript, raw, fromStr)
		}
		to := from
		if isRange {
			to, err = strconv.ParseUint(toStr, 10, 64)
			if err != nil || to < from {
				return nil, fmt.Errorf("%w %q: bad range end %q", errBadScript, raw, toStr)
			}
		}
		sc = append(sc, scriptEntry{Action: action, From: from, To: to})
	}
	return sc, nil
}

// Frame returns the actions held on the given tick.
func (sc script) Frame(tick uint64) core.InputFrame {
	f := core.NewInputFrame()
	for _, e := range sc {
		if tick >= e.From && tick <= e.To {
			f.Set(e.Action)
		}
	}
	return f
}

// parseStep accepts a fraction of a second such as "1/60" or a Go duration
// such as "10ms".
func parseStep(s string) (time.Duration, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("bad step %q: %w", s, err)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil {
			return 0, fmt.Errorf("bad step %q: %w", s, err)
		}
		if n <= 0 || d <= 0 {
			return 0, fmt.Errorf("bad step %q: must be positive", s)
		}
		return time.Duration(float64(time.Second) * n / d), nil
	}

	step, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("bad step %q: %w", s, err)
	}
	if step <= 0 {
		return 0, fmt.Errorf("bad step %q: must be positive", s)
	}
	return step, nil
}
