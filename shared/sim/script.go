package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/tilehop/shared/controller"
)

// ErrBadScript is returned by ParseScript for malformed input.
var ErrBadScript = errors.New("sim: bad input script")

// ParseScript expands a comma-separated input script into one Input per
// frame. Each token is a set of keys and an optional frame count, e.g.
// "R*30" holds right for 30 frames, "RJ" presses jump while holding right
// for one frame and "*10" idles for 10 frames. Keys are L (left), R (right)
// and J (jump). Jump is pressed only on the first frame of its token.
func ParseScript(script string) ([]controller.Input, error) {
	var inputs []controller.Input
	for _, tok := range strings.Split(script, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		keys, count := tok, 1
		if i := strings.IndexByte(tok, '*'); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("token %q: frame count: %w", tok, ErrBadScript)
			}
			keys, count = tok[:i], n
		}

		var in controller.Input
		for _, k := range strings.ToUpper(keys) {
			switch k {
			case 'L':
				in.Left = true
			case 'R':
				in.Right = true
			case 'J':
				in.JumpPressed = true
			default:
				return nil, fmt.Errorf("token %q: key %q: %w", tok, k, ErrBadScript)
			}
		}

		for f := 0; f < count; f++ {
			inputs = append(inputs, in)
			in.JumpPressed = false
		}
	}
	return inputs, nil
}
