package loop

import (
	"fmt"
	"strconv"
	"strings"
)

// Script is an InputSource that jumps on a fixed set of driver frames.
type Script map[int]bool

// NewScript builds a script from frame numbers.
func NewScript(frames ...int) Script {
	s := make(Script, len(frames))
	for _, f := range frames {
		s[f] = true
	}
	return s
}

// ParseScript parses a comma-separated frame list such as "10,55,120".
func ParseScript(spec string) (Script, error) {
	var frames []int
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("loop: invalid script frame %q", field)
		}
		frames = append(frames, n)
	}
	return NewScript(frames...), nil
}

// JumpRequested reports whether frame is scripted.
func (s Script) JumpRequested(frame int) bool {
	return s[frame]
}

// Every jumps on every n-th frame, starting at frame 0.
type Every int

// JumpRequested reports whether frame is a multiple of n.
func (e Every) JumpRequested(frame int) bool {
	return e > 0 && frame%int(e) == 0
}
