package core

// Command is a directional focus command understood by NextFocus.
type Command int

const (
	FocusNext Command = iota
	FocusPrev
	FocusPageDown
	FocusPageUp
	FocusFirst
	FocusLast
)

const DefaultPageSize = 5

func (c Command) String() string {
	switch c {
	case FocusNext:
		return "next"
	case FocusPrev:
		return "prev"
	case FocusPageDown:
		return "pageDown"
	case FocusPageUp:
		return "pageUp"
	case FocusFirst:
		return "first"
	case FocusLast:
		return "last"
	default:
		return "unknown"
	}
}

// NextFocus computes the position to focus after a command over n focusable
// options (visible and enabled; disabled options are skipped by never being
// counted). current is the focused position, -1 (or out of range) for "before
// the first option". next/prev wrap around, page moves clamp. The result is -1
// only when n is 0.
func NextFocus(n, current int, cmd Command, pageSize int) int {
	if n <= 0 {
		return -1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if current >= n {
		current = -1
	}

	switch cmd {
	case FocusNext:
		if current < 0 {
			return 0
		}
		return (current + 1) % n
	case FocusPrev:
		if current < 0 {
			return n - 1
		}
		return (current - 1 + n) % n
	case FocusPageDown:
		return min(current+pageSize, n-1)
	case FocusPageUp:
		return max(current-pageSize, 0)
	case FocusFirst:
		return 0
	case FocusLast:
		return n - 1
	default:
		return current
	}
}
