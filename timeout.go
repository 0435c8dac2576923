package timedmap

import (
	"fmt"
	"time"
)

type timeoutKind uint8

const (
	timeoutUnspecified timeoutKind = iota
	timeoutKeep
	timeoutClear
	timeoutSet
)

// Timeout says what a write does to an entry's timer.
//
//	             new entry            existing entry
//	Unspecified  no timer             refresh the timer, if any
//	KeepCurrent  no timer             leave the timer untouched
//	ClearTimer   no timer             cancel the timer, entry becomes permanent
//	After(d)     timer of d           timer replaced with one of d
//
// The zero value is Unspecified.
type Timeout struct {
	kind     timeoutKind
	duration time.Duration
}

var (
	// Unspecified refreshes an existing timer and creates none.
	Unspecified = Timeout{}
	// KeepCurrent leaves any existing timer as it is.
	KeepCurrent = Timeout{kind: timeoutKeep}
	// ClearTimer makes the entry permanent.
	ClearTimer = Timeout{kind: timeoutClear}
)

// After returns a Timeout that expires the entry d from now.
// A zero or negative d is ClearTimer.
func After(d time.Duration) Timeout {
	if d <= 0 {
		return ClearTimer
	}

	return Timeout{kind: timeoutSet, duration: d}
}

// Duration returns the timer length for an After timeout.
func (t Timeout) Duration() (time.Duration, bool) {
	return t.duration, t.kind == timeoutSet
}

func (t Timeout) String() string {
	switch t.kind {
	case timeoutKeep:
		return "keep"
	case timeoutClear:
		return "clear"
	case timeoutSet:
		return fmt.Sprintf("after %s", t.duration)
	default:
		return "unspecified"
	}
}
