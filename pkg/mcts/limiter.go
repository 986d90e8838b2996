package mcts

import (
	"context"
	"strings"
	"time"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Context cancelled
	StopMovetime  StopReason = 2 // Time limit reached
	StopNodes     StopReason = 4 // Tree size limit reached
	StopCycles    StopReason = 8 // Cycle limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopNodes, "Nodes"},
		{StopCycles, "Cycles"},
	}

	names := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			names = append(names, r.name)
		}
	}
	return strings.Join(names, "|")
}

// Decides when the search loop should end
type Limiter struct {
	limits *Limits
	start  time.Time
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		start:  time.Now(),
		ctx:    context.Background(),
	}
}

// Reset the flags and the timer, called on search setup
func (l *Limiter) Reset() {
	l.start = time.Now()
	l.reason = StopNone
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Elapsed time since the last Reset
func (l *Limiter) Elapsed() time.Duration {
	return time.Since(l.start)
}

// Whether the search context is done
func (l *Limiter) Stop() bool {
	return l.ctx.Err() != nil
}

func (l *Limiter) timeout() bool {
	return l.limits.Movetime >= 0 && l.Elapsed() >= l.limits.Movetime
}

// Compute the stop reason for the current state, without storing it
func (l *Limiter) Check(size, cycles uint32) StopReason {
	reason := StopNone
	if l.Stop() {
		reason |= StopInterrupt
	}

	// Only the interruption can end the infinite search
	if l.limits.Infinite {
		return reason
	}

	if l.timeout() {
		reason |= StopMovetime
	}
	if l.limits.Nodes <= size {
		reason |= StopNodes
	}
	if l.limits.Cycles <= cycles {
		reason |= StopCycles
	}
	return reason
}

// Whether the search can go on, called in the main search loop.
// Once it returns false, StopReason tells why
func (l *Limiter) Ok(size, cycles uint32) bool {
	l.reason = l.Check(size, cycles)
	return l.reason == StopNone
}

// Get the reason why the search was stopped, valid after search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}
