// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

// Status is derived from the clock on every call and never stored
type Status string

const (
	StatusPending Status = "pending"
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
)

// StatusAt reports where the proposal's window stands at now.
// The window is half-open: [OpenFrom, FinishedFrom).
func (p *Proposal) StatusAt(now int64) Status {
	switch {
	case now < p.OpenFrom:
		return StatusPending
	case now < p.FinishedFrom:
		return StatusOpen
	default:
		return StatusClosed
	}
}
