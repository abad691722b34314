// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "time"

// Clock supplies the current time in seconds since the Unix epoch
type Clock interface {
	Now() int64
}

// Identity supplies the authenticated caller
type Identity interface {
	Current() string
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

// FixedClock always reports the same instant
type FixedClock int64

func (c FixedClock) Now() int64 {
	return int64(c)
}

// StaticIdentity is a caller identity that has already been verified
type StaticIdentity string

func (i StaticIdentity) Current() string {
	return string(i)
}
