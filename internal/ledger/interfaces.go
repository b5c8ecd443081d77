package ledger

import "time"

// IDGenerator produces unique identifiers for new entities. Two calls
// must never collide within the lifetime of the process.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current time. Injected so engine output is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
