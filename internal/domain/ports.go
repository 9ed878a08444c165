package domain

import "time"

// IdentifierGenerator produces a fresh unique identifier for a new aggregate.
type IdentifierGenerator interface {
	Generate() string
}

// Clock supplies the current instant so time-dependent logic can be fixed in tests.
type Clock interface {
	Now() time.Time
}
