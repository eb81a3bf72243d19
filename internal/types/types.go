package types

// EntityID identifies a mineral within a session.
type EntityID uint64
