package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for temporary entities and queued
// mutations.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator yields UUIDv7 values: a millisecond timestamp prefix
// followed by random bits, so ids sort by creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
