package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for new records. Version 7 UUIDs are
// time-ordered, which keeps freshly created expenses roughly sorted by
// insertion in the local store.
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
