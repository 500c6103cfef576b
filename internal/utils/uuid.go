package utils

import "github.com/google/uuid"

// RequestIDGenerator issues ids for outgoing commands. Ids are UUIDv7, so
// they sort by creation time; prefix tells command kinds apart in logs.
type RequestIDGenerator struct {
	prefix string
}

func NewRequestIDGenerator(prefix string) *RequestIDGenerator {
	return &RequestIDGenerator{prefix: prefix}
}

func (g *RequestIDGenerator) Generate() string {
	id := uuid.NewString()
	if v7, err := uuid.NewV7(); err == nil {
		id = v7.String()
	}

	if g.prefix == "" {
		return id
	}
	return g.prefix + "-" + id
}
