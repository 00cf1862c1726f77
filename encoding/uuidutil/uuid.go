// Package uuidutil contains helpers for github.com/google/uuid values.
package uuidutil

import (
	"encoding/binary"
	"strings"

	"github.com/google/uuid"
)

// IsEmpty reports whether id is the all-zero UUID.
func IsEmpty(id uuid.UUID) bool {
	return id == uuid.Nil
}

// IsNilOrEmpty reports whether id is missing or the all-zero UUID.
func IsNilOrEmpty(id *uuid.UUID) bool {
	return id == nil || IsEmpty(*id)
}

// ToUpper returns the canonical text form of id in upper case.
func ToUpper(id uuid.UUID) string {
	return strings.ToUpper(id.String())
}

// Hash folds the 128 bits of id into 32 bits by XOR-ing its four
// little-endian words. Distinct random UUIDs give well spread values, which
// makes the result usable as a generator seed.
func Hash(id uuid.UUID) int32 {
	var h uint32
	for i := 0; i < len(id); i += 4 {
		h ^= binary.LittleEndian.Uint32(id[i : i+4])
	}
	return int32(h)
}
