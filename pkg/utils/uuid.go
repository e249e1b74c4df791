package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// UniqueUUIDs returns ids with duplicates removed, keeping first-seen order
func UniqueUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// FormatDocumentNumber renders a document number with its prefix, e.g. "AK-100001"
func FormatDocumentNumber(prefix string, number int64) string {
	return fmt.Sprintf("%s-%d", prefix, number)
}
