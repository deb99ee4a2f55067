// Package dedup collapses records that share an identifier.
package dedup

import "github.com/cristianoliveira/hrdesk/internal/domain"

// Records returns records with one entry per ID and the number of entries
// dropped. Each ID keeps the position of its first occurrence and the body
// of its last, since later pages of a listing carry the newer copy.
func Records(records []domain.Record) ([]domain.Record, int) {
	index := make(map[string]int, len(records))
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if i, ok := index[r.ID]; ok {
			out[i].Body = r.Body
			continue
		}
		index[r.ID] = len(out)
		out = append(out, r)
	}
	return out, len(records) - len(out)
}
