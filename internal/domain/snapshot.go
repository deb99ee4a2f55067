package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrRecordNotFound is returned when a record id is not in a snapshot.
var ErrRecordNotFound = errors.New("record not found")

// Record is one raw entity as returned by the backend, keyed by its id.
type Record struct {
	ID   string          `json:"id"`
	Body json.RawMessage `json:"body"`
}

// Snapshot is the last fetched copy of one collection.
type Snapshot struct {
	Kind      Kind
	Records   []json.RawMessage
	FetchedAt time.Time
}

// Empty reports whether the snapshot was never fetched or holds no records.
func (s Snapshot) Empty() bool {
	return len(s.Records) == 0
}

// SnapshotInfo summarizes a stored snapshot.
type SnapshotInfo struct {
	Kind      Kind      `json:"kind"`
	Count     int       `json:"count"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ApplyPatch merges patch into the top-level fields of a JSON object.
func ApplyPatch(body json.RawMessage, patch map[string]any) (json.RawMessage, error) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		doc[k] = v
	}
	return json.Marshal(doc)
}
