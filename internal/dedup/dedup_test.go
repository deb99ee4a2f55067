package dedup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cristianoliveira/hrdesk/internal/domain"
)

func rec(id, body string) domain.Record {
	return domain.Record{ID: id, Body: json.RawMessage(body)}
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name    string
		in      []domain.Record
		want    []domain.Record
		dropped int
	}{
		{"empty", nil, []domain.Record{}, 0},
		{"unique", []domain.Record{rec("a", "1"), rec("b", "2")}, []domain.Record{rec("a", "1"), rec("b", "2")}, 0},
		{
			name:    "duplicate keeps first position and last body",
			in:      []domain.Record{rec("a", "1"), rec("b", "2"), rec("a", "3"), rec("c", "4"), rec("a", "5")},
			want:    []domain.Record{rec("a", "5"), rec("b", "2"), rec("c", "4")},
			dropped: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := Records(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.dropped, dropped)
		})
	}
}
