package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDezenas(t *testing.T) {
	tests := []struct {
		name    string
		dezenas []int32
		want    bool
	}{
		{
			name:    "valid bet",
			dezenas: []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			want:    true,
		},
		{
			name:    "valid bet unsorted",
			dezenas: []int32{25, 1, 13, 7, 2, 19, 4, 22, 10, 16, 5, 8, 11, 20, 3},
			want:    true,
		},
		{
			name:    "too few numbers",
			dezenas: []int32{1, 2, 3},
			want:    false,
		},
		{
			name:    "duplicate number",
			dezenas: []int32{1, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			want:    false,
		},
		{
			name:    "out of range high",
			dezenas: []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 26},
			want:    false,
		},
		{
			name:    "out of range low",
			dezenas: []int32{0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			want:    false,
		},
		{
			name:    "empty",
			dezenas: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dezenas(tt.dezenas))
		})
	}
}
