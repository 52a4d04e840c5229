package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/shelf-wrapped/internal/common"
)

func TestDecoder_DecodeAll(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRows []RawRow
	}{
		{
			name:  "simple rows keyed by header",
			input: "Title,Author\nDune,Frank Herbert\nPiranesi,Susanna Clarke\n",
			wantRows: []RawRow{
				{"Title": "Dune", "Author": "Frank Herbert"},
				{"Title": "Piranesi", "Author": "Susanna Clarke"},
			},
		},
		{
			name:  "blank lines are skipped",
			input: "Title,Author\n\nDune,Frank Herbert\n\n\n",
			wantRows: []RawRow{
				{"Title": "Dune", "Author": "Frank Herbert"},
			},
		},
		{
			name:  "short row lacks trailing keys",
			input: "Title,Author,Pages\n\"Dune\",\"Frank Herbert\"\n",
			wantRows: []RawRow{
				{"Title": "Dune", "Author": "Frank Herbert"},
			},
		},
		{
			name:  "long row drops extra cells",
			input: "Title,Author\nDune,Frank Herbert,512\n",
			wantRows: []RawRow{
				{"Title": "Dune", "Author": "Frank Herbert"},
			},
		},
		{
			name:  "header whitespace is trimmed",
			input: " Title , Author \nDune,Frank Herbert\n",
			wantRows: []RawRow{
				{"Title": "Dune", "Author": "Frank Herbert"},
			},
		},
		{
			name:     "header only yields no rows",
			input:    "Title,Author\n",
			wantRows: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := NewDecoder().DecodeAll(context.Background(), strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestDecoder_DecodeAll_EmptyFile(t *testing.T) {
	_, err := NewDecoder().DecodeAll(context.Background(), strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingHeader)

	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestDecoder_DecodeAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDecoder().DecodeAll(ctx, strings.NewReader("Title\nDune\n"))
	assert.ErrorIs(t, err, context.Canceled)
}
