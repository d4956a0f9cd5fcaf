// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package ingest

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithua/smr/internal/smr"
)

func testReader(tagTypes ...string) *Reader {
	return NewReader("item", tagTypes, zerolog.Nop())
}

func TestRead(t *testing.T) {
	src := strings.NewReader(
		"item,genre,studio\n" +
			"A,x,s1\n" +
			"A,y,\n" +
			"B,x,s2\n")

	rows, stats, err := testReader("genre", "studio").Read(src)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 3, stats.Columns)
	require.Len(t, rows, 3)

	assert.Equal(t, smr.Row{"item": "A", "genre": "x", "studio": "s1"}, rows[0])
	assert.Equal(t, "", rows[1]["studio"], "blank cells stay empty")
}

func TestRead_FeedsBuilder(t *testing.T) {
	src := strings.NewReader(
		"item,genre\n" +
			"A,x\nA,y\nB,x\nC,y\n")

	rows, _, err := testReader("genre").Read(src)
	require.NoError(t, err)

	r, err := smr.FromTransactions(rows, []string{"genre"}, "item")
	require.NoError(t, err)
	assert.Equal(t, 3, r.NumItems())
	assert.Equal(t, 2, r.NumTags())
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		reader  *Reader
		input   string
		wantErr error
	}{
		{
			name:    "empty input",
			reader:  testReader("genre"),
			input:   "",
			wantErr: ErrEmptyTable,
		},
		{
			name:    "missing item column",
			reader:  testReader("genre"),
			input:   "id,genre\nA,x\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "missing tag type column",
			reader:  testReader("genre", "studio"),
			input:   "item,genre\nA,x\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "tag type equals item column",
			reader:  testReader("item"),
			input:   "item,genre\nA,x\n",
			wantErr: ErrColumnCollision,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.reader.Read(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRead_ReportsLineOfMalformedRecord(t *testing.T) {
	// Unbalanced quote makes the csv reader fail on line 3.
	src := strings.NewReader("item,genre\nA,x\nB,\"x\n")
	_, _, err := testReader("genre").Read(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
