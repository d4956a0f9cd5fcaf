// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mithua/smr/internal/smr"
)

// Sentinel errors for malformed tables.
var (
	// ErrEmptyTable is returned when the input holds no header record.
	ErrEmptyTable = errors.New("ingest: empty table")

	// ErrMissingColumn is returned when the item column or a requested tag
	// type column is absent from the header.
	ErrMissingColumn = errors.New("ingest: missing column")

	// ErrColumnCollision is returned when a tag type column shares its name
	// with the item column.
	ErrColumnCollision = errors.New("ingest: tag type column equals item column")
)

// Stats summarizes one read.
type Stats struct {
	Rows     int           `json:"rows"`
	Columns  int           `json:"columns"`
	Duration time.Duration `json:"duration"`
}

// Reader reads transaction tables from CSV input.
type Reader struct {
	itemColumn string
	tagTypes   []string
	logger     zerolog.Logger
}

// NewReader creates a Reader for tables keyed by itemColumn with the given
// tag type columns.
func NewReader(itemColumn string, tagTypes []string, logger zerolog.Logger) *Reader {
	return &Reader{
		itemColumn: itemColumn,
		tagTypes:   append([]string(nil), tagTypes...),
		logger:     logger.With().Str("component", "ingest").Logger(),
	}
}

// ReadFile reads a CSV transaction table from a file.
func (r *Reader) ReadFile(path string) ([]smr.Row, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	rows, stats, err := r.Read(f)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	r.logger.Info().
		Str("path", path).
		Int("rows", stats.Rows).
		Dur("duration", stats.Duration).
		Msg("transaction table loaded")
	return rows, stats, nil
}

// Read reads a CSV transaction table. The first record is the header; it
// must contain the item column and every configured tag type column.
func (r *Reader) Read(src io.Reader) ([]smr.Row, Stats, error) {
	start := time.Now()

	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, Stats{}, ErrEmptyTable
	}
	if err != nil {
		return nil, Stats{}, fmt.Errorf("ingest: header: %w", err)
	}
	if err := r.validateHeader(header); err != nil {
		return nil, Stats{}, err
	}

	var rows []smr.Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, Stats{}, fmt.Errorf("ingest: line %d: %w", line, err)
		}
		row := make(smr.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, Stats{
		Rows:     len(rows),
		Columns:  len(header),
		Duration: time.Since(start),
	}, nil
}

func (r *Reader) validateHeader(header []string) error {
	cols := make(map[string]struct{}, len(header))
	for _, c := range header {
		cols[c] = struct{}{}
	}
	if _, ok := cols[r.itemColumn]; !ok {
		return fmt.Errorf("%w: item column %q", ErrMissingColumn, r.itemColumn)
	}
	for _, tt := range r.tagTypes {
		if tt == r.itemColumn {
			return fmt.Errorf("%w: %q", ErrColumnCollision, tt)
		}
		if _, ok := cols[tt]; !ok {
			return fmt.Errorf("%w: tag type column %q", ErrMissingColumn, tt)
		}
	}
	return nil
}
