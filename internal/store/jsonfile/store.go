// Package jsonfile persists orders and reviews as indented JSON arrays, one
// file per record type, so the data stays human-diffable. Loads are
// best-effort: a missing or corrupt file reads as an empty list rather than
// an error, because losing a local record is preferable to blocking the
// ordering flow.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// New ensures the data directory exists and returns repositories backed by
// orders.json and reviews.json inside it.
func New(dir string) (*OrderRepository, *ReviewRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return NewOrderRepository(dir), NewReviewRepository(dir), nil
}

// load reads a JSON array of records. Absent and undecodable files both
// yield an empty slice.
func load[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}

	return records
}

// persist overwrites the backing file with the full record list, via a temp
// file and rename so a crash mid-write never truncates existing data.
func persist[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}

	return nil
}
