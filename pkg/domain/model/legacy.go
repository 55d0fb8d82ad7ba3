package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// legacyDream accepts journal exports from older app versions, which used
// "description" for the narrative field instead of "content".
type legacyDream struct {
	Dream
	Description string `json:"description"`
}

// DecodeJournal decodes a serialized journal. It accepts both the current
// field names and the legacy "description" field, so old exports import
// losslessly.
func DecodeJournal(data []byte) ([]*Dream, error) {
	var entries []legacyDream
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, goerr.Wrap(err, "failed to decode journal")
	}

	dreams := make([]*Dream, 0, len(entries))
	for i := range entries {
		d := entries[i].Dream
		if d.Content == "" && entries[i].Description != "" {
			d.Content = entries[i].Description
		}
		dreams = append(dreams, &d)
	}
	return dreams, nil
}

// EncodeJournal serializes a journal with the current field names
func EncodeJournal(dreams []*Dream) ([]byte, error) {
	data, err := json.MarshalIndent(dreams, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode journal")
	}
	return data, nil
}
