// Package seedfile reads the items a session starts with from a JSON file.
// The file is only ever read: edits made during a session are not written
// back.
package seedfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/idilsaglam/crimson/internal/model"
)

// Load reads a JSON array of items from path. A missing file yields no
// items and no error.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// FromTexts turns plain texts into pending items without ids.
func FromTexts(texts []string) []model.Item {
	out := make([]model.Item, 0, len(texts))
	for _, t := range texts {
		out = append(out, model.Item{Text: t})
	}
	return out
}
