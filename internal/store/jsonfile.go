// internal/store/jsonfile.go
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quizbank/backend/internal/domain/history"
	"github.com/quizbank/backend/internal/domain/question"
)

const (
	bankFile  = "question_bank.json"
	statsFile = "stats.json"
)

// JSONStore keeps the bank and history in two flat JSON files under a
// data directory. Every save is a whole-file rewrite; a missing or
// unreadable file loads as the default value, never as an error.
type JSONStore struct {
	bankPath  string
	statsPath string
}

// NewJSON creates the data directory if needed and returns a store
// rooted there.
func NewJSON(dataDir string) (*JSONStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONStore{
		bankPath:  filepath.Join(dataDir, bankFile),
		statsPath: filepath.Join(dataDir, statsFile),
	}, nil
}

func (s *JSONStore) LoadBank() (*question.Bank, error) {
	data, err := os.ReadFile(s.bankPath)
	if err != nil {
		return question.New(), nil
	}

	var questions []question.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return question.New(), nil
	}
	return &question.Bank{Questions: questions}, nil
}

func (s *JSONStore) SaveBank(b *question.Bank) error {
	return writeJSON(s.bankPath, b.Questions)
}

func (s *JSONStore) LoadHistory() (*history.History, error) {
	data, err := os.ReadFile(s.statsPath)
	if err != nil {
		return history.Default(), nil
	}

	h := history.Default()
	if err := json.Unmarshal(data, h); err != nil {
		return history.Default(), nil
	}
	h.Normalize()
	return h, nil
}

func (s *JSONStore) SaveHistory(h *history.History) error {
	return writeJSON(s.statsPath, h)
}

func (s *JSONStore) Close() error { return nil }

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
