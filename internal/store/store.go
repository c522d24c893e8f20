package store

import (
	"errors"

	"github.com/quizbank/backend/internal/domain/history"
	"github.com/quizbank/backend/internal/domain/question"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store persists the question bank and the answer history. Both loads
// return the documented default when nothing has been saved yet; both
// saves overwrite the full record set, matching the single-profile
// flush-after-every-mutation model.
type Store interface {
	LoadBank() (*question.Bank, error)
	SaveBank(b *question.Bank) error
	LoadHistory() (*history.History, error)
	SaveHistory(h *history.History) error
	Close() error
}
