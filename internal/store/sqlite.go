// internal/store/sqlite.go
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/quizbank/backend/internal/domain/history"
	"github.com/quizbank/backend/internal/domain/question"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    qid TEXT PRIMARY KEY,
    id_num INTEGER NOT NULL,
    category TEXT NOT NULL,
    topic TEXT NOT NULL,
    question TEXT NOT NULL,
    choices TEXT NOT NULL,
    answer TEXT NOT NULL,
    explanation TEXT NOT NULL,
    attachments TEXT NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS user_answers (
    qid TEXT PRIMARY KEY,
    answer TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attempts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    qid TEXT NOT NULL,
    correct INTEGER NOT NULL,
    ts TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS flagged (
    qid TEXT PRIMARY KEY
);
`

// SQLiteStore is the database-backed alternative to the flat-file
// store. Saves replace the full record set inside one transaction so
// the overwrite semantics match the JSON store exactly.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Bank
// ============================================================================

func (s *SQLiteStore) LoadBank() (*question.Bank, error) {
	rows, err := s.db.Query(`
		SELECT qid, id_num, category, topic, question, choices, answer, explanation, attachments
		FROM questions ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bank := question.New()
	for rows.Next() {
		var q question.Question
		var choicesJSON, attachmentsJSON string
		if err := rows.Scan(&q.QID, &q.IDNum, &q.Category, &q.Topic, &q.Text,
			&choicesJSON, &q.Answer, &q.Explanation, &attachmentsJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(choicesJSON), &q.Choices); err != nil {
			q.Choices = []string{}
		}
		if err := json.Unmarshal([]byte(attachmentsJSON), &q.Attachments); err != nil {
			q.Attachments = []question.Attachment{}
		}
		bank.Questions = append(bank.Questions, q)
	}
	return bank, rows.Err()
}

func (s *SQLiteStore) SaveBank(b *question.Bank) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM questions"); err != nil {
		return err
	}

	for i, q := range b.Questions {
		choicesJSON, _ := json.Marshal(q.Choices)
		attachmentsJSON, _ := json.Marshal(q.Attachments)
		_, err := tx.Exec(`
			INSERT INTO questions (qid, id_num, category, topic, question, choices, answer, explanation, attachments, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, q.QID, q.IDNum, q.Category, q.Topic, q.Text,
			string(choicesJSON), q.Answer, q.Explanation, string(attachmentsJSON), i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ============================================================================
// History
// ============================================================================

func (s *SQLiteStore) LoadHistory() (*history.History, error) {
	h := history.Default()

	rows, err := s.db.Query("SELECT qid, answer FROM user_answers")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var qid, answer string
		if err := rows.Scan(&qid, &answer); err != nil {
			return nil, err
		}
		h.UserAnswers[qid] = answer
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	attemptRows, err := s.db.Query("SELECT qid, correct, ts FROM attempts ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer attemptRows.Close()
	for attemptRows.Next() {
		var a history.Attempt
		var ts string
		if err := attemptRows.Scan(&a.QID, &a.Correct, &ts); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse attempt timestamp %q: %w", ts, err)
		}
		a.Timestamp = parsed
		h.Attempts = append(h.Attempts, a)
	}
	if err := attemptRows.Err(); err != nil {
		return nil, err
	}

	flagRows, err := s.db.Query("SELECT qid FROM flagged")
	if err != nil {
		return nil, err
	}
	defer flagRows.Close()
	for flagRows.Next() {
		var qid string
		if err := flagRows.Scan(&qid); err != nil {
			return nil, err
		}
		h.Flagged = append(h.Flagged, qid)
	}
	return h, flagRows.Err()
}

func (s *SQLiteStore) SaveHistory(h *history.History) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"user_answers", "attempts", "flagged"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for qid, answer := range h.UserAnswers {
		if _, err := tx.Exec("INSERT INTO user_answers (qid, answer) VALUES (?, ?)", qid, answer); err != nil {
			return err
		}
	}
	for _, a := range h.Attempts {
		_, err := tx.Exec("INSERT INTO attempts (qid, correct, ts) VALUES (?, ?, ?)",
			a.QID, a.Correct, a.Timestamp.Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
	}
	for _, qid := range h.Flagged {
		if _, err := tx.Exec("INSERT INTO flagged (qid) VALUES (?)", qid); err != nil {
			return err
		}
	}

	return tx.Commit()
}
