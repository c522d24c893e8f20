// Package tabular reads and writes the bank and attempt log as CSV,
// the interchange format for bulk import and backup downloads.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/quizbank/backend/internal/domain/history"
	"github.com/quizbank/backend/internal/domain/question"
)

// ReadQuestions parses question rows from a CSV source. The header row
// names the columns: question and answer are required per row (rows
// missing either are skipped, not errors), explanation/category/topic
// are optional, and every column whose name starts with "choice"
// (case-insensitive) contributes its non-empty cells as choices.
// Returned questions carry no identity; the bank assigns it on Add.
func ReadQuestions(r io.Reader) (questions []question.Question, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int)
	var choiceCols []int
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		cols[key] = i
		if strings.HasPrefix(key, "choice") {
			choiceCols = append(choiceCols, i)
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read row: %w", err)
		}

		cell := func(key string) string {
			i, ok := cols[key]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		text := cell("question")
		answer := cell("answer")
		if text == "" || answer == "" {
			skipped++
			continue
		}

		choices := []string{}
		for _, i := range choiceCols {
			if i < len(row) {
				if c := strings.TrimSpace(row[i]); c != "" {
					choices = append(choices, c)
				}
			}
		}

		questions = append(questions, question.Question{
			Category:    cell("category"),
			Topic:       cell("topic"),
			Text:        text,
			Choices:     choices,
			Answer:      answer,
			Explanation: cell("explanation"),
		})
	}

	return questions, skipped, nil
}

// WriteBank writes one row per question with choice columns padded to
// the widest question in the export.
func WriteBank(w io.Writer, b *question.Bank) error {
	maxChoices := 0
	for _, q := range b.Questions {
		if len(q.Choices) > maxChoices {
			maxChoices = len(q.Choices)
		}
	}

	header := []string{"id", "category", "topic", "question", "answer", "explanation"}
	for i := 1; i <= maxChoices; i++ {
		header = append(header, fmt.Sprintf("choice%d", i))
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, q := range b.Questions {
		row := []string{
			strconv.Itoa(q.IDNum), q.Category, q.Topic,
			q.Text, q.Answer, q.Explanation,
		}
		for i := 0; i < maxChoices; i++ {
			if i < len(q.Choices) {
				row = append(row, q.Choices[i])
			} else {
				row = append(row, "")
			}
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteAttempts writes one row per attempt. question_id resolves the
// display ordinal via qid lookup, or "N/A" when the question no longer
// exists in the bank.
func WriteAttempts(w io.Writer, b *question.Bank, h *history.History) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"question_id", "category", "topic", "correct", "timestamp", "qid"}); err != nil {
		return err
	}

	for _, a := range h.Attempts {
		idNum := "N/A"
		category, topic := "", ""
		if q, ok := b.Get(a.QID); ok {
			idNum = strconv.Itoa(q.IDNum)
			category = q.Category
			topic = q.Topic
		}
		row := []string{
			idNum, category, topic,
			strconv.FormatBool(a.Correct),
			a.Timestamp.UTC().Format(time.RFC3339),
			a.QID,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
