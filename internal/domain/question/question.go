package question

// Attachment describes a file stored alongside a question. The bank
// only carries the descriptor; the bytes live in the attachment store.
type Attachment struct {
	Name       string `json:"name"`
	StoredName string `json:"stored"`
	Path       string `json:"path"`
	Mime       string `json:"mime"`
}

// Question is a single multiple-choice item.
//
// Choices holds the canonical persisted order; quiz sessions present a
// shuffled copy and never write the shuffle back. Answer must match one
// of Choices exactly for the question to ever grade correct — this is
// not enforced at write time (see Bank.Lint).
type Question struct {
	QID         string       `json:"qid"`
	IDNum       int          `json:"id_num"`
	Category    string       `json:"category"`
	Topic       string       `json:"topic"`
	Text        string       `json:"question"`
	Choices     []string     `json:"choices"`
	Answer      string       `json:"answer"`
	Explanation string       `json:"explanation"`
	Attachments []Attachment `json:"attachments"`
}

// HasChoice reports whether s is one of the question's canonical choices.
func (q Question) HasChoice(s string) bool {
	for _, c := range q.Choices {
		if c == s {
			return true
		}
	}
	return false
}
