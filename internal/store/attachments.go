package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quizbank/backend/internal/domain/question"
	"github.com/quizbank/backend/internal/id"
)

// AttachmentStore keeps attachment bytes under one directory per qid.
// Descriptors on the question carry the stored path; Open serves the
// bytes back for downloads.
type AttachmentStore struct {
	root string
}

// NewAttachments roots the attachment tree under dataDir/attachments.
func NewAttachments(dataDir string) (*AttachmentStore, error) {
	root := filepath.Join(dataDir, "attachments")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create attachment dir: %w", err)
	}
	return &AttachmentStore{root: root}, nil
}

// Save stores the file under the question's folder and returns the
// descriptor to append to the question's attachment list.
func (a *AttachmentStore) Save(qid string, data []byte, name, mime string) (question.Attachment, error) {
	folder := filepath.Join(a.root, qid)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return question.Attachment{}, fmt.Errorf("create attachment folder: %w", err)
	}

	stored := id.NewStoredName(name)
	path := filepath.Join(folder, stored)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return question.Attachment{}, fmt.Errorf("write attachment: %w", err)
	}

	return question.Attachment{
		Name:       strings.ReplaceAll(name, "/", "_"),
		StoredName: stored,
		Path:       path,
		Mime:       mime,
	}, nil
}

// Open returns the stored file for a descriptor path, refusing paths
// that escape the attachment root.
func (a *AttachmentStore) Open(path string) (*os.File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	rootAbs, err := filepath.Abs(a.root)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(abs, rootAbs+string(filepath.Separator)) {
		return nil, ErrNotFound
	}
	f, err := os.Open(abs)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return f, err
}
