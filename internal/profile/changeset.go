package profile

import (
	"fmt"
	"strings"

	"github.com/talenthub/talenthub-cli/internal/common"
)

// PendingAttachment is a locally chosen file that has not been uploaded.
type PendingAttachment struct {
	Name string
	Size int64
	Data []byte
}

// NewPendingAttachment validates the size cap and wraps the file content.
func NewPendingAttachment(name string, data []byte) (*PendingAttachment, error) {
	if int64(len(data)) > common.MaxAttachmentSize {
		return nil, fmt.Errorf("%s: %w", name, common.ErrFileTooLarge)
	}
	return &PendingAttachment{Name: name, Size: int64(len(data)), Data: data}, nil
}

// AttachmentState tracks the local intent for one attachment slot. Pending
// and Removed may both be set; resolution order gives a pending file
// precedence over removal.
type AttachmentState struct {
	Pending *PendingAttachment
	Removed bool
}

// ChangeSet is the minimal submission computed between a remote record and
// local edits: changed scalar fields, new attachment uploads, and removal
// directives for existing remote attachments.
type ChangeSet struct {
	Fields   map[string]any
	Uploads  map[string]*PendingAttachment
	Removals []string
}

// Empty reports whether the ChangeSet carries nothing to submit. An empty
// set must not produce a network call.
func (cs *ChangeSet) Empty() bool {
	return len(cs.Fields) == 0 && len(cs.Uploads) == 0 && len(cs.Removals) == 0
}

// RemovalDirective is the form key instructing the server to unset an
// attachment slot, e.g. "removeCvFile" for slot "cvFile".
func RemovalDirective(slot string) string {
	if slot == "" {
		return ""
	}
	return "remove" + strings.ToUpper(slot[:1]) + slot[1:]
}
