package profile

import (
	"context"
	"fmt"

	"github.com/talenthub/talenthub-cli/internal/common"
)

// Updater submits a partial update for a record and returns the server's
// authoritative version. Implemented by the API client.
type Updater interface {
	UpdateProfile(ctx context.Context, role string, id string, cs *ChangeSet) (Record, error)
}

// Form holds one record's editing session: the last known server state, the
// live edits, and the per-slot attachment intents. A Form is not safe for
// concurrent use; the caller drives it from a single goroutine, and the
// explicit in-flight guard rejects a save started while another is
// outstanding.
type Form struct {
	schema      Schema
	role        string
	id          string
	remote      Record
	values      FormValues
	attachments map[string]*AttachmentState
	saving      bool
}

// NewForm seeds an editing session from the remote snapshot. All schema
// fields are rendered into raw form values.
func NewForm(schema Schema, role string, id string, remote Record) *Form {
	values := make(FormValues, len(schema.Fields))
	for _, spec := range schema.Fields {
		values[spec.Name] = FormatValue(spec, remote[spec.Name])
	}
	return &Form{
		schema:      schema,
		role:        role,
		id:          id,
		remote:      remote,
		values:      values,
		attachments: make(map[string]*AttachmentState),
	}
}

// Set records a field edit. Unknown fields are rejected.
func (f *Form) Set(field string, value string) error {
	if _, ok := f.schema.Field(field); !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	f.values[field] = value
	return nil
}

// Value returns the current raw value of a field.
func (f *Form) Value(field string) string { return f.values[field] }

// Fields returns the schema field specs, in declaration order.
func (f *Form) Fields() []FieldSpec { return f.schema.Fields }

// Slots returns the schema attachment slot names.
func (f *Form) Slots() []string { return f.schema.Slots }

// Remote returns the last known server state.
func (f *Form) Remote() Record { return f.remote }

// Attach stages a locally chosen file for slot. Files over the size cap are
// rejected with common.ErrFileTooLarge. A staged file supersedes an earlier
// removal mark on the same slot.
func (f *Form) Attach(slot string, name string, data []byte) error {
	if !f.schema.HasSlot(slot) {
		return fmt.Errorf("unknown attachment slot %q", slot)
	}
	pending, err := NewPendingAttachment(name, data)
	if err != nil {
		return err
	}
	st := f.attachmentState(slot)
	st.Pending = pending
	return nil
}

// ClearAttachment marks the slot's existing remote value for removal and
// drops any staged file.
func (f *Form) ClearAttachment(slot string) error {
	if !f.schema.HasSlot(slot) {
		return fmt.Errorf("unknown attachment slot %q", slot)
	}
	st := f.attachmentState(slot)
	st.Pending = nil
	st.Removed = true
	return nil
}

// Saving reports whether a save is currently outstanding.
func (f *Form) Saving() bool { return f.saving }

// Diff computes the pending ChangeSet without submitting it.
func (f *Form) Diff() (*ChangeSet, error) {
	return ComputeDiff(f.schema, f.remote, f.values, f.attachments)
}

// Save computes the diff and issues at most one partial-update request.
//
// When nothing changed, Save returns common.ErrNoChanges without touching
// the network. On success the remote snapshot is replaced by the server's
// authoritative record and all attachment intents are cleared; on failure
// both the snapshot and the local edits are left untouched so the caller
// can retry.
func (f *Form) Save(ctx context.Context, u Updater) (Record, error) {
	if f.saving {
		return nil, common.ErrSaveInFlight
	}
	f.saving = true
	defer func() { f.saving = false }()

	cs, err := f.Diff()
	if err != nil {
		return nil, err
	}
	if cs.Empty() {
		return nil, common.ErrNoChanges
	}

	updated, err := u.UpdateProfile(ctx, f.role, f.id, cs)
	if err != nil {
		return nil, err
	}

	f.remote = updated
	f.attachments = make(map[string]*AttachmentState)
	return updated, nil
}

func (f *Form) attachmentState(slot string) *AttachmentState {
	st, ok := f.attachments[slot]
	if !ok {
		st = &AttachmentState{}
		f.attachments[slot] = st
	}
	return st
}
