package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"

	"github.com/talenthub/talenthub-cli/internal/profile"
)

// encodeChangeSet renders a ChangeSet as a multipart/form-data body:
// scalar fields as form fields, uploads as file parts keyed by their slot,
// removal directives as remove<Slot>=true fields. Map iteration is sorted
// so the payload is deterministic.
func encodeChangeSet(cs *profile.ChangeSet) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := make([]string, 0, len(cs.Fields))
	for name := range cs.Fields {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	for _, name := range fields {
		if err := writeField(w, name, cs.Fields[name]); err != nil {
			return nil, "", err
		}
	}

	slots := make([]string, 0, len(cs.Uploads))
	for slot := range cs.Uploads {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	for _, slot := range slots {
		att := cs.Uploads[slot]
		fw, err := w.CreateFormFile(slot, att.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := fw.Write(att.Data); err != nil {
			return nil, "", err
		}
	}

	for _, slot := range cs.Removals {
		if err := w.WriteField(profile.RemovalDirective(slot), "true"); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func writeField(w *multipart.Writer, name string, value any) error {
	switch v := value.(type) {
	case string:
		return w.WriteField(name, v)
	case int:
		return w.WriteField(name, strconv.Itoa(v))
	case profile.Lines:
		return w.WriteField(name, strings.Join(v, "\n"))
	case profile.Tags:
		// Repeated parts, one per tag.
		for _, tag := range v {
			if err := w.WriteField(name, tag); err != nil {
				return err
			}
		}
		return nil
	default:
		return w.WriteField(name, fmt.Sprintf("%v", v))
	}
}
