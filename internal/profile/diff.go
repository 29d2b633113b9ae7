package profile

// ComputeDiff computes the minimal ChangeSet between the remote snapshot and
// the local form state.
//
// Every scalar field present in form is coerced per its schema kind and
// included iff it differs from the remote value. Attachment slots resolve
// independently, in precedence order:
//
//  1. a pending local file supersedes everything else;
//  2. an explicit removal marker, when the remote slot currently holds a
//     value, emits a removal directive;
//  3. otherwise the slot is omitted.
func ComputeDiff(schema Schema, remote Record, form FormValues, attachments map[string]*AttachmentState) (*ChangeSet, error) {
	cs := &ChangeSet{
		Fields:  make(map[string]any),
		Uploads: make(map[string]*PendingAttachment),
	}

	for _, spec := range schema.Fields {
		raw, ok := form[spec.Name]
		if !ok {
			continue
		}
		coerced, err := Coerce(spec, raw)
		if err != nil {
			return nil, err
		}
		if !valuesEqual(spec, coerced, remote[spec.Name]) {
			cs.Fields[spec.Name] = coerced
		}
	}

	for _, slot := range schema.Slots {
		st := attachments[slot]
		if st == nil {
			continue
		}
		switch {
		case st.Pending != nil:
			cs.Uploads[slot] = st.Pending
		case st.Removed && remote.slotValue(slot) != "":
			cs.Removals = append(cs.Removals, slot)
		}
	}

	return cs, nil
}

// valuesEqual compares a coerced form value against the remote value after
// normalizing the remote's JSON representation. Strings compare strictly;
// a nil remote equals the empty string. Lines compare as ordered sequences,
// tags as unordered sets.
func valuesEqual(spec FieldSpec, coerced any, remote any) bool {
	switch spec.Kind {
	case KindInt:
		n, _ := coerced.(int)
		return n == remoteInt(remote)

	case KindLines:
		lines, _ := coerced.(Lines)
		return equalOrdered(lines, remoteStrings(remote))

	case KindTags:
		tags, _ := coerced.(Tags)
		return equalSet(tags, remoteStrings(remote))

	default:
		s, _ := coerced.(string)
		if remote == nil {
			return s == ""
		}
		rs, ok := remote.(string)
		return ok && s == rs
	}
}

func equalOrdered(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalSet(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(b))
	for _, t := range b {
		seen[t] = struct{}{}
	}
	for _, t := range a {
		if _, ok := seen[t]; !ok {
			return false
		}
	}
	return true
}
