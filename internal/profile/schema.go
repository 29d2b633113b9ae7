// Package profile implements the client-side synchronization engine for
// profile and job records: schema-driven field diffing, attachment
// resolution, and conditional partial-update submission.
package profile

// FieldKind selects the typed coercion and comparison applied to a field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInt
	KindLines
	KindTags
)

// FieldSpec describes one scalar field of a record type.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// Schema is the static field list of a record type. Fields are iterated in
// declaration order, which keeps submissions deterministic. Slots name the
// attachment fields; they never appear in Fields.
type Schema struct {
	Fields []FieldSpec
	Slots  []string
}

// Field returns the spec for name, if declared.
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// HasSlot reports whether name is a declared attachment slot.
func (s Schema) HasSlot(name string) bool {
	for _, slot := range s.Slots {
		if slot == name {
			return true
		}
	}
	return false
}

// TalentSchema describes a talent profile record.
var TalentSchema = Schema{
	Fields: []FieldSpec{
		{Name: "firstName", Kind: KindString, Required: true},
		{Name: "lastName", Kind: KindString, Required: true},
		{Name: "email", Kind: KindString, Required: true},
		{Name: "phoneNumber", Kind: KindString, Required: true},
	},
	Slots: []string{"cvFile"},
}

// CompanySchema describes a recruiter's company profile record.
var CompanySchema = Schema{
	Fields: []FieldSpec{
		{Name: "companyName", Kind: KindString, Required: true},
		{Name: "email", Kind: KindString, Required: true},
		{Name: "companySize", Kind: KindString},
		{Name: "location", Kind: KindString},
		{Name: "description", Kind: KindString},
		{Name: "phoneNumber", Kind: KindString},
	},
	Slots: []string{"logo", "banner"},
}

// JobSchema describes a job posting form.
var JobSchema = Schema{
	Fields: []FieldSpec{
		{Name: "title", Kind: KindString, Required: true},
		{Name: "description", Kind: KindString, Required: true},
		{Name: "location", Kind: KindString, Required: true},
		{Name: "salary", Kind: KindInt, Required: true},
		{Name: "tags", Kind: KindTags},
		{Name: "requirements", Kind: KindLines, Required: true},
	},
}
