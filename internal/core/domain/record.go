package domain

// FieldStatus classifies the outcome of extracting one tag.
type FieldStatus int

const (
	// FieldAbsent indicates the tag does not occur in the document.
	FieldAbsent FieldStatus = iota

	// FieldPresent indicates the tag was found and extracted.
	FieldPresent

	// FieldMalformed indicates the tag was found but could not be extracted.
	FieldMalformed
)

// String returns the string representation.
func (s FieldStatus) String() string {
	switch s {
	case FieldAbsent:
		return "absent"
	case FieldPresent:
		return "present"
	case FieldMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// FieldResult is the extraction outcome for one tag of the tag set.
type FieldResult struct {
	// Tag is the element name that was searched for.
	Tag string

	// Status says whether the tag was absent, extracted or malformed.
	Status FieldStatus

	// Value is the extracted value when Status is FieldPresent.
	// A single match yields a string or *Mapping, several matches a []any.
	Value any

	// Err is the extraction error when Status is FieldMalformed.
	Err error
}

// Absent returns the result for a tag with no matches.
func Absent(tag string) FieldResult {
	return FieldResult{Tag: tag, Status: FieldAbsent}
}

// Present returns the result for a successfully extracted tag.
func Present(tag string, value any) FieldResult {
	return FieldResult{Tag: tag, Status: FieldPresent, Value: value}
}

// Malformed returns the result for a tag whose extraction failed.
func Malformed(tag string, err error) FieldResult {
	return FieldResult{Tag: tag, Status: FieldMalformed, Err: err}
}

// Cell returns the value written to the corpus table.
// Absent and malformed fields are both written as null.
func (f FieldResult) Cell() any {
	if f.Status != FieldPresent {
		return nil
	}
	return f.Value
}

// Record is one flattened corpus document.
type Record struct {
	// URI is the file the record was extracted from.
	URI string

	// Fields holds one result per tag, in tag set order.
	Fields []FieldResult
}

// Field returns the result for tag.
func (r *Record) Field(tag string) (FieldResult, bool) {
	for _, f := range r.Fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return FieldResult{}, false
}

// Row converts the record into an ordered table row.
func (r *Record) Row() *Mapping {
	row := NewMapping()
	for _, f := range r.Fields {
		row.Set(f.Tag, f.Cell())
	}
	return row
}

// MalformedTags returns the tags whose extraction failed.
func (r *Record) MalformedTags() []string {
	var tags []string
	for _, f := range r.Fields {
		if f.Status == FieldMalformed {
			tags = append(tags, f.Tag)
		}
	}
	return tags
}
