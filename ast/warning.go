package ast

// WarningCode categorizes a non-fatal issue recorded while reading or
// writing a document (spec §7: PartialParse and Constraint never become
// fatal errors, they accumulate here instead).
type WarningCode string

const (
	// WarningPartialParse marks a part or PDF page that could not be
	// fully interpreted; the rest of the document is still usable.
	WarningPartialParse WarningCode = "partial_parse"

	// WarningConstraintClamped marks a value that violated a format
	// invariant and was clamped to the nearest legal value.
	WarningConstraintClamped WarningCode = "constraint_clamped"

	// WarningUnknownExtension marks an attribute or element the reader
	// did not recognize but preserved verbatim.
	WarningUnknownExtension WarningCode = "unknown_extension"
)

// Warning is a single non-fatal diagnostic attached to a Document.
type Warning struct {
	Code    WarningCode
	Part    string // the package part or PDF page this warning came from
	Message string
}

func (w Warning) String() string {
	if w.Part == "" {
		return string(w.Code) + ": " + w.Message
	}
	return string(w.Code) + " [" + w.Part + "]: " + w.Message
}
