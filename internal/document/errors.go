package document

import "fmt"

// InvalidSectionError reports a toggle request for a section the document
// kind does not recognize. The selection is left unchanged.
type InvalidSectionError struct {
	Kind    Kind
	Section Section
}

func (e *InvalidSectionError) Error() string {
	return fmt.Sprintf("section %q is not valid for %s documents", e.Section, e.Kind)
}
