// Package document builds the print-ready view models for the two document
// kinds, a résumé and a career statement, from a profile snapshot.
package document

// Kind selects which document variant to build.
type Kind string

// Document kinds.
const (
	KindResume          Kind = "resume"
	KindCareerStatement Kind = "career-statement"
)

// Section names a toggleable document section.
type Section string

// Sections. Introduce exists only on résumés.
const (
	SectionBasic     Section = "basic"
	SectionIntroduce Section = "introduce"
	SectionCareer    Section = "career"
	SectionSkills    Section = "skills"
	SectionEducation Section = "education"
	SectionProjects  Section = "projects"
)

// sectionOrder fixes the render order per document kind and doubles as the
// set of recognized sections for that kind.
var sectionOrder = map[Kind][]Section{
	KindResume: {
		SectionBasic, SectionIntroduce, SectionCareer,
		SectionSkills, SectionEducation, SectionProjects,
	},
	KindCareerStatement: {
		SectionBasic, SectionCareer, SectionProjects,
		SectionSkills, SectionEducation,
	},
}

// Sections returns the recognized sections for a kind in render order.
func Sections(kind Kind) []Section {
	order := sectionOrder[kind]
	out := make([]Section, len(order))
	copy(out, order)
	return out
}

// Selection is the page-lifetime toggle state recording which sections are
// included in a rendered document. It is never persisted.
type Selection struct {
	kind    Kind
	enabled map[Section]bool
}

// NewSelection creates the default selection for a document kind: every
// section visible, except that career statements start with education hidden.
func NewSelection(kind Kind) *Selection {
	enabled := make(map[Section]bool, len(sectionOrder[kind]))
	for _, sec := range sectionOrder[kind] {
		enabled[sec] = true
	}
	if kind == KindCareerStatement {
		enabled[SectionEducation] = false
	}
	return &Selection{kind: kind, enabled: enabled}
}

// Kind returns the document kind this selection belongs to.
func (s *Selection) Kind() Kind {
	return s.kind
}

// Enabled reports whether a section is currently included.
func (s *Selection) Enabled(sec Section) bool {
	return s.enabled[sec]
}

// Toggle flips one section's inclusion. Unrecognized sections fail with
// InvalidSectionError and leave the state unchanged.
func (s *Selection) Toggle(sec Section) error {
	if _, ok := s.enabled[sec]; !ok {
		return &InvalidSectionError{Kind: s.kind, Section: sec}
	}
	s.enabled[sec] = !s.enabled[sec]
	return nil
}

// Set forces one section's inclusion state, with the same recognition rule
// as Toggle.
func (s *Selection) Set(sec Section, on bool) error {
	if _, ok := s.enabled[sec]; !ok {
		return &InvalidSectionError{Kind: s.kind, Section: sec}
	}
	s.enabled[sec] = on
	return nil
}
