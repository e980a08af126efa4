package document

import (
	"github.com/jaewoo/careerfolio/internal/profile"
)

// maxAchievementLevel caps display nesting regardless of how deep the
// indentation goes.
const maxAchievementLevel = 2

// Achievement is one achievement line with its derived display nesting
// level. The level is computed once here so rendering never re-derives it.
type Achievement struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// NestingLevel derives the display nesting level from an achievement
// string's leading-space indentation: two spaces per level, capped at 2.
func NestingLevel(s string) int {
	spaces := 0
	for _, r := range s {
		if r != ' ' {
			break
		}
		spaces++
	}
	level := spaces / 2
	if level > maxAchievementLevel {
		level = maxAchievementLevel
	}
	return level
}

func buildAchievements(lines []string) []Achievement {
	out := make([]Achievement, 0, len(lines))
	for _, line := range lines {
		level := NestingLevel(line)
		text := line
		for len(text) > 0 && text[0] == ' ' {
			text = text[1:]
		}
		out = append(out, Achievement{Text: text, Level: level})
	}
	return out
}

// LevelDescription is one row of the résumé's skill proficiency legend.
type LevelDescription struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// levelLegend describes the 1..3 proficiency scale. Shown on résumés only.
var levelLegend = []LevelDescription{
	{Level: profile.SkillLevelExpert, Text: "Deep knowledge and experience, handles work independently"},
	{Level: profile.SkillLevelWorking, Text: "Not fully fluent, but able to carry out day-to-day work"},
	{Level: profile.SkillLevelBasic, Text: "Basic hands-on experience and enough knowledge to collaborate"},
}

// CareerEntry is one employment entry shaped for rendering. Duration is set
// for résumés only; MalformedDates flags entries whose range was clamped.
type CareerEntry struct {
	Company        string             `json:"company"`
	Position       string             `json:"position"`
	StartDate      profile.YearMonth  `json:"start_date"`
	EndDate        *profile.YearMonth `json:"end_date,omitempty"`
	Current        bool               `json:"current"`
	Description    string             `json:"description,omitempty"`
	Achievements   []Achievement      `json:"achievements"`
	Logo           string             `json:"logo,omitempty"`
	LogoFit        string             `json:"logo_fit,omitempty"`
	Duration       *profile.Duration  `json:"duration,omitempty"`
	MalformedDates bool               `json:"malformed_dates,omitempty"`
}

// CareerData is the career section payload. TotalTenure is the aggregate
// badge shown on résumés only.
type CareerData struct {
	TotalTenure *profile.Duration `json:"total_tenure,omitempty"`
	Entries     []CareerEntry     `json:"entries"`
}

// ProjectEntry is one project entry shaped for rendering.
type ProjectEntry struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	StartDate    profile.YearMonth `json:"start_date"`
	EndDate      profile.YearMonth `json:"end_date"`
	Role         string            `json:"role"`
	TechStack    []string          `json:"tech_stack"`
	Achievements []Achievement     `json:"achievements"`
	URL          string            `json:"url,omitempty"`
	Logo         string            `json:"logo,omitempty"`
	LogoFit      string            `json:"logo_fit,omitempty"`
}

// SkillsData is the skills section payload. Legend is present on résumés
// only; career statements list levels without the legend text.
type SkillsData struct {
	Legend []LevelDescription   `json:"legend,omitempty"`
	Groups []profile.SkillGroup `json:"groups"`
}

// IntroduceData is the résumé's free-text introduction section payload.
type IntroduceData struct {
	Text string `json:"text"`
}

// DocumentSection is one rendered section: its name and its per-kind data
// payload.
type DocumentSection struct {
	Kind Section `json:"kind"`
	Data any     `json:"data"`
}

// Document is the render-ready view model for one document variant.
type Document struct {
	Kind     Kind              `json:"kind"`
	Sections []DocumentSection `json:"sections"`
}

// Build produces the view model for the selection's document kind from a
// profile snapshot. It is a pure function of its inputs: now is passed in
// rather than read from the clock, inputs are never mutated, and identical
// inputs always yield an identical document.
//
// A section appears only when it is enabled and its backing data is
// non-empty; an enabled section over an empty collection is dropped.
func Build(sel *Selection, snap *profile.Snapshot, now profile.YearMonth) *Document {
	kind := sel.Kind()
	doc := &Document{Kind: kind, Sections: []DocumentSection{}}

	for _, sec := range sectionOrder[kind] {
		if !sel.Enabled(sec) {
			continue
		}
		var data any
		switch sec {
		case SectionBasic:
			if snap.BasicInfo == nil {
				continue
			}
			data = snap.BasicInfo
		case SectionIntroduce:
			if snap.BasicInfo == nil || snap.BasicInfo.Introduction == "" {
				continue
			}
			data = IntroduceData{Text: snap.BasicInfo.Introduction}
		case SectionCareer:
			if len(snap.Careers) == 0 {
				continue
			}
			data = buildCareerData(kind, snap.Careers, now)
		case SectionSkills:
			if len(snap.Skills) == 0 {
				continue
			}
			data = buildSkillsData(kind, snap.Skills)
		case SectionEducation:
			if len(snap.Educations) == 0 {
				continue
			}
			data = EducationData{Entries: snap.Educations}
		case SectionProjects:
			if len(snap.Projects) == 0 {
				continue
			}
			data = buildProjectsData(snap.Projects)
		}
		doc.Sections = append(doc.Sections, DocumentSection{Kind: sec, Data: data})
	}
	return doc
}

// EducationData is the education section payload.
type EducationData struct {
	Entries []profile.Education `json:"entries"`
}

// ProjectsData is the projects section payload.
type ProjectsData struct {
	Entries []ProjectEntry `json:"entries"`
}

func buildCareerData(kind Kind, careers []profile.Career, now profile.YearMonth) CareerData {
	data := CareerData{Entries: make([]CareerEntry, 0, len(careers))}
	if kind == KindResume {
		total := profile.TotalTenure(careers, now)
		data.TotalTenure = &total
	}
	for i := range careers {
		c := &careers[i]
		entry := CareerEntry{
			Company:      c.Company,
			Position:     c.Position,
			StartDate:    c.StartDate,
			EndDate:      c.EndDate,
			Current:      c.Current,
			Description:  c.Description,
			Achievements: buildAchievements(c.Achievements),
			Logo:         c.Logo,
			LogoFit:      c.LogoFit,
		}
		d, ok := profile.CareerDuration(c, now)
		entry.MalformedDates = !ok
		if kind == KindResume {
			dur := d
			entry.Duration = &dur
		}
		data.Entries = append(data.Entries, entry)
	}
	return data
}

func buildSkillsData(kind Kind, skills []profile.Skill) SkillsData {
	data := SkillsData{Groups: profile.GroupSkillsByCategory(skills)}
	if kind == KindResume {
		data.Legend = levelLegend
	}
	return data
}

func buildProjectsData(projects []profile.Project) ProjectsData {
	data := ProjectsData{Entries: make([]ProjectEntry, 0, len(projects))}
	for i := range projects {
		p := &projects[i]
		data.Entries = append(data.Entries, ProjectEntry{
			Name:         p.Name,
			Description:  p.Description,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Role:         p.Role,
			TechStack:    p.TechStack,
			Achievements: buildAchievements(p.Achievements),
			URL:          p.URL,
			Logo:         p.Logo,
			LogoFit:      p.LogoFit,
		})
	}
	return data
}
