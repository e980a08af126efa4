package stats

import (
	"github.com/jaewoo/careerfolio/internal/profile"
)

// CurrentPosition identifies the active employment entry shown on the
// dashboard's "currently employed" card.
type CurrentPosition struct {
	Company   string            `json:"company"`
	Position  string            `json:"position"`
	StartDate profile.YearMonth `json:"start_date"`
}

// Dashboard is the aggregate payload backing the dashboard page.
type Dashboard struct {
	TotalTenure     profile.Duration `json:"total_tenure"`
	CareerCount     int              `json:"career_count"`
	SkillCount      int              `json:"skill_count"`
	ProjectCount    int              `json:"project_count"`
	EducationCount  int              `json:"education_count"`
	OtherItemCount  int              `json:"other_item_count"`
	BasicInfoSet    bool             `json:"basic_info_set"`
	Current         *CurrentPosition `json:"current,omitempty"`
	TechStackGroups []CategoryGroup  `json:"tech_stack_groups"`
}

// BuildDashboard derives the dashboard aggregates from a profile snapshot.
// Tenure is recomputed against now on every call, so an open-ended career's
// figure grows as time passes.
func BuildDashboard(snap *profile.Snapshot, now profile.YearMonth) Dashboard {
	d := Dashboard{
		TotalTenure:     profile.TotalTenure(snap.Careers, now),
		CareerCount:     len(snap.Careers),
		SkillCount:      len(snap.Skills),
		ProjectCount:    len(snap.Projects),
		EducationCount:  len(snap.Educations),
		OtherItemCount:  len(snap.OtherItems),
		BasicInfoSet:    snap.BasicInfo != nil && snap.BasicInfo.Name != "",
		TechStackGroups: AggregateTechStack(snap.Projects).Groups,
	}
	for i := range snap.Careers {
		c := &snap.Careers[i]
		if c.Current {
			d.Current = &CurrentPosition{
				Company:   c.Company,
				Position:  c.Position,
				StartDate: c.StartDate,
			}
			break
		}
	}
	return d
}
