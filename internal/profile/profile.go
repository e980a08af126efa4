// Package profile defines the profile entity types shared by the record
// store, the document builder and the statistics aggregators, together with
// the month-granularity date arithmetic they rely on.
package profile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Skill proficiency levels. The scale is ordinal: 1 basic, 2 working, 3 expert.
const (
	SkillLevelBasic   = 1
	SkillLevelWorking = 2
	SkillLevelExpert  = 3
)

// Logo fit modes controlling how an uploaded logo is placed in its frame.
const (
	LogoFitContain = "contain"
	LogoFitCover   = "cover"
)

// BasicInfo is the singleton per-user profile header. It is created on first
// save and updated thereafter; there is no delete.
type BasicInfo struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	EnglishName  string    `json:"english_name,omitempty"`
	Nickname     string    `json:"nickname,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	GitHub       string    `json:"github,omitempty"`
	Blog         string    `json:"blog,omitempty"`
	LinkedIn     string    `json:"linkedin,omitempty"`
	Introduction string    `json:"introduction,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Career is one employment history entry. Exactly one of EndDate and Current
// holds the open-end state: a current position has no end date.
type Career struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    YearMonth  `json:"start_date"`
	EndDate      *YearMonth `json:"end_date,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
	Achievements []string   `json:"achievements"`
	Logo         string     `json:"logo,omitempty"`
	LogoFit      string     `json:"logo_fit,omitempty"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CheckDates verifies the open-end invariant: an entry is either current with
// no end date, or closed with one. Duration math never relies on this holding;
// it clamps instead (see CareerDuration).
func (c *Career) CheckDates() error {
	if c.Current && c.EndDate != nil {
		return fmt.Errorf("career %s: current entries cannot carry an end date", c.Company)
	}
	if !c.Current && c.EndDate == nil {
		return fmt.Errorf("career %s: non-current entries require an end date", c.Company)
	}
	return nil
}

// EndOrNow resolves the effective end month for duration math. Open-ended
// entries resolve to now at every call so displayed durations keep growing.
func (c *Career) EndOrNow(now YearMonth) YearMonth {
	if c.Current || c.EndDate == nil {
		return now
	}
	return *c.EndDate
}

// Education is one schooling entry. Both dates are required; there is no
// "currently enrolled" concept.
type Education struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	School       string    `json:"school"`
	Major        string    `json:"major"`
	Degree       string    `json:"degree"`
	StartDate    YearMonth `json:"start_date"`
	EndDate      YearMonth `json:"end_date"`
	GPA          string    `json:"gpa,omitempty"`
	Logo         string    `json:"logo,omitempty"`
	LogoFit      string    `json:"logo_fit,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Project is one project entry with its tech-stack tags and achievements.
type Project struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    YearMonth `json:"start_date"`
	EndDate      YearMonth `json:"end_date"`
	Role         string    `json:"role"`
	TechStack    []string  `json:"tech_stack"`
	Achievements []string  `json:"achievements"`
	URL          string    `json:"url,omitempty"`
	Logo         string    `json:"logo,omitempty"`
	LogoFit      string    `json:"logo_fit,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Skill is one proficiency entry. Skills carry no persisted order; they are
// grouped by category at render time.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// OtherItem is a miscellaneous achievement: certification, award, talk and
// the like. Category is free text with a suggested vocabulary, not enforced.
type OtherItem struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Category     string     `json:"category"`
	Title        string     `json:"title"`
	Organization string     `json:"organization,omitempty"`
	Date         *YearMonth `json:"date,omitempty"`
	Description  string     `json:"description,omitempty"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Snapshot bundles a user's full profile as fetched from the record store.
// Collections arrive ordered by display_order where one is persisted.
type Snapshot struct {
	BasicInfo  *BasicInfo  `json:"basic_info,omitempty"`
	Careers    []Career    `json:"careers"`
	Skills     []Skill     `json:"skills"`
	Educations []Education `json:"educations"`
	Projects   []Project   `json:"projects"`
	OtherItems []OtherItem `json:"other_items"`
}
