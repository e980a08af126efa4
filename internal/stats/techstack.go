// Package stats computes the dashboard aggregates: the tech-stack treemap
// buckets and the profile summary figures.
package stats

import (
	"github.com/jaewoo/careerfolio/internal/profile"
)

// Tech-stack category names. The dashboard renders a fixed quadrant layout,
// so only the five named categories are ever emitted; "other" is an internal
// bucket that is counted but not shown.
const (
	CategoryFrontend   = "frontend"
	CategoryBackend    = "backend"
	CategoryDatabase   = "database"
	CategoryCloudInfra = "cloud-infra"
	CategoryMobile     = "mobile"
	CategoryOther      = "other"
)

// categoryOrder is the canonical output order, independent of which
// categories are populated.
var categoryOrder = []string{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryCloudInfra,
	CategoryMobile,
}

// tagCategories is the curated tag vocabulary. Tags absent from the table
// fall into the "other" bucket.
var tagCategories = map[string]string{
	"React":        CategoryFrontend,
	"Vue":          CategoryFrontend,
	"Angular":      CategoryFrontend,
	"Next.js":      CategoryFrontend,
	"TypeScript":   CategoryFrontend,
	"JavaScript":   CategoryFrontend,
	"HTML":         CategoryFrontend,
	"CSS":          CategoryFrontend,
	"Tailwind":     CategoryFrontend,
	"Tailwind CSS": CategoryFrontend,

	"Node.js": CategoryBackend,
	"Express": CategoryBackend,
	"Java":    CategoryBackend,
	"Spring":  CategoryBackend,
	"Python":  CategoryBackend,
	"Django":  CategoryBackend,
	"FastAPI": CategoryBackend,
	"Go":      CategoryBackend,
	"Kotlin":  CategoryBackend,

	"PostgreSQL": CategoryDatabase,
	"MySQL":      CategoryDatabase,
	"MongoDB":    CategoryDatabase,
	"Redis":      CategoryDatabase,
	"Oracle":     CategoryDatabase,

	"AWS":        CategoryCloudInfra,
	"Docker":     CategoryCloudInfra,
	"Kubernetes": CategoryCloudInfra,
	"Git":        CategoryCloudInfra,
	"GitHub":     CategoryCloudInfra,
	"Jenkins":    CategoryCloudInfra,
	"Nginx":      CategoryCloudInfra,

	"React Native": CategoryMobile,
	"Flutter":      CategoryMobile,
	"Swift":        CategoryMobile,
	"Android":      CategoryMobile,
}

// TechItem is one tag with its literal occurrence count.
type TechItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CategoryGroup is one named treemap bucket. Children are unordered by
// contract; display code may sort by value.
type CategoryGroup struct {
	Name     string     `json:"name"`
	Children []TechItem `json:"children"`
}

// TechStackResult is the aggregator output. Groups follow the canonical
// category order with empty categories omitted. OtherCount carries the
// occurrences routed to the internal "other" bucket: counted but not shown,
// surfaced here so upstream can flag unmapped tags as a data-quality signal.
type TechStackResult struct {
	Groups     []CategoryGroup `json:"groups"`
	OtherCount int             `json:"other_count"`
}

// AggregateTechStack counts tech-stack tag occurrences across all projects.
// Counting is literal: a tag used in two projects accumulates, and a tag
// listed twice within one project counts twice.
func AggregateTechStack(projects []profile.Project) TechStackResult {
	counts := make(map[string]map[string]int, len(categoryOrder))
	other := 0

	for i := range projects {
		for _, tag := range projects[i].TechStack {
			category, known := tagCategories[tag]
			if !known {
				other++
				continue
			}
			if counts[category] == nil {
				counts[category] = make(map[string]int)
			}
			counts[category][tag]++
		}
	}

	result := TechStackResult{Groups: []CategoryGroup{}, OtherCount: other}
	for _, category := range categoryOrder {
		tags := counts[category]
		if len(tags) == 0 {
			continue
		}
		group := CategoryGroup{Name: category, Children: make([]TechItem, 0, len(tags))}
		for name, value := range tags {
			group.Children = append(group.Children, TechItem{Name: name, Value: value})
		}
		result.Groups = append(result.Groups, group)
	}
	return result
}
