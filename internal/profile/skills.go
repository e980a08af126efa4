package profile

// SkillGroup is one category bucket of skills, in input order.
type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// GroupSkillsByCategory partitions skills into category groups. Category keys
// match exactly (no trimming or case folding); group order is first-seen
// order and entries keep their relative input order. Empty input yields an
// empty slice, never an error.
func GroupSkillsByCategory(skills []Skill) []SkillGroup {
	groups := []SkillGroup{}
	index := make(map[string]int)
	for _, s := range skills {
		i, seen := index[s.Category]
		if !seen {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
