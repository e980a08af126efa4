package server

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jaewoo/careerfolio/internal/db"
	"github.com/jaewoo/careerfolio/internal/profile"
)

// mockDB is an in-memory DBClient for handler and service tests.
type mockDB struct {
	users      map[uuid.UUID]*db.User
	basicInfos map[uuid.UUID]*profile.BasicInfo
	careers    map[uuid.UUID]*profile.Career
	educations map[uuid.UUID]*profile.Education
	projects   map[uuid.UUID]*profile.Project
	skills     map[uuid.UUID]*profile.Skill
	otherItems map[uuid.UUID]*profile.OtherItem

	failWith error
}

func newMockDB() *mockDB {
	return &mockDB{
		users:      make(map[uuid.UUID]*db.User),
		basicInfos: make(map[uuid.UUID]*profile.BasicInfo),
		careers:    make(map[uuid.UUID]*profile.Career),
		educations: make(map[uuid.UUID]*profile.Education),
		projects:   make(map[uuid.UUID]*profile.Project),
		skills:     make(map[uuid.UUID]*profile.Skill),
		otherItems: make(map[uuid.UUID]*profile.OtherItem),
	}
}

func (m *mockDB) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	if m.failWith != nil {
		return uuid.Nil, m.failWith
	}
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

func (m *mockDB) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.users[id], nil
}

func (m *mockDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockDB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := m.GetUserByEmail(ctx, email)
	return u != nil, err
}

func (m *mockDB) UpdateUser(_ context.Context, id uuid.UUID, name, email string) error {
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user not found: %s", id)
	}
	u.Name, u.Email = name, email
	return nil
}

func (m *mockDB) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user not found: %s", id)
	}
	u.PasswordHash = hash
	u.PasswordSet = true
	return nil
}

func (m *mockDB) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("user not found: %s", id)
	}
	delete(m.users, id)
	return nil
}

func (m *mockDB) GetBasicInfo(_ context.Context, userID uuid.UUID) (*profile.BasicInfo, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.basicInfos[userID], nil
}

func (m *mockDB) UpsertBasicInfo(_ context.Context, info *profile.BasicInfo) (uuid.UUID, error) {
	if m.failWith != nil {
		return uuid.Nil, m.failWith
	}
	if existing := m.basicInfos[info.UserID]; existing != nil {
		info.ID = existing.ID
	} else if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}
	m.basicInfos[info.UserID] = info
	return info.ID, nil
}

func (m *mockDB) ListCareers(_ context.Context, userID uuid.UUID) ([]profile.Career, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []profile.Career{}
	for _, c := range m.careers {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *mockDB) GetCareer(_ context.Context, id uuid.UUID) (*profile.Career, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.careers[id], nil
}

func (m *mockDB) CreateCareer(ctx context.Context, c *profile.Career) (uuid.UUID, error) {
	if m.failWith != nil {
		return uuid.Nil, m.failWith
	}
	existing, _ := m.ListCareers(ctx, c.UserID)
	c.ID = uuid.New()
	c.DisplayOrder = len(existing)
	m.careers[c.ID] = c
	return c.ID, nil
}

func (m *mockDB) UpdateCareer(_ context.Context, c *profile.Career) error {
	stored, ok := m.careers[c.ID]
	if !ok {
		return fmt.Errorf("career not found: %s", c.ID)
	}
	c.UserID, c.DisplayOrder = stored.UserID, stored.DisplayOrder
	m.careers[c.ID] = c
	return nil
}

func (m *mockDB) DeleteCareer(_ context.Context, id uuid.UUID) error {
	if _, ok := m.careers[id]; !ok {
		return fmt.Errorf("career not found: %s", id)
	}
	delete(m.careers, id)
	return nil
}

func (m *mockDB) MoveCareer(ctx context.Context, userID, id uuid.UUID, newIndex int) error {
	list, _ := m.ListCareers(ctx, userID)
	moveOrdered(len(list), newIndex, func(i int) uuid.UUID { return list[i].ID }, id,
		func(itemID uuid.UUID, order int) { m.careers[itemID].DisplayOrder = order })
	return nil
}

func (m *mockDB) ListEducations(_ context.Context, userID uuid.UUID) ([]profile.Education, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []profile.Education{}
	for _, e := range m.educations {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *mockDB) GetEducation(_ context.Context, id uuid.UUID) (*profile.Education, error) {
	return m.educations[id], nil
}

func (m *mockDB) CreateEducation(ctx context.Context, e *profile.Education) (uuid.UUID, error) {
	existing, _ := m.ListEducations(ctx, e.UserID)
	e.ID = uuid.New()
	e.DisplayOrder = len(existing)
	m.educations[e.ID] = e
	return e.ID, nil
}

func (m *mockDB) UpdateEducation(_ context.Context, e *profile.Education) error {
	stored, ok := m.educations[e.ID]
	if !ok {
		return fmt.Errorf("education not found: %s", e.ID)
	}
	e.UserID, e.DisplayOrder = stored.UserID, stored.DisplayOrder
	m.educations[e.ID] = e
	return nil
}

func (m *mockDB) DeleteEducation(_ context.Context, id uuid.UUID) error {
	if _, ok := m.educations[id]; !ok {
		return fmt.Errorf("education not found: %s", id)
	}
	delete(m.educations, id)
	return nil
}

func (m *mockDB) MoveEducation(ctx context.Context, userID, id uuid.UUID, newIndex int) error {
	list, _ := m.ListEducations(ctx, userID)
	moveOrdered(len(list), newIndex, func(i int) uuid.UUID { return list[i].ID }, id,
		func(itemID uuid.UUID, order int) { m.educations[itemID].DisplayOrder = order })
	return nil
}

func (m *mockDB) ListProjects(_ context.Context, userID uuid.UUID) ([]profile.Project, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []profile.Project{}
	for _, p := range m.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *mockDB) GetProject(_ context.Context, id uuid.UUID) (*profile.Project, error) {
	return m.projects[id], nil
}

func (m *mockDB) CreateProject(ctx context.Context, p *profile.Project) (uuid.UUID, error) {
	existing, _ := m.ListProjects(ctx, p.UserID)
	p.ID = uuid.New()
	p.DisplayOrder = len(existing)
	m.projects[p.ID] = p
	return p.ID, nil
}

func (m *mockDB) UpdateProject(_ context.Context, p *profile.Project) error {
	stored, ok := m.projects[p.ID]
	if !ok {
		return fmt.Errorf("project not found: %s", p.ID)
	}
	p.UserID, p.DisplayOrder = stored.UserID, stored.DisplayOrder
	m.projects[p.ID] = p
	return nil
}

func (m *mockDB) DeleteProject(_ context.Context, id uuid.UUID) error {
	if _, ok := m.projects[id]; !ok {
		return fmt.Errorf("project not found: %s", id)
	}
	delete(m.projects, id)
	return nil
}

func (m *mockDB) MoveProject(ctx context.Context, userID, id uuid.UUID, newIndex int) error {
	list, _ := m.ListProjects(ctx, userID)
	moveOrdered(len(list), newIndex, func(i int) uuid.UUID { return list[i].ID }, id,
		func(itemID uuid.UUID, order int) { m.projects[itemID].DisplayOrder = order })
	return nil
}

func (m *mockDB) ListSkills(_ context.Context, userID uuid.UUID) ([]profile.Skill, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []profile.Skill{}
	for _, sk := range m.skills {
		if sk.UserID == userID {
			out = append(out, *sk)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockDB) GetSkill(_ context.Context, id uuid.UUID) (*profile.Skill, error) {
	return m.skills[id], nil
}

func (m *mockDB) CreateSkill(_ context.Context, sk *profile.Skill) (uuid.UUID, error) {
	sk.ID = uuid.New()
	if sk.CreatedAt.IsZero() {
		sk.CreatedAt = time.Now()
	}
	m.skills[sk.ID] = sk
	return sk.ID, nil
}

func (m *mockDB) UpdateSkill(_ context.Context, sk *profile.Skill) error {
	stored, ok := m.skills[sk.ID]
	if !ok {
		return fmt.Errorf("skill not found: %s", sk.ID)
	}
	sk.UserID, sk.CreatedAt = stored.UserID, stored.CreatedAt
	m.skills[sk.ID] = sk
	return nil
}

func (m *mockDB) DeleteSkill(_ context.Context, id uuid.UUID) error {
	if _, ok := m.skills[id]; !ok {
		return fmt.Errorf("skill not found: %s", id)
	}
	delete(m.skills, id)
	return nil
}

func (m *mockDB) ListOtherItems(_ context.Context, userID uuid.UUID) ([]profile.OtherItem, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []profile.OtherItem{}
	for _, o := range m.otherItems {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *mockDB) GetOtherItem(_ context.Context, id uuid.UUID) (*profile.OtherItem, error) {
	return m.otherItems[id], nil
}

func (m *mockDB) CreateOtherItem(ctx context.Context, o *profile.OtherItem) (uuid.UUID, error) {
	existing, _ := m.ListOtherItems(ctx, o.UserID)
	o.ID = uuid.New()
	o.DisplayOrder = len(existing)
	m.otherItems[o.ID] = o
	return o.ID, nil
}

func (m *mockDB) UpdateOtherItem(_ context.Context, o *profile.OtherItem) error {
	stored, ok := m.otherItems[o.ID]
	if !ok {
		return fmt.Errorf("other item not found: %s", o.ID)
	}
	o.UserID, o.DisplayOrder = stored.UserID, stored.DisplayOrder
	m.otherItems[o.ID] = o
	return nil
}

func (m *mockDB) DeleteOtherItem(_ context.Context, id uuid.UUID) error {
	if _, ok := m.otherItems[id]; !ok {
		return fmt.Errorf("other item not found: %s", id)
	}
	delete(m.otherItems, id)
	return nil
}

func (m *mockDB) MoveOtherItem(ctx context.Context, userID, id uuid.UUID, newIndex int) error {
	list, _ := m.ListOtherItems(ctx, userID)
	moveOrdered(len(list), newIndex, func(i int) uuid.UUID { return list[i].ID }, id,
		func(itemID uuid.UUID, order int) { m.otherItems[itemID].DisplayOrder = order })
	return nil
}

func (m *mockDB) LoadSnapshot(ctx context.Context, userID uuid.UUID) (*profile.Snapshot, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	basicInfo, _ := m.GetBasicInfo(ctx, userID)
	careers, _ := m.ListCareers(ctx, userID)
	skills, _ := m.ListSkills(ctx, userID)
	educations, _ := m.ListEducations(ctx, userID)
	projects, _ := m.ListProjects(ctx, userID)
	items, _ := m.ListOtherItems(ctx, userID)
	return &profile.Snapshot{
		BasicInfo:  basicInfo,
		Careers:    careers,
		Skills:     skills,
		Educations: educations,
		Projects:   projects,
		OtherItems: items,
	}, nil
}

// moveOrdered mirrors the remove-then-reinsert reorder the real store does.
func moveOrdered(n, newIndex int, idAt func(int) uuid.UUID, moved uuid.UUID, setOrder func(uuid.UUID, int)) {
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		if id := idAt(i); id != moved {
			ids = append(ids, id)
		}
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(ids) {
		newIndex = len(ids)
	}
	ids = append(ids[:newIndex], append([]uuid.UUID{moved}, ids[newIndex:]...)...)
	for i, id := range ids {
		setOrder(id, i)
	}
}
