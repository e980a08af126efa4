package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jaewoo/careerfolio/internal/db"
	"github.com/jaewoo/careerfolio/internal/profile"
)

// DBClient is the record-store surface the handlers depend on. *db.DB is the
// production implementation; tests substitute a mock.
type DBClient interface {
	// Accounts
	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, id uuid.UUID, name, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// Basic info
	GetBasicInfo(ctx context.Context, userID uuid.UUID) (*profile.BasicInfo, error)
	UpsertBasicInfo(ctx context.Context, info *profile.BasicInfo) (uuid.UUID, error)

	// Careers
	ListCareers(ctx context.Context, userID uuid.UUID) ([]profile.Career, error)
	GetCareer(ctx context.Context, id uuid.UUID) (*profile.Career, error)
	CreateCareer(ctx context.Context, c *profile.Career) (uuid.UUID, error)
	UpdateCareer(ctx context.Context, c *profile.Career) error
	DeleteCareer(ctx context.Context, id uuid.UUID) error
	MoveCareer(ctx context.Context, userID, id uuid.UUID, newIndex int) error

	// Educations
	ListEducations(ctx context.Context, userID uuid.UUID) ([]profile.Education, error)
	GetEducation(ctx context.Context, id uuid.UUID) (*profile.Education, error)
	CreateEducation(ctx context.Context, e *profile.Education) (uuid.UUID, error)
	UpdateEducation(ctx context.Context, e *profile.Education) error
	DeleteEducation(ctx context.Context, id uuid.UUID) error
	MoveEducation(ctx context.Context, userID, id uuid.UUID, newIndex int) error

	// Projects
	ListProjects(ctx context.Context, userID uuid.UUID) ([]profile.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*profile.Project, error)
	CreateProject(ctx context.Context, p *profile.Project) (uuid.UUID, error)
	UpdateProject(ctx context.Context, p *profile.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	MoveProject(ctx context.Context, userID, id uuid.UUID, newIndex int) error

	// Skills
	ListSkills(ctx context.Context, userID uuid.UUID) ([]profile.Skill, error)
	GetSkill(ctx context.Context, id uuid.UUID) (*profile.Skill, error)
	CreateSkill(ctx context.Context, s *profile.Skill) (uuid.UUID, error)
	UpdateSkill(ctx context.Context, s *profile.Skill) error
	DeleteSkill(ctx context.Context, id uuid.UUID) error

	// Other items
	ListOtherItems(ctx context.Context, userID uuid.UUID) ([]profile.OtherItem, error)
	GetOtherItem(ctx context.Context, id uuid.UUID) (*profile.OtherItem, error)
	CreateOtherItem(ctx context.Context, o *profile.OtherItem) (uuid.UUID, error)
	UpdateOtherItem(ctx context.Context, o *profile.OtherItem) error
	DeleteOtherItem(ctx context.Context, id uuid.UUID) error
	MoveOtherItem(ctx context.Context, userID, id uuid.UUID, newIndex int) error

	// Snapshot
	LoadSnapshot(ctx context.Context, userID uuid.UUID) (*profile.Snapshot, error)
}
