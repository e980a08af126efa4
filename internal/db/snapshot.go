package db

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jaewoo/careerfolio/internal/profile"
)

// LoadSnapshot fetches a user's full profile, fanning the six collection
// reads out concurrently. Each goroutine writes a distinct snapshot field.
func (db *DB) LoadSnapshot(ctx context.Context, userID uuid.UUID) (*profile.Snapshot, error) {
	var snap profile.Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		basicInfo, err := db.GetBasicInfo(ctx, userID)
		snap.BasicInfo = basicInfo
		return err
	})
	g.Go(func() error {
		careers, err := db.ListCareers(ctx, userID)
		snap.Careers = careers
		return err
	})
	g.Go(func() error {
		skills, err := db.ListSkills(ctx, userID)
		snap.Skills = skills
		return err
	})
	g.Go(func() error {
		educations, err := db.ListEducations(ctx, userID)
		snap.Educations = educations
		return err
	})
	g.Go(func() error {
		projects, err := db.ListProjects(ctx, userID)
		snap.Projects = projects
		return err
	})
	g.Go(func() error {
		items, err := db.ListOtherItems(ctx, userID)
		snap.OtherItems = items
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
