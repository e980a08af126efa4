package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jaewoo/careerfolio/internal/db"
	"github.com/jaewoo/careerfolio/internal/jsonstore"
	"github.com/jaewoo/careerfolio/internal/profile"
)

var (
	importUserID string
	importDir    string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a profile snapshot directory into the database",
	Long:  `Import validates each data-directory file against its JSON Schema, then inserts the records for the given user. Absent files are skipped; list files are inserted in file order, which becomes the display order.`,
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importUserID, "user", "", "Target user UUID (required)")
	importCmd.Flags().StringVar(&importDir, "dir", "", "Data directory (default DATA_DIR or ./data)")
	_ = importCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(importUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	store := jsonstore.New(dataDir(importDir))
	imported := 0

	var basicInfo *profile.BasicInfo
	if err := store.Read("basic-info", &basicInfo); err != nil {
		return err
	}
	if basicInfo != nil {
		basicInfo.UserID = userID
		if _, err := database.UpsertBasicInfo(ctx, basicInfo); err != nil {
			return err
		}
		imported++
	}

	var careers []profile.Career
	if err := store.Read("careers", &careers); err != nil {
		return err
	}
	for i := range careers {
		careers[i].UserID = userID
		if _, err := database.CreateCareer(ctx, &careers[i]); err != nil {
			return err
		}
		imported++
	}

	var skills []profile.Skill
	if err := store.Read("skills", &skills); err != nil {
		return err
	}
	for i := range skills {
		skills[i].UserID = userID
		if _, err := database.CreateSkill(ctx, &skills[i]); err != nil {
			return err
		}
		imported++
	}

	var educations []profile.Education
	if err := store.Read("educations", &educations); err != nil {
		return err
	}
	for i := range educations {
		educations[i].UserID = userID
		if _, err := database.CreateEducation(ctx, &educations[i]); err != nil {
			return err
		}
		imported++
	}

	var projects []profile.Project
	if err := store.Read("projects", &projects); err != nil {
		return err
	}
	for i := range projects {
		projects[i].UserID = userID
		if _, err := database.CreateProject(ctx, &projects[i]); err != nil {
			return err
		}
		imported++
	}

	var items []profile.OtherItem
	if err := store.Read("other-items", &items); err != nil {
		return err
	}
	for i := range items {
		items[i].UserID = userID
		if _, err := database.CreateOtherItem(ctx, &items[i]); err != nil {
			return err
		}
		imported++
	}

	cmd.Printf("Imported %d records from %s for %s\n", imported, dataDir(importDir), userID)
	return nil
}
