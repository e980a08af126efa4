package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jaewoo/careerfolio/internal/db"
	"github.com/jaewoo/careerfolio/internal/jsonstore"
)

var (
	exportUserID string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump a user's profile snapshot to a JSON data directory",
	Long:  `Export writes one schema-validated JSON file per entity type (basic-info, careers, skills, educations, projects, other-items) under the data directory.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportUserID, "user", "", "User UUID to export (required)")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Data directory (default DATA_DIR or ./data)")
	_ = exportCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(exportCmd)
}

func dataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

func runExport(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(exportUserID)
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

	snap, err := database.LoadSnapshot(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	store := jsonstore.New(dataDir(exportDir))

	if snap.BasicInfo != nil {
		if err := store.Write("basic-info", snap.BasicInfo); err != nil {
			return err
		}
	}
	files := map[string]any{
		"careers":     snap.Careers,
		"skills":      snap.Skills,
		"educations":  snap.Educations,
		"projects":    snap.Projects,
		"other-items": snap.OtherItems,
	}
	for _, key := range jsonstore.TypeKeys {
		v, ok := files[key]
		if !ok {
			continue
		}
		if err := store.Write(key, v); err != nil {
			return err
		}
	}

	cmd.Printf("Exported profile of %s to %s\n", userID, dataDir(exportDir))
	return nil
}
