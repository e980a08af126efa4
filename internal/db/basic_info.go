package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jaewoo/careerfolio/internal/profile"
)

// GetBasicInfo retrieves a user's basic info, or nil if never saved
func (db *DB) GetBasicInfo(ctx context.Context, userID uuid.UUID) (*profile.BasicInfo, error) {
	var info profile.BasicInfo
	var englishName, nickname, github, blog, linkedin, introduction, profileImage *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, english_name, nickname, email, phone,
		        github, blog, linkedin, introduction, profile_image, tags,
		        created_at, updated_at
		 FROM basic_info WHERE user_id = $1`,
		userID,
	).Scan(&info.ID, &info.UserID, &info.Name, &englishName, &nickname,
		&info.Email, &info.Phone, &github, &blog, &linkedin,
		&introduction, &profileImage, &info.Tags,
		&info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get basic info: %w", err)
	}

	info.EnglishName = orEmpty(englishName)
	info.Nickname = orEmpty(nickname)
	info.GitHub = orEmpty(github)
	info.Blog = orEmpty(blog)
	info.LinkedIn = orEmpty(linkedin)
	info.Introduction = orEmpty(introduction)
	info.ProfileImage = orEmpty(profileImage)
	return &info, nil
}

// UpsertBasicInfo creates the user's basic info on first save and replaces
// it thereafter. There is no delete for basic info.
func (db *DB) UpsertBasicInfo(ctx context.Context, info *profile.BasicInfo) (uuid.UUID, error) {
	tags := info.Tags
	if tags == nil {
		tags = []string{}
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO basic_info (user_id, name, english_name, nickname, email, phone,
		                         github, blog, linkedin, introduction, profile_image, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (user_id) DO UPDATE SET
		     name = $2, english_name = $3, nickname = $4, email = $5, phone = $6,
		     github = $7, blog = $8, linkedin = $9, introduction = $10,
		     profile_image = $11, tags = $12, updated_at = NOW()
		 RETURNING id`,
		info.UserID, info.Name, nullIfEmpty(info.EnglishName), nullIfEmpty(info.Nickname),
		info.Email, info.Phone, nullIfEmpty(info.GitHub), nullIfEmpty(info.Blog),
		nullIfEmpty(info.LinkedIn), nullIfEmpty(info.Introduction),
		nullIfEmpty(info.ProfileImage), tags,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert basic info: %w", err)
	}
	return id, nil
}
