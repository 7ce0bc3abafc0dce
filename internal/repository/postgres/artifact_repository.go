package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelDeskAI/business/forecast"
)

// CREATE TABLE public.model_artifacts (
//     name       TEXT PRIMARY KEY,
//     payload    BYTEA,
//     updated_at TIMESTAMPTZ
// );

// artifactRow is the storage shape: one named blob per trained model,
// written only by the offline trainer.
type artifactRow struct {
	Name      string    `gorm:"column:name;primaryKey"`
	Payload   []byte    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (artifactRow) TableName() string {
	return "model_artifacts"
}

type ArtifactRepository struct {
	DB *gorm.DB
}

func NewArtifactRepository(db *gorm.DB) *ArtifactRepository {
	return &ArtifactRepository{DB: db}
}

func (r *ArtifactRepository) Load(ctx context.Context, name string) (*forecast.Artifact, error) {
	var row artifactRow
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, forecast.ErrArtifactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact %q: %w", name, err)
	}

	return forecast.UnmarshalArtifact(row.Payload)
}

func (r *ArtifactRepository) Save(ctx context.Context, name string, artifact *forecast.Artifact) error {
	payload, err := artifact.Marshal()
	if err != nil {
		return err
	}

	row := artifactRow{Name: name, Payload: payload}
	err = r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save artifact %q: %w", name, err)
	}

	return nil
}
