package service

import (
	"context"

	"github.com/caic-xyz/website/internal/model"

	"gorm.io/gorm"
)

type WaitlistService struct {
	database *gorm.DB
}

func NewWaitlistService(database *gorm.DB) *WaitlistService {
	return &WaitlistService{
		database: database,
	}
}

// Submit inserts a new submission. The id and creation time are assigned
// server side, whatever the caller put in those fields is ignored.
func (ws *WaitlistService) Submit(ctx context.Context, submission model.Submission) error {
	submission.ID = 0
	submission.CreatedAt = 0

	// Optional arrays are stored as encoded arrays, not null
	if submission.TargetPlatforms == nil {
		submission.TargetPlatforms = []string{}
	}
	if submission.DevOS == nil {
		submission.DevOS = []string{}
	}

	return ws.database.WithContext(ctx).Create(&submission).Error
}

// List returns all submissions, newest first.
func (ws *WaitlistService) List(ctx context.Context) ([]model.Submission, error) {
	submissions := []model.Submission{}
	err := ws.database.WithContext(ctx).Order("id desc").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// Delete removes a submission by id. Deleting an id that does not exist is a
// no-op.
func (ws *WaitlistService) Delete(ctx context.Context, id int64) error {
	return ws.database.WithContext(ctx).Delete(&model.Submission{}, id).Error
}
