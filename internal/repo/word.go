package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexloop/vocab_server/internal/models"
	"github.com/lexloop/vocab_server/internal/transport"
)

func (r *GormRepo) CreateWord(ctx context.Context, word *models.Word) (*models.Word, error) {
	if err := r.DB.WithContext(ctx).Create(word).Error; err != nil {
		return nil, err
	}
	return word, nil
}

func (r *GormRepo) GetWord(ctx context.Context, id uuid.UUID) (*models.Word, error) {
	var word models.Word
	if err := r.DB.WithContext(ctx).Preload("User").Where("id = ?", id).First(&word).Error; err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *GormRepo) GetWordsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Word, error) {
	var words []models.Word
	if err := r.DB.WithContext(ctx).Preload("User").
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

func (r *GormRepo) UpdateWord(ctx context.Context, req transport.UpdateWordRequest, id uuid.UUID) (*models.Word, error) {
	var word models.Word
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&word).Error; err != nil {
		return nil, err
	}

	if req.Words != nil {
		word.Words = req.Words
	}
	if req.Definitions != nil {
		word.Definitions = req.Definitions
	}
	if req.Images != nil {
		word.Images = req.Images
	}
	if req.Audio != nil {
		word.Audio = req.Audio
	}
	if req.ListenHighScore != nil {
		word.ListenHighScore = *req.ListenHighScore
	}
	if req.ImageHighScore != nil {
		word.ImageHighScore = *req.ImageHighScore
	}
	if req.DefinitionHighScore != nil {
		word.DefinitionHighScore = *req.DefinitionHighScore
	}

	if err := r.DB.WithContext(ctx).Save(&word).Error; err != nil {
		return nil, err
	}

	return &word, nil
}

func (r *GormRepo) DeleteWord(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Word{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
