// file: internals/features/qa/repository/answers_repository.go
package repository

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	qmodel "problems_service/internals/features/qa/model"
)

type AnswerRepository interface {
	Create(ctx context.Context, questionID uint, userID, text string) (*qmodel.AnswerModel, error)
	GetByID(ctx context.Context, id uint) (*qmodel.AnswerModel, error)
	Delete(ctx context.Context, id uint) error
}

type AnswerRepo struct {
	db *gorm.DB
}

func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// Create attaches an answer to an existing question. The question lookup
// comes first, so a missing question wins over invalid input.
func (r *AnswerRepo) Create(ctx context.Context, questionID uint, userID, text string) (*qmodel.AnswerModel, error) {
	m := &qmodel.AnswerModel{QuestionID: questionID, UserID: userID, Text: text}
	m.Normalize()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q qmodel.QuestionModel
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("id").
			First(&q, questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return qmodel.ErrNotFound
			}
			return err
		}

		if err := m.Validate(); err != nil {
			return err
		}

		if err := tx.Create(m).Error; err != nil {
			if isForeignKeyViolation(err) {
				return qmodel.ErrNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, wrapTx(err)
	}

	log.Printf("[INFO] Created answer %d for question %d", m.ID, m.QuestionID)
	return m, nil
}

func (r *AnswerRepo) GetByID(ctx context.Context, id uint) (*qmodel.AnswerModel, error) {
	var m qmodel.AnswerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, qmodel.ErrNotFound
		}
		return nil, wrapTx(err)
	}
	return &m, nil
}

func (r *AnswerRepo) Delete(ctx context.Context, id uint) error {
	var m qmodel.AnswerModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id", "question_id").First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return qmodel.ErrNotFound
			}
			return err
		}
		res := tx.Delete(&qmodel.AnswerModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return qmodel.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return wrapTx(err)
	}

	log.Printf("[INFO] Deleted answer %d from question %d", id, m.QuestionID)
	return nil
}
