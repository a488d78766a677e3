// file: internals/features/qa/repository/questions_repository.go
package repository

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	qmodel "problems_service/internals/features/qa/model"
)

type QuestionRepository interface {
	Create(ctx context.Context, text string) (*qmodel.QuestionModel, error)
	List(ctx context.Context, offset, limit int) ([]qmodel.QuestionModel, int64, error)
	GetByID(ctx context.Context, id uint) (*qmodel.QuestionModel, error)
	Delete(ctx context.Context, id uint) error
}

type QuestionRepo struct {
	db *gorm.DB
}

func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

func answersByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (r *QuestionRepo) Create(ctx context.Context, text string) (*qmodel.QuestionModel, error) {
	m := &qmodel.QuestionModel{Text: text}
	m.Normalize()
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, wrapTx(err)
	}
	m.Answers = []qmodel.AnswerModel{}

	log.Printf("[INFO] Created question %d", m.ID)
	return m, nil
}

// List returns one page of questions by ascending id, answers preloaded,
// plus the total number of questions.
func (r *QuestionRepo) List(ctx context.Context, offset, limit int) ([]qmodel.QuestionModel, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&qmodel.QuestionModel{}).Count(&total).Error; err != nil {
		return nil, 0, wrapTx(err)
	}

	var rows []qmodel.QuestionModel
	q := r.db.WithContext(ctx).
		Preload("Answers", answersByID).
		Order("id ASC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, wrapTx(err)
	}
	return rows, total, nil
}

func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*qmodel.QuestionModel, error) {
	var m qmodel.QuestionModel
	err := r.db.WithContext(ctx).
		Preload("Answers", answersByID).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, qmodel.ErrNotFound
		}
		return nil, wrapTx(err)
	}
	return &m, nil
}

// Delete removes the question and every answer pointing at it in one
// transaction. The question row is locked first so no answer can be
// attached while the delete is in flight.
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q qmodel.QuestionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&q, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return qmodel.ErrNotFound
			}
			return err
		}

		res := tx.Where("question_id = ?", id).Delete(&qmodel.AnswerModel{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		return tx.Delete(&qmodel.QuestionModel{}, id).Error
	})
	if err != nil {
		return wrapTx(err)
	}

	log.Printf("[INFO] Deleted question %d with all its answers (%d)", id, removed)
	return nil
}
