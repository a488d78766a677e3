// file: internals/features/qa/model/answers_model.go
package model

import (
	"strings"
	"time"
)

const (
	AnswerTextMaxLen   = 2000
	AnswerUserIDMaxLen = 36
)

// AnswerModel belongs to exactly one question. UserID is a free-form
// identifier; only its length is checked.
type AnswerModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID uint      `gorm:"column:question_id;not null;index" json:"question_id"`
	UserID     string    `gorm:"column:user_id;type:varchar(36);not null" json:"user_id" validate:"required,max=36"`
	Text       string    `gorm:"column:text;type:text;not null" json:"text" validate:"required,max=2000"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AnswerModel) TableName() string { return "answers" }

func (m *AnswerModel) Normalize() {
	m.UserID = strings.TrimSpace(m.UserID)
	m.Text = strings.TrimSpace(m.Text)
}

func (m *AnswerModel) Validate() error {
	return validateStruct(m)
}
