// file: internals/features/qa/model/questions_model.go
package model

import (
	"strings"
	"time"
)

const QuestionTextMaxLen = 1000

type QuestionModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"column:text;type:text;not null" json:"text" validate:"required,max=1000"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Answers []AnswerModel `gorm:"foreignKey:QuestionID;references:ID;constraint:OnDelete:CASCADE" json:"answers"`
}

func (QuestionModel) TableName() string { return "questions" }

// Normalize trims the text before validation and storage.
func (m *QuestionModel) Normalize() {
	m.Text = strings.TrimSpace(m.Text)
}

func (m *QuestionModel) Validate() error {
	return validateStruct(m)
}
