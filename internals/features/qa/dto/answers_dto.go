// file: internals/features/qa/dto/answers_dto.go
package dto

import (
	"time"

	qmodel "problems_service/internals/features/qa/model"
)

const msgRequired = "This field is required."

type CreateAnswerRequest struct {
	UserID *string `json:"user_id"`
	Text   *string `json:"text"`
}

func (r *CreateAnswerRequest) Validate() error {
	ve := qmodel.NewValidationError()
	if r.UserID == nil {
		ve.Add("user_id", msgRequired)
	}
	if r.Text == nil {
		ve.Add("text", msgRequired)
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

type AnswerResponse struct {
	ID         uint      `json:"id"`
	QuestionID uint      `json:"question_id"`
	UserID     string    `json:"user_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModelAnswer(m *qmodel.AnswerModel) AnswerResponse {
	return AnswerResponse{
		ID:         m.ID,
		QuestionID: m.QuestionID,
		UserID:     m.UserID,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
	}
}

func FromModelsAnswers(rows []qmodel.AnswerModel) []AnswerResponse {
	out := make([]AnswerResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelAnswer(&rows[i]))
	}
	return out
}
