// file: internals/features/qa/dto/questions_dto.go
package dto

import (
	"time"

	qmodel "problems_service/internals/features/qa/model"
)

/* =========================================================
   REQUEST
========================================================= */

type CreateQuestionRequest struct {
	Text *string `json:"text"`
}

// Validate only checks presence; content rules live on the model.
func (r *CreateQuestionRequest) Validate() error {
	ve := qmodel.NewValidationError()
	if r.Text == nil {
		ve.Add("text", msgRequired)
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

/* =========================================================
   RESPONSE
========================================================= */

type QuestionResponse struct {
	ID           uint             `json:"id"`
	Text         string           `json:"text"`
	CreatedAt    time.Time        `json:"created_at"`
	Answers      []AnswerResponse `json:"answers"`
	AnswersCount int              `json:"answers_count"`
}

func FromModelQuestion(m *qmodel.QuestionModel) QuestionResponse {
	answers := FromModelsAnswers(m.Answers)
	return QuestionResponse{
		ID:           m.ID,
		Text:         m.Text,
		CreatedAt:    m.CreatedAt,
		Answers:      answers,
		AnswersCount: len(answers),
	}
}

func FromModelsQuestions(rows []qmodel.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelQuestion(&rows[i]))
	}
	return out
}

// QuestionPage is the paginated list envelope.
type QuestionPage struct {
	Count    int64              `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []QuestionResponse `json:"results"`
}
