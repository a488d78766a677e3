package qa

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	qmodel "problems_service/internals/features/qa/model"
)

type AnswerSeed struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type QuestionSeed struct {
	Text    string       `json:"text"`
	Answers []AnswerSeed `json:"answers"`
}

// SeedQAFromJSON replaces all questions and answers with the file contents.
// Everything runs in one transaction; a bad record rolls the whole seed back.
func SeedQAFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seeds []QuestionSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	var nQuestions, nAnswers int
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&qmodel.AnswerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&qmodel.QuestionModel{}).Error; err != nil {
			return err
		}

		for i, s := range seeds {
			q := qmodel.QuestionModel{Text: s.Text}
			q.Normalize()
			if err := q.Validate(); err != nil {
				return fmt.Errorf("question #%d: %w", i+1, err)
			}
			for j, a := range s.Answers {
				am := qmodel.AnswerModel{UserID: a.UserID, Text: a.Text}
				am.Normalize()
				if err := am.Validate(); err != nil {
					return fmt.Errorf("question #%d answer #%d: %w", i+1, j+1, err)
				}
				q.Answers = append(q.Answers, am)
			}

			if err := tx.Create(&q).Error; err != nil {
				return err
			}
			nQuestions++
			nAnswers += len(q.Answers)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Seeded %d questions and %d answers", nQuestions, nAnswers)
	return nil
}
