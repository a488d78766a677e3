package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qdto "problems_service/internals/features/qa/dto"
	"problems_service/internals/features/qa/repository"
	helper "problems_service/internals/helpers"
)

const msgAnswerNotFound = "Answer not found"

type AnswersController struct {
	Repo repository.AnswerRepository
}

func NewAnswersController(db *gorm.DB) *AnswersController {
	return &AnswersController{Repo: repository.NewAnswerRepo(db)}
}

// POST /questions/:question_id/answers
func (ctl *AnswersController) Create(c *fiber.Ctx) error {
	questionID, ok := pathID(c, "question_id")
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, msgQuestionNotFound)
	}

	var req qdto.CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, err, msgQuestionNotFound)
	}

	m, err := ctl.Repo.Create(c.UserContext(), questionID, *req.UserID, *req.Text)
	if err != nil {
		return writeError(c, err, msgQuestionNotFound)
	}
	return helper.JsonCreated(c, qdto.FromModelAnswer(m))
}

// GET /answers/:id
func (ctl *AnswersController) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, msgAnswerNotFound)
	}

	m, err := ctl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, msgAnswerNotFound)
	}
	return helper.JsonOK(c, qdto.FromModelAnswer(m))
}

// DELETE /answers/:id
func (ctl *AnswersController) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, msgAnswerNotFound)
	}

	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, msgAnswerNotFound)
	}
	return helper.JsonNoContent(c)
}
