package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"problems_service/internals/constants"
	qdto "problems_service/internals/features/qa/dto"
	"problems_service/internals/features/qa/repository"
	helper "problems_service/internals/helpers"
)

const msgQuestionNotFound = "Question not found"

/* =========================================================
   Controller
========================================================= */

type QuestionsController struct {
	Repo repository.QuestionRepository
}

func NewQuestionsController(db *gorm.DB) *QuestionsController {
	return &QuestionsController{Repo: repository.NewQuestionRepo(db)}
}

/* =========================================================
   READ
========================================================= */

// GET /questions/?page=
func (ctl *QuestionsController) List(c *fiber.Ctx) error {
	p, err := helper.ResolvePaging(c, constants.PageSize)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Invalid page.")
	}

	rows, total, err := ctl.Repo.List(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		return writeError(c, err, msgQuestionNotFound)
	}
	if p.Page > helper.TotalPages(total, p.PerPage) {
		return helper.JsonError(c, fiber.StatusNotFound, "Invalid page.")
	}

	next, prev := helper.PageLinks(c, p, total)
	log.Printf("[INFO] Retrieved list of questions (page %d)", p.Page)
	return helper.JsonOK(c, qdto.QuestionPage{
		Count:    total,
		Next:     next,
		Previous: prev,
		Results:  qdto.FromModelsQuestions(rows),
	})
}

// GET /questions/:id
func (ctl *QuestionsController) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, msgQuestionNotFound)
	}

	m, err := ctl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, msgQuestionNotFound)
	}
	return helper.JsonOK(c, qdto.FromModelQuestion(m))
}

/* =========================================================
   WRITE
========================================================= */

// POST /questions/
func (ctl *QuestionsController) Create(c *fiber.Ctx) error {
	var req qdto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, err, msgQuestionNotFound)
	}

	m, err := ctl.Repo.Create(c.UserContext(), *req.Text)
	if err != nil {
		return writeError(c, err, msgQuestionNotFound)
	}
	return helper.JsonCreated(c, qdto.FromModelQuestion(m))
}

// DELETE /questions/:id (answers go with it)
func (ctl *QuestionsController) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, msgQuestionNotFound)
	}

	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, msgQuestionNotFound)
	}
	return helper.JsonNoContent(c)
}
