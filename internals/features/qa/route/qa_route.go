package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qacontroller "problems_service/internals/features/qa/controller"
)

/*
Mounted on the public router (API_PREFIX, empty by default).
Trailing slashes are optional: the app runs with non-strict routing.
*/

func QARoutes(r fiber.Router, db *gorm.DB) {
	// ============================
	// QUESTIONS
	// ============================
	qCtrl := qacontroller.NewQuestionsController(db)
	aCtrl := qacontroller.NewAnswersController(db)

	qs := r.Group("/questions")
	qs.Get("/", qCtrl.List)         // GET    /questions/?page=
	qs.Post("/", qCtrl.Create)      // POST   /questions/
	qs.Get("/:id", qCtrl.GetByID)   // GET    /questions/:id/
	qs.Delete("/:id", qCtrl.Delete) // DELETE /questions/:id/ (cascade)

	qs.Post("/:question_id/answers", aCtrl.Create) // POST /questions/:question_id/answers/

	// ============================
	// ANSWERS
	// ============================
	ans := r.Group("/answers")
	ans.Get("/:id", aCtrl.GetByID)   // GET    /answers/:id/
	ans.Delete("/:id", aCtrl.Delete) // DELETE /answers/:id/
}
