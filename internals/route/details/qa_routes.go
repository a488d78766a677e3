package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qaroutes "problems_service/internals/features/qa/route"
)

func QAPublicRoutes(r fiber.Router, db *gorm.DB) {
	qaroutes.QARoutes(r, db)
}
