// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "problems_service/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts health at the root and the Q&A API under prefix.
func SetupRoutes(app *fiber.App, db *gorm.DB, prefix string) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	var public fiber.Router = app
	if prefix != "" {
		public = app.Group(prefix)
	}

	log.Printf("[INFO] Mounting Q&A routes at %q...", prefix+"/")
	routeDetails.QAPublicRoutes(public, db)
}
