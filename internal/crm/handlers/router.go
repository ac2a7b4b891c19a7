package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kolab/crm/internal/crm/auth"
)

// Services bundles the controllers the router exposes.
type Services struct {
	Industries     IndustryController
	Categories     CategoryController
	Users          UserController
	Companies      CompanyController
	Contacts       ContactController
	Projects       ProjectController
	Collaborations CollaborationController
}

// NewRouter builds the gin engine serving the whole API under /api.
// Mutating endpoints sit behind the bearer token middleware.
func NewRouter(services Services, jwtSecret string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(auth.Middleware(jwtSecret))

	api := r.Group("/api")
	NewIndustryHandler(services.Industries, logger).Register(api)
	NewCategoryHandler(services.Categories, logger).Register(api)
	NewUserHandler(services.Users, jwtSecret, logger).Register(api)
	NewCompanyHandler(services.Companies, logger).Register(api)
	NewContactHandler(services.Contacts, logger).Register(api)
	NewProjectHandler(services.Projects, logger).Register(api)
	NewCollaborationHandler(services.Collaborations, logger).Register(api)
	return r
}
