package v1

import (
	"net/http"

	"go-contact-form/config"
	"go-contact-form/internal/delivery/http/middleware"
	"go-contact-form/internal/delivery/http/response"
	"go-contact-form/internal/delivery/http/web"
	"go-contact-form/internal/domain"
	"go-contact-form/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC   domain.ContactFormUsecase
	HealthUC    usecase.HealthUsecase
	RateLimiter *middleware.RateLimiter
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		var status map[string]string
		if deps.HealthUC != nil {
			status = deps.HealthUC.Check(c.Request.Context())
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes, rate limited per client
	limited := v1.Group("")
	page := r.Group("")
	if deps.RateLimiter != nil {
		limited.Use(deps.RateLimiter.Middleware())
		page.Use(deps.RateLimiter.Middleware())
	}
	NewContactHandler(limited, deps.ContactUC)
	NewContactPageHandler(page, deps.ContactUC)

	return r
}
