package v1

import (
	"net/http"

	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/token"
	"go-jobboard-api/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Tokens    *token.Provider
	Blacklist token.Blacklist

	AuthUC    domain.AuthUsecase
	UserUC    domain.UserUsecase
	OfferUC   domain.JobOfferUsecase
	AppUC     domain.ApplicationUsecase
	CVUC      domain.CVUsecase
	SkillUC   domain.SkillUsecase
	ProfileUC domain.ProfileUsecase
}

// NewRouter assembles the gin engine: middleware chain, health endpoint and
// every /v1 route.
func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	router := gin.New()
	router.Use(
		middleware.CORSMiddleware(),
		gin.Recovery(),
		gin.Logger(),
		middleware.RequestID(),
		middleware.SecurityHeadersMiddleware(),
		middleware.GlobalRateLimitMiddleware(),
		middleware.ErrorHandler(),
	)

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "OK", nil)
	})

	public := router.Group("/v1")
	protected := router.Group("/v1")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.Blacklist, deps.AuthUC))

	NewAuthHandler(public, protected, deps.AuthUC)
	NewUserHandler(protected, deps.UserUC)
	NewJobOfferHandler(protected, deps.OfferUC)
	NewApplicationHandler(protected, deps.AppUC)
	NewCVHandler(protected, deps.CVUC)
	NewSkillHandler(protected, deps.SkillUC)
	NewProfileHandler(protected, deps.ProfileUC)

	return router
}
