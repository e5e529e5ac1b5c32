package v1

import (
	"net/http"

	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	protected.GET("/profile", handler.Get)
	protected.POST("/profile", handler.Upsert)
}

type ProfileRequest struct {
	PhoneNumber *string `json:"phone_number" binding:"omitempty,valid_phone"`
	Image       *string `json:"image" binding:"omitempty,url"`
}

// Get godoc
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile details", profile)
}

// Upsert godoc
// @Summary      Create or update own profile
// @Description  First write creates the profile, later writes update it
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      ProfileRequest  true  "Profile JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /profile [post]
// @Security     BearerAuth
func (h *ProfileHandler) Upsert(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUC.UpsertProfile(c.Request.Context(), actor, domain.ProfileInput{
		PhoneNumber: req.PhoneNumber,
		Image:       req.Image,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", profile)
}
