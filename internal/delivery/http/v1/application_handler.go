package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	apps := protected.Group("/applications")
	{
		apps.GET("", handler.List)
		apps.GET("/:id", handler.Get)
		apps.POST("", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()), handler.Submit)
		apps.PUT("/:id", handler.Update)
		apps.DELETE("/:id", handler.Delete)
	}
}

type SubmitApplicationRequest struct {
	JobOfferID  int64  `form:"job_offer_id" binding:"required"`
	CoverLetter string `form:"cover_letter" binding:"required,max=2000"`
}

type UpdateApplicationRequest struct {
	CoverLetter *string `form:"cover_letter" binding:"omitempty,max=2000"`
	Status      *string `form:"status" binding:"omitempty,oneof=pending reviewed interview accepted rejected"`
}

// Submit godoc
// @Summary      Apply to a job offer
// @Description  Candidate only; multipart with an optional cv file (pdf/doc/docx, max 2MB)
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        job_offer_id  formData  int     true   "Job offer ID"
// @Param        cover_letter  formData  string  true   "Cover letter"
// @Param        cv            formData  file    false  "CV file"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req SubmitApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationError(c, validation.FormatValidationErrors(err))
		return
	}

	cv, err := formFile(c, "cv")
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.appUC.Submit(c.Request.Context(), actor, req.JobOfferID, req.CoverLetter, cv)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// List godoc
// @Summary      List applications
// @Description  Scoped by role; ?job_offer_id= filter is allowed only for admins and the offer's recruiter
// @Tags         applications
// @Produce      json
// @Param        job_offer_id  query     int  false  "Filter by job offer"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var jobOfferID *int64
	if raw := c.Query("job_offer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job_offer_id format"))
			return
		}
		jobOfferID = &id
	}

	apps, err := h.appUC.List(c.Request.Context(), actor, jobOfferID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", apps)
}

// Get godoc
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.appUC.Get(c.Request.Context(), actor, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

// Update godoc
// @Summary      Update an application
// @Description  Candidates rework their pending submission (cover letter, CV); recruiters and admins move the status
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      int     true   "Application ID"
// @Param        cover_letter  formData  string  false  "Cover letter"
// @Param        status        formData  string  false  "New status"
// @Param        cv            formData  file    false  "Replacement CV file"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) Update(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationError(c, validation.FormatValidationErrors(err))
		return
	}

	cv, err := formFile(c, "cv")
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.appUC.Update(c.Request.Context(), actor, id, domain.ApplicationPatch{
		CoverLetter: req.CoverLetter,
		Status:      req.Status,
		CV:          cv,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application updated", app)
}

// Delete godoc
// @Summary      Withdraw an application
// @Description  Pending applications only for candidates; admins always
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.appUC.Delete(c.Request.Context(), actor, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application deleted", nil)
}

// formFile reads an optional multipart file fully into memory. A missing
// field returns nil without error.
func formFile(c *gin.Context, field string) (*domain.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperror.BadRequest("Could not read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperror.BadRequest("Could not read uploaded file")
	}
	return &domain.FileUpload{Filename: fh.Filename, Data: data}, nil
}
