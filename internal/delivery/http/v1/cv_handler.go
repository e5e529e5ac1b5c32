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

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(protected *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	cvs := protected.Group("/cvs")
	{
		cvs.GET("/:id", handler.Get)
		cvs.GET("/:id/download", handler.Download)
		cvs.POST("", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()), handler.Upload)
		cvs.PUT("/:id", handler.Update)
		cvs.DELETE("/:id", handler.Delete)
	}
}

type UploadCVRequest struct {
	Title string `form:"title" binding:"required,max=255"`
}

type UpdateCVRequest struct {
	Title *string `form:"title" binding:"omitempty,max=255"`
}

// Upload godoc
// @Summary      Upload a CV
// @Description  Multipart with a required file (pdf/doc/docx, max 2MB)
// @Tags         cvs
// @Accept       multipart/form-data
// @Produce      json
// @Param        title  formData  string  true  "CV title"
// @Param        file   formData  file    true  "CV file"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /cvs [post]
// @Security     BearerAuth
func (h *CVHandler) Upload(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req UploadCVRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationError(c, validation.FormatValidationErrors(err))
		return
	}

	file, err := formFile(c, "file")
	if err != nil {
		c.Error(err)
		return
	}
	if file == nil {
		c.Error(apperror.BadRequest("CV file is required"))
		return
	}

	cv, err := h.cvUC.Upload(c.Request.Context(), actor, req.Title, *file)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "CV uploaded", cv)
}

// Get godoc
// @Summary      Get a CV
// @Description  Owner, admin, or a recruiter the owner has applied to; includes a 5-minute download URL
// @Tags         cvs
// @Produce      json
// @Param        id   path      int  true  "CV ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id} [get]
// @Security     BearerAuth
func (h *CVHandler) Get(c *gin.Context) {
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

	cv, err := h.cvUC.Get(c.Request.Context(), actor, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV details", cv)
}

// Download godoc
// @Summary      Get a CV download link
// @Description  Returns a short-lived presigned URL; same visibility rules as viewing
// @Tags         cvs
// @Produce      json
// @Param        id   path      int  true  "CV ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id}/download [get]
// @Security     BearerAuth
func (h *CVHandler) Download(c *gin.Context) {
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

	url, err := h.cvUC.DownloadURL(c.Request.Context(), actor, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV download link", gin.H{"download_url": url})
}

// Update godoc
// @Summary      Update a CV
// @Description  Owner or admin; replacing the file releases the old asset first
// @Tags         cvs
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      int     true   "CV ID"
// @Param        title  formData  string  false  "CV title"
// @Param        file   formData  file    false  "Replacement file"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id} [put]
// @Security     BearerAuth
func (h *CVHandler) Update(c *gin.Context) {
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

	var req UpdateCVRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationError(c, validation.FormatValidationErrors(err))
		return
	}

	file, err := formFile(c, "file")
	if err != nil {
		c.Error(err)
		return
	}

	cv, err := h.cvUC.Update(c.Request.Context(), actor, id, domain.CVPatch{
		Title: req.Title,
		File:  file,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV updated", cv)
}

// Delete godoc
// @Summary      Delete a CV
// @Description  Owner or admin; the stored file is released before the record
// @Tags         cvs
// @Produce      json
// @Param        id   path      int  true  "CV ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id} [delete]
// @Security     BearerAuth
func (h *CVHandler) Delete(c *gin.Context) {
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

	if err := h.cvUC.Delete(c.Request.Context(), actor, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV deleted", nil)
}
