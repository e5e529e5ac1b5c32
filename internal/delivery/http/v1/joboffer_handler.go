package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobOfferHandler struct {
	offerUC domain.JobOfferUsecase
}

func NewJobOfferHandler(protected *gin.RouterGroup, offerUC domain.JobOfferUsecase) {
	handler := &JobOfferHandler{offerUC: offerUC}

	offers := protected.Group("/job-offers")
	{
		offers.GET("", handler.List)
		offers.GET("/:id", handler.Get)
		offers.POST("", handler.Create)
		offers.PUT("/:id", handler.Update)
		offers.DELETE("/:id", handler.Delete)
	}
}

type JobOfferRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  string  `json:"description" binding:"required"`
	Location     string  `json:"location" binding:"required,max=255"`
	ContractType string  `json:"contract_type" binding:"required,oneof=full-time part-time freelance"`
	Salary       float64 `json:"salary" binding:"gte=0"`
	Status       string  `json:"status" binding:"omitempty,oneof=draft published closed"`
}

// List godoc
// @Summary      List job offers
// @Description  Recruiters see their own offers, admins see all, candidates see published only
// @Tags         job-offers
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /job-offers [get]
// @Security     BearerAuth
func (h *JobOfferHandler) List(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	offers, err := h.offerUC.ListJobOffers(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offer list", offers)
}

// Get godoc
// @Summary      Get a job offer
// @Tags         job-offers
// @Produce      json
// @Param        id   path      int  true  "Job offer ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-offers/{id} [get]
// @Security     BearerAuth
func (h *JobOfferHandler) Get(c *gin.Context) {
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

	offer, err := h.offerUC.GetJobOffer(c.Request.Context(), actor, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offer details", offer)
}

// Create godoc
// @Summary      Create a job offer
// @Description  Recruiter or admin only; the offer is owned by its creator
// @Tags         job-offers
// @Accept       json
// @Produce      json
// @Param        body  body      JobOfferRequest  true  "Job offer JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /job-offers [post]
// @Security     BearerAuth
func (h *JobOfferHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req JobOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.FormatValidationErrors(err))
		return
	}

	offer, err := h.offerUC.CreateJobOffer(c.Request.Context(), actor, domain.JobOfferInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		ContractType: req.ContractType,
		Salary:       req.Salary,
		Status:       req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job offer created", offer)
}

// Update godoc
// @Summary      Update a job offer
// @Description  Admin or the owning recruiter only
// @Tags         job-offers
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Job offer ID"
// @Param        body  body      JobOfferRequest  true  "Job offer JSON"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /job-offers/{id} [put]
// @Security     BearerAuth
func (h *JobOfferHandler) Update(c *gin.Context) {
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

	var req JobOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.FormatValidationErrors(err))
		return
	}

	offer, err := h.offerUC.UpdateJobOffer(c.Request.Context(), actor, id, domain.JobOfferInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		ContractType: req.ContractType,
		Salary:       req.Salary,
		Status:       req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offer updated", offer)
}

// Delete godoc
// @Summary      Delete a job offer
// @Description  Admin or the owning recruiter only
// @Tags         job-offers
// @Produce      json
// @Param        id   path      int  true  "Job offer ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-offers/{id} [delete]
// @Security     BearerAuth
func (h *JobOfferHandler) Delete(c *gin.Context) {
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

	if err := h.offerUC.DeleteJobOffer(c.Request.Context(), actor, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offer deleted", nil)
}

// pathID parses the :id path parameter shared by all resource handlers.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}
