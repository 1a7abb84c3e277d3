package v1

import (
	"net/http"

	"github.com/csv-challenge/backend/internal/domain"
	"github.com/csv-challenge/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initSubmissionsRoutes(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.POST("/submission", h.createSubmission)
		api.GET("/submission/:username", h.getSubmissionsByUsername)
		api.GET("/submissions/all", h.getAllSubmissions)
	}
}

type createSubmissionRequest struct {
	Username    string `json:"username" binding:"required"`
	Title       string `json:"title" binding:"required,max=255"`
	URL         string `json:"url" binding:"required,url,max=2048"`
	Description string `json:"description" binding:"max=4096"`
}

type submissionResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    domain.Submission `json:"data"`
}

type submissionsListResponse struct {
	Total int                 `json:"total"`
	Data  []domain.Submission `json:"data"`
}

// @Summary Create submission
// @Tags Submissions
// @Description Records a result submission for a verified team.
// @ModuleID createSubmission
// @Accept  json
// @Produce  json
// @Param input body createSubmissionRequest true "Submission"
// @Success 200 {object} submissionResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /api/submission [post]
func (h *Handler) createSubmission(c *gin.Context) {
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	submission, err := h.services.Submissions.Create(c.Request.Context(), service.SubmissionInput{
		Username:    req.Username,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		serviceErrorResponse(c, "create submission", err)
		return
	}

	c.JSON(http.StatusOK, submissionResponse{
		Status:  "success",
		Message: "Submission received",
		Data:    *submission,
	})
}

// @Summary Team submissions
// @Tags Submissions
// @Description Submissions of a verified team, newest first.
// @ModuleID getSubmissionsByUsername
// @Produce  json
// @Param username path string true "Team username"
// @Success 200 {object} submissionsListResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /api/submission/{username} [get]
func (h *Handler) getSubmissionsByUsername(c *gin.Context) {
	submissions, err := h.services.Submissions.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		serviceErrorResponse(c, "get team submissions", err)
		return
	}

	c.JSON(http.StatusOK, newSubmissionsList(submissions))
}

// @Summary All submissions
// @Tags Submissions
// @Description Every submission, newest first.
// @ModuleID getAllSubmissions
// @Produce  json
// @Success 200 {object} submissionsListResponse
// @Failure 500 {object} ErrorStruct
// @Router /api/submissions/all [get]
func (h *Handler) getAllSubmissions(c *gin.Context) {
	submissions, err := h.services.Submissions.GetAll(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, "get submissions", err)
		return
	}

	c.JSON(http.StatusOK, newSubmissionsList(submissions))
}

func newSubmissionsList(submissions []domain.Submission) submissionsListResponse {
	if submissions == nil {
		submissions = []domain.Submission{}
	}

	return submissionsListResponse{Total: len(submissions), Data: submissions}
}
