package v1

import (
	"net/http"

	"github.com/csv-challenge/backend/internal/domain"
	"github.com/csv-challenge/backend/internal/service"
	"github.com/csv-challenge/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initTeamsRoutes(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/verify", h.verify)
		api.POST("/login", h.login)
		api.GET("/team/:username/members", h.getTeamMembers)
	}

	router.GET("/get/registrations/all", h.getAllRegistrations)
	router.DELETE("/delete/member/:username", h.deleteRegistration)
}

type memberRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	IsLeader bool   `json:"isLeader"`
}

type registerRequest struct {
	TeamName     string          `json:"teamName" binding:"required,max=255"`
	Organization string          `json:"organization" binding:"required,max=255"`
	OrgAddress   string          `json:"orgAddress" binding:"max=512"`
	Email        string          `json:"email" binding:"required,email,max=255"`
	Username     string          `json:"username" binding:"required,username"`
	Password     string          `json:"password" binding:"required,max=255"`
	Members      []memberRequest `json:"members" binding:"required,dive"`
}

type registerData struct {
	TeamName    string `json:"teamName"`
	Username    string `json:"username"`
	MemberCount int    `json:"memberCount"`
}

type registerResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Data    registerData `json:"data"`
}

// @Summary Register team
// @Tags Teams
// @Description Stores an unverified team with its members and mails a 6 digit verification code.
// @ModuleID register
// @Accept  json
// @Produce  json
// @Param input body registerRequest true "Team registration"
// @Success 200 {object} registerResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	input := service.RegisterInput{
		TeamName:     req.TeamName,
		Organization: req.Organization,
		OrgAddress:   req.OrgAddress,
		Email:        req.Email,
		Username:     req.Username,
		Password:     req.Password,
		Members:      make([]service.MemberInput, 0, len(req.Members)),
	}
	for _, m := range req.Members {
		input.Members = append(input.Members, service.MemberInput{Name: m.Name, IsLeader: m.IsLeader})
	}

	team, err := h.services.Teams.Register(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, "register team", err)
		return
	}

	logger.Info("team registered", zap.String("username", team.Username), zap.Int("members", len(team.Members)))

	c.JSON(http.StatusOK, registerResponse{
		Status:  "success",
		Message: "Registration successful. Check your email for the verification code.",
		Data: registerData{
			TeamName:    team.TeamName,
			Username:    team.Username,
			MemberCount: len(team.Members),
		},
	})
}

type verifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,numeric_code"`
}

// @Summary Verify email
// @Tags Teams
// @Description Redeems the verification code and marks the team verified.
// @ModuleID verify
// @Accept  json
// @Produce  json
// @Param input body verifyRequest true "Email and code"
// @Success 200 {object} statusResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /api/verify [post]
func (h *Handler) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Teams.Verify(c.Request.Context(), req.Email, req.Code); err != nil {
		serviceErrorResponse(c, "verify team", err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		Status:  "success",
		Message: "Email verified successfully. Registration complete.",
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Status   string `json:"status"`
	Token    string `json:"token"`
	Username string `json:"username"`
	TeamName string `json:"teamName"`
}

// @Summary Login
// @Tags Teams
// @Description Accepts a username or an email as login. Only verified teams can log in.
// @ModuleID login
// @Accept  json
// @Produce  json
// @Param input body loginRequest true "Credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	res, err := h.services.Teams.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		serviceErrorResponse(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Status:   "success",
		Token:    res.Token,
		Username: res.Team.Username,
		TeamName: res.Team.TeamName,
	})
}

type memberResponse struct {
	Name     string `json:"name"`
	IsLeader bool   `json:"isLeader"`
}

type registrationResponse struct {
	TeamName     string           `json:"teamName"`
	Organization string           `json:"organization"`
	Email        string           `json:"email"`
	Username     string           `json:"username"`
	MemberCount  int              `json:"memberCount"`
	Members      []memberResponse `json:"members"`
}

type registrationsListResponse struct {
	Total int                    `json:"total"`
	Data  []registrationResponse `json:"data"`
}

func newMembersResponse(members []domain.TeamMember) []memberResponse {
	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, memberResponse{Name: m.Name, IsLeader: m.IsLeader})
	}
	return out
}

// @Summary List registrations
// @Tags Teams
// @Description Verified teams with their members.
// @ModuleID getAllRegistrations
// @Produce  json
// @Success 200 {object} registrationsListResponse
// @Failure 500 {object} ErrorStruct
// @Router /get/registrations/all [get]
func (h *Handler) getAllRegistrations(c *gin.Context) {
	teams, err := h.services.Teams.GetAllVerified(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, "get registrations", err)
		return
	}

	response := registrationsListResponse{
		Total: len(teams),
		Data:  make([]registrationResponse, 0, len(teams)),
	}
	for _, t := range teams {
		response.Data = append(response.Data, registrationResponse{
			TeamName:     t.TeamName,
			Organization: t.Organization,
			Email:        t.Email,
			Username:     t.Username,
			MemberCount:  len(t.Members),
			Members:      newMembersResponse(t.Members),
		})
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete registration
// @Tags Teams
// @Description Removes a registration in any state together with its members.
// @ModuleID deleteRegistration
// @Produce  json
// @Param username path string true "Team username"
// @Success 200 {object} statusResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /delete/member/{username} [delete]
func (h *Handler) deleteRegistration(c *gin.Context) {
	username := c.Param("username")

	if err := h.services.Teams.DeleteByUsername(c.Request.Context(), username); err != nil {
		serviceErrorResponse(c, "delete registration", err)
		return
	}

	logger.Info("registration deleted", zap.String("username", username))

	c.JSON(http.StatusOK, statusResponse{
		Status:  "success",
		Message: "Registration for " + username + " deleted",
	})
}

type teamMembersResponse struct {
	TeamName    string           `json:"teamName"`
	Username    string           `json:"username"`
	MemberCount int              `json:"memberCount"`
	Members     []memberResponse `json:"members"`
}

// @Summary Team members
// @Tags Teams
// @Description Members of a verified team.
// @ModuleID getTeamMembers
// @Produce  json
// @Param username path string true "Team username"
// @Success 200 {object} teamMembersResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /api/team/{username}/members [get]
func (h *Handler) getTeamMembers(c *gin.Context) {
	team, err := h.services.Teams.GetVerifiedByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		serviceErrorResponse(c, "get team members", err)
		return
	}

	c.JSON(http.StatusOK, teamMembersResponse{
		TeamName:    team.TeamName,
		Username:    team.Username,
		MemberCount: len(team.Members),
		Members:     newMembersResponse(team.Members),
	})
}
