package pages

import (
	"embed"
	"net/http"

	"github.com/csv-challenge/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed *.html
var pageFiles embed.FS

// Handler serves the static forms that talk to the JSON API.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Init(router gin.IRouter) {
	router.GET("/", h.IndexPage)
	router.GET("/register", h.RegisterPage)
	router.GET("/verify", h.VerifyPage)
	router.GET("/login", h.LoginPage)
	router.GET("/submit", h.SubmitPage)
}

func (h *Handler) IndexPage(c *gin.Context) {
	h.serveHTML(c, "index.html", "index page")
}

func (h *Handler) RegisterPage(c *gin.Context) {
	h.serveHTML(c, "register.html", "register page")
}

func (h *Handler) VerifyPage(c *gin.Context) {
	h.serveHTML(c, "verify.html", "verify page")
}

func (h *Handler) LoginPage(c *gin.Context) {
	h.serveHTML(c, "login.html", "login page")
}

func (h *Handler) SubmitPage(c *gin.Context) {
	h.serveHTML(c, "submit.html", "submit page")
}

func (h *Handler) serveHTML(c *gin.Context, filename, pageName string) {
	htmlContent, err := pageFiles.ReadFile(filename)
	if err != nil {
		logger.Error("failed to read "+pageName, zap.Error(err), zap.String("file", filename))
		c.String(http.StatusInternalServerError, "Failed to read "+pageName)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", htmlContent)
}
