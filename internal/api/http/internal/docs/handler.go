package docs

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/csv-challenge/backend/internal/config"
	"github.com/csv-challenge/backend/internal/doctoken"
	"github.com/csv-challenge/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

const (
	realm        = "docs"
	assetsPrefix = "/docs/assets"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Handler puts the swagger document behind basic auth and short lived tokens.
type Handler struct {
	gate     *doctoken.Gate
	config   config.DocsConfig
	instance string
}

func NewHandler(gate *doctoken.Gate, cfg config.DocsConfig, instance string) *Handler {
	return &Handler{
		gate:     gate,
		config:   cfg,
		instance: instance,
	}
}

func (h *Handler) Init(router gin.IRouter) {
	accounts := gin.Accounts{h.config.Username: h.config.Password}
	router.GET("/docs-auth", gin.BasicAuthForRealm(accounts, realm), h.issueToken)
	router.GET("/docs", h.page)

	assets := swaggerFiles.NewHandler()
	assets.Prefix = assetsPrefix
	router.GET(assetsPrefix+"/*any", gin.WrapH(assets))
}

func (h *Handler) issueToken(c *gin.Context) {
	username := c.GetString(gin.AuthUserKey)

	token, err := h.gate.Issue(c.Request.Context(), username)
	if err != nil {
		logger.Error("issue docs token failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	c.Redirect(http.StatusFound, "/docs?token="+url.QueryEscape(token))
}

func (h *Handler) page(c *gin.Context) {
	if _, err := h.gate.Validate(c.Request.Context(), c.Query("token")); err != nil {
		if !errors.Is(err, doctoken.ErrInvalidToken) {
			logger.Error("validate docs token failed", zap.Error(err))
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: doctoken.ErrInvalidToken.Error()})
		return
	}

	doc, err := swag.ReadDoc(h.instance)
	if err != nil {
		logger.Error("read swagger doc failed", zap.String("instance", h.instance), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pageTemplate.Execute(c.Writer, pageData{Assets: assetsPrefix, Spec: template.JS(doc)}); err != nil {
		logger.Error("render docs page failed", zap.Error(err))
	}
}

type pageData struct {
	Assets string
	Spec   template.JS
}

var pageTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>API documentation</title>
  <link rel="stylesheet" type="text/css" href="{{.Assets}}/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="{{.Assets}}/swagger-ui-bundle.js"></script>
<script src="{{.Assets}}/swagger-ui-standalone-preset.js"></script>
<script>
window.onload = function () {
  window.ui = SwaggerUIBundle({
    spec: {{.Spec}},
    dom_id: "#swagger-ui",
    deepLinking: true,
    presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
    layout: "StandaloneLayout"
  });
};
</script>
</body>
</html>
`))
