package controller

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/caic-xyz/website/internal/config"
	"github.com/caic-xyz/website/internal/model"
	"github.com/caic-xyz/website/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SubmitRequest struct {
	Email           string   `json:"email"`
	Pain            string   `json:"pain"`
	Pay             string   `json:"pay"`
	TargetPlatforms []string `json:"target_platforms"`
	DevOS           []string `json:"dev_os"`
	MaxAgents       int64    `json:"max_agents"`
}

type WaitlistControllerConfig struct {
	LoginPath string
}

type WaitlistController struct {
	Config   WaitlistControllerConfig
	Router   *gin.RouterGroup
	Auth     *service.AuthService
	Waitlist *service.WaitlistService
	Webhook  *service.WebhookService
	template *template.Template
}

func NewWaitlistController(config WaitlistControllerConfig, router *gin.RouterGroup, auth *service.AuthService, waitlist *service.WaitlistService, webhook *service.WebhookService) *WaitlistController {
	return &WaitlistController{
		Config:   config,
		Router:   router,
		Auth:     auth,
		Waitlist: waitlist,
		Webhook:  webhook,
		template: template.Must(template.New("waitlist").Parse(waitlistTemplate)),
	}
}

func (controller *WaitlistController) SetupRoutes() {
	controller.Router.POST("/api/waitlist", controller.submitHandler)
	adminGroup := controller.Router.Group("/admin")
	adminGroup.GET("/waitlist", controller.listHandler)
	adminGroup.DELETE("/waitlist/:id", controller.deleteHandler)
}

func (controller *WaitlistController) submitHandler(c *gin.Context) {
	var req SubmitRequest

	err := c.ShouldBindJSON(&req)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to parse submission body")
		c.JSON(400, gin.H{
			"status":  400,
			"message": "Invalid request body",
		})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Pain = strings.TrimSpace(req.Pain)
	req.Pay = strings.TrimSpace(req.Pay)

	required := []struct {
		field string
		value string
	}{
		{"email", req.Email},
		{"pain", req.Pain},
		{"pay", req.Pay},
	}

	for _, item := range required {
		if item.value == "" {
			c.JSON(400, gin.H{
				"status":  400,
				"message": item.field + " is required",
			})
			return
		}
	}

	if req.MaxAgents < 0 {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "max_agents must not be negative",
		})
		return
	}

	submission := model.Submission{
		Email:           req.Email,
		Pain:            req.Pain,
		Pay:             req.Pay,
		TargetPlatforms: req.TargetPlatforms,
		DevOS:           req.DevOS,
		MaxAgents:       req.MaxAgents,
	}

	err = controller.Waitlist.Submit(c.Request.Context(), submission)
	if err != nil {
		log.Error().Err(err).Msg("Failed to store submission")
		c.JSON(500, gin.H{
			"status":  500,
			"message": "Internal Server Error",
		})
		return
	}

	controller.Webhook.Notify(submission)

	c.JSON(200, gin.H{
		"ok": true,
	})
}

func (controller *WaitlistController) listHandler(c *gin.Context) {
	context := c.MustGet("context").(*config.UserContext)

	if !context.IsLoggedIn {
		c.Redirect(http.StatusFound, controller.Config.LoginPath)
		return
	}

	if !controller.Auth.IsAdmin(context.Email) {
		c.JSON(403, gin.H{
			"status":  403,
			"message": "Forbidden",
		})
		return
	}

	submissions, err := controller.Waitlist.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list submissions")
		c.JSON(500, gin.H{
			"status":  500,
			"message": "Internal Server Error",
		})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(200)

	err = controller.template.Execute(c.Writer, gin.H{
		"Email":       context.Email,
		"Submissions": submissions,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to render waitlist table")
	}
}

func (controller *WaitlistController) deleteHandler(c *gin.Context) {
	context := c.MustGet("context").(*config.UserContext)

	if !context.IsLoggedIn {
		c.JSON(401, gin.H{
			"status":  401,
			"message": "Unauthorized",
		})
		return
	}

	if !controller.Auth.IsAdmin(context.Email) {
		c.JSON(403, gin.H{
			"status":  403,
			"message": "Forbidden",
		})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "Invalid id",
		})
		return
	}

	// Deleting an id that is already gone is fine
	err = controller.Waitlist.Delete(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to delete submission")
		c.JSON(500, gin.H{
			"status":  500,
			"message": "Internal Server Error",
		})
		return
	}

	c.JSON(200, gin.H{
		"ok": true,
	})
}

var waitlistTemplate = `<!DOCTYPE html>
<html>
<head>
<title>Waitlist</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f4f4f4; }
</style>
</head>
<body>
<p>Logged in as {{ .Email }} · <a href="/auth/logout">Logout</a></p>
<h1>Waitlist submissions</h1>
<table>
<tr><th>ID</th><th>Email</th><th>Pain</th><th>Pay</th><th>Platforms</th><th>Dev OS</th><th>Max agents</th><th>Created</th></tr>
{{ range .Submissions }}
<tr><td>{{ .ID }}</td><td>{{ .Email }}</td><td>{{ .Pain }}</td><td>{{ .Pay }}</td><td>{{ range .TargetPlatforms }}{{ . }} {{ end }}</td><td>{{ range .DevOS }}{{ . }} {{ end }}</td><td>{{ .MaxAgents }}</td><td>{{ .CreatedAt }}</td></tr>
{{ end }}
</table>
</body>
</html>
`
