package handlers

import (
	"errors"
	"net/http"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIHandler serves read-only JSON views of the stored events.
type APIHandler struct {
	services *service.Instance
	log      *zap.SugaredLogger
}

func NewAPIHandler(services *service.Instance, log *zap.SugaredLogger) *APIHandler {
	return &APIHandler{
		services: services,
		log:      log,
	}
}

// RegisterRoutes mounts the health check, the event API and, when slack is not nil, the slash command endpoint.
func RegisterRoutes(r *gin.Engine, api *APIHandler, slack *SlackHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	apiGroup := r.Group("api/v1")
	{
		apiGroup.GET("/campaigns", api.ListCampaigns)
		apiGroup.GET("/campaigns/:ref", api.CampaignDetails)
		apiGroup.GET("/oneshots", api.ListOneshots)
		apiGroup.GET("/oneshots/:ref", api.OneshotDetails)
	}

	if slack != nil {
		r.POST("/slack/commands", gin.WrapF(slack.HandleSlashCommand))
	}
}

func (h *APIHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.services.Campaign.List(c.Request.Context())
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": campaigns})
}

// CampaignDetails accepts an id or a name fragment, like the details command.
func (h *APIHandler) CampaignDetails(c *gin.Context) {
	campaigns, err := h.services.Campaign.Details(c.Request.Context(), c.Param("ref"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": campaigns})
}

func (h *APIHandler) ListOneshots(c *gin.Context) {
	oneshots, err := h.services.Oneshot.List(c.Request.Context())
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": oneshots})
}

func (h *APIHandler) OneshotDetails(c *gin.Context) {
	oneshots, err := h.services.Oneshot.Details(c.Request.Context(), c.Param("ref"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": oneshots})
}

func (h *APIHandler) sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Errorw("API request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
