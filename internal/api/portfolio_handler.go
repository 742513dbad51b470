package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"devcanvas/internal/api/middleware"
	"devcanvas/internal/github"
	"devcanvas/internal/portfolio"
	"devcanvas/internal/render"
	"devcanvas/internal/resume"
	"devcanvas/internal/service"
	"devcanvas/internal/sharestate"
)

// PortfolioHandler serves GitHub data and merged portfolio documents.
type PortfolioHandler struct {
	service  *service.Service
	renderer *render.Renderer
}

// NewPortfolioHandler constructs a PortfolioHandler.
func NewPortfolioHandler(svc *service.Service, renderer *render.Renderer) *PortfolioHandler {
	return &PortfolioHandler{service: svc, renderer: renderer}
}

// GetGitHubData returns the normalized view for a username: profile, repos,
// curated top repos, and derived skills.
func (h *PortfolioHandler) GetGitHubData(c *gin.Context) {
	username := c.Param("username")

	view, err := h.service.GitHubData(c.Request.Context(), username)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type buildPortfolioRequest struct {
	Resume   *resume.ResumeData `json:"resume"`
	Template string             `json:"template"`
	Data     string             `json:"data"`
}

// BuildPortfolio merges GitHub data with an optional resume record from the
// request body and applies share-link overrides when a share string is given.
func (h *PortfolioHandler) BuildPortfolio(c *gin.Context) {
	username := c.Param("username")

	var req buildPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Template != "" && !portfolio.IsKnownTemplate(req.Template) {
		BadRequest(c, "unknown template")
		return
	}

	var ov *portfolio.Overrides
	if req.Data != "" {
		ov = sharestate.ToOverrides(sharestate.Decode(req.Data))
	}

	data, err := h.service.BuildPortfolio(c.Request.Context(), username, req.Resume, req.Template, ov)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetPortfolio builds a portfolio from GitHub data alone, honoring the
// template and data query parameters of a share link.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	username := c.Param("username")
	templateID := c.Query("template")
	if templateID != "" && !portfolio.IsKnownTemplate(templateID) {
		BadRequest(c, "unknown template")
		return
	}

	var ov *portfolio.Overrides
	if encoded := c.Query("data"); encoded != "" {
		ov = sharestate.ToOverrides(sharestate.Decode(encoded))
	}

	data, err := h.service.BuildPortfolio(c.Request.Context(), username, nil, templateID, ov)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetPortfolioHTML renders the portfolio as a standalone HTML page.
func (h *PortfolioHandler) GetPortfolioHTML(c *gin.Context) {
	username := c.Param("username")
	templateID := c.Query("template")
	if templateID != "" && !portfolio.IsKnownTemplate(templateID) {
		BadRequest(c, "unknown template")
		return
	}

	var ov *portfolio.Overrides
	if encoded := c.Query("data"); encoded != "" {
		ov = sharestate.ToOverrides(sharestate.Decode(encoded))
	}

	data, err := h.service.BuildPortfolio(c.Request.Context(), username, nil, templateID, ov)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	page, err := h.renderer.Render(*data)
	if err != nil {
		middleware.LoggerFromContext(c).Error("render portfolio", "error", err)
		Internal(c, "failed to render portfolio")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// respondFetchError maps the fetch error taxonomy onto HTTP statuses.
func respondFetchError(c *gin.Context, err error) {
	logger := middleware.LoggerFromContext(c)

	var notFound *github.NotFoundError
	var rateLimited *github.RateLimitError
	var netErr *github.NetworkError
	var apiErr *github.APIError

	switch {
	case errors.As(err, &notFound):
		NotFound(c, notFound.Error())
	case errors.As(err, &rateLimited):
		TooManyRequests(c, rateLimited.Error())
	case errors.As(err, &netErr):
		logger.Warn("github unreachable", "error", err)
		BadGateway(c, "could not reach GitHub, try again later")
	case errors.As(err, &apiErr):
		logger.Warn("github api error", "error", err)
		BadGateway(c, "GitHub returned an unexpected response")
	default:
		logger.Error("portfolio request failed", "error", err)
		Internal(c, "internal error")
	}
}
