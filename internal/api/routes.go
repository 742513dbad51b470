package api

import (
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"devcanvas/internal/render"
	"devcanvas/internal/resume"
	"devcanvas/internal/service"
	"devcanvas/internal/storage"
)

// RegisterRoutes registers the API routes under /v1.
func RegisterRoutes(
	router *gin.Engine,
	svc *service.Service,
	renderer *render.Renderer,
	parser *resume.Parser,
	storageClient *storage.Client,
	clamdAddr string,
	asynqClient *asynq.Client,
) {
	var store archiver
	if storageClient != nil {
		store = storageClient
	}

	portfolioHandler := NewPortfolioHandler(svc, renderer)
	resumeHandler := NewResumeHandler(parser, store, clamdAddr)
	shareHandler := NewShareHandler()
	templateHandler := NewTemplateHandler()
	prewarmHandler := NewPrewarmHandler(asynqClient)

	v1 := router.Group("/v1")
	{
		v1.GET("/github/:username", portfolioHandler.GetGitHubData)

		portfolioGroup := v1.Group("/portfolio")
		{
			portfolioGroup.POST("/:username", portfolioHandler.BuildPortfolio)
			portfolioGroup.GET("/:username", portfolioHandler.GetPortfolio)
			portfolioGroup.GET("/:username/html", portfolioHandler.GetPortfolioHTML)
		}

		resumeGroup := v1.Group("/resume")
		{
			resumeGroup.POST("", resumeHandler.UploadResume)
			resumeGroup.GET("", resumeHandler.GetUploadInfo)
			resumeGroup.GET("/uploads", resumeHandler.ListUploads)
			resumeGroup.GET("/uploads/url", resumeHandler.GetUploadURL)
			resumeGroup.DELETE("/uploads", resumeHandler.DeleteUpload)
		}

		shareGroup := v1.Group("/share")
		{
			shareGroup.POST("", shareHandler.EncodeState)
			shareGroup.GET("", shareHandler.DecodeState)
		}

		v1.GET("/templates", templateHandler.ListTemplates)

		if asynqClient != nil {
			v1.POST("/prewarm/:username", prewarmHandler.Prewarm)
		}
	}
}
