package router

import (
	"net/http"

	"github.com/craftnet/craftnet-be/internal/api/domain"
	"github.com/craftnet/craftnet-be/internal/api/handler"
	"github.com/craftnet/craftnet-be/internal/realtime"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies, gateway *realtime.Gateway) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())
	r.Use(IdentityMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "craftnet-api",
		})
	})

	// Real-time gateway
	r.GET("/ws", gateway.Handle)

	jobHandler := handler.NewJobHandler(deps)
	proposalHandler := handler.NewProposalHandler(deps)
	referenceHandler := handler.NewReferenceHandler(deps)

	customerOnly := RequireRole(domain.RoleCustomer)
	masterOnly := RequireRole(domain.RoleMaster)
	anyRole := RequireRole(domain.RoleCustomer, domain.RoleMaster)

	v1 := r.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.POST("", customerOnly, jobHandler.CreateJob)

			jobs.GET("/user/my-jobs", customerOnly, jobHandler.MyJobs)
			jobs.GET("/user/in-progress", customerOnly, jobHandler.CustomerInProgressJobs)
			jobs.POST("/accept-proposal", customerOnly, jobHandler.AcceptProposal)
			jobs.POST("/complete", customerOnly, jobHandler.CompleteJob)

			jobs.GET("/master/in-progress", masterOnly, jobHandler.MasterInProgressJobs)
			jobs.GET("/master/completed", masterOnly, jobHandler.MasterCompletedJobs)

			jobs.GET("/in-progress/count", anyRole, jobHandler.InProgressCount)

			jobs.GET("/pending", jobHandler.ListPendingJobs)
			jobs.GET("/filter", jobHandler.FilterJobs)
			jobs.GET("/:id", jobHandler.GetJob)
		}

		proposals := v1.Group("/proposals")
		{
			proposals.POST("", masterOnly, proposalHandler.CreateProposal)
			proposals.GET("/master/my-proposals", masterOnly, proposalHandler.MyProposals)
			proposals.GET("/job/:job_id", customerOnly, proposalHandler.ProposalsByJob)
			proposals.GET("/has/:job_id", masterOnly, proposalHandler.HasProposal)
			proposals.GET("/count/:job_id", proposalHandler.ProposalCount)
		}

		v1.GET("/categories", referenceHandler.ListCategories)
		v1.GET("/cities", referenceHandler.ListCities)
	}

	return r
}
