package endpoint

import (
	"net/http"

	"github.com/ariebrainware/dentist-api/config"
	_ "github.com/ariebrainware/dentist-api/docs"
	"github.com/ariebrainware/dentist-api/middleware"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const streamPath = "/complaints/stream"

// NewRouter builds the engine with the middleware chain and every route.
func NewRouter(h *Handler, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(h.log),
		middleware.EndpointCallLogger(h.log),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{streamPath})),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to " + cfg.AppName + "!"})
	})
	r.GET("/healthz", h.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/allergies", h.ListAllergies)
	r.GET("/medical_conditions", h.ListMedicalConditions)

	loginLimit := middleware.RateLimiter(h.rdb, middleware.RateLimitConfig{
		Limit:  cfg.LoginRateLimit,
		Window: cfg.LoginRateWindow,
	})
	authGroup := r.Group("/auth")
	authGroup.POST("/signup", loginLimit, h.Signup)
	authGroup.POST("/login", loginLimit, h.Login)
	authGroup.DELETE("/logout", h.require(anyValidCaller), h.Logout)
	authGroup.PATCH("/phonenumber", h.require(anyValidCaller), h.ResetPhoneNumber)
	r.GET("/token/validate", h.require(anyValidCaller), h.ValidateToken)

	r.POST("/details", h.require(adminOnly), h.RegisterPatient)
	r.GET("/patients", h.require(staff), h.ListPatients)
	r.GET("/patients/:phonenumber", h.require(staff), h.GetPatient)

	r.GET("/complaints", h.require(staff), h.ListComplaints)
	r.POST("/complaints", h.require(staff), h.RegisterComplaint)
	r.GET("/complaints/export", h.require(staff), h.ExportComplaints)
	r.GET(streamPath, h.require(staff), h.StreamComplaints)

	r.GET("/followups", h.require(staff), h.ListFollowUps)
	r.POST("/followups", h.require(staff), h.AddFollowUp)

	r.GET("/medical_details", h.require(anyValidCaller), h.MyMedicalDetails)
	r.GET("/medical_details/:phonenumber/:name", h.require(dentistOnly), h.GetMedicalDetails)
	r.POST("/medical_details", h.require(dentistOnly), h.SaveMedicalDetails)

	r.GET("/treatments", h.require(dentistOnly), h.ListTreatments)
	r.POST("/treatments", h.require(dentistOnly), h.CreateTreatment)
	r.DELETE("/treatments/:id", h.require(dentistOnly), h.DeleteTreatment)

	r.GET("/prescriptions", h.require(dentistOnly), h.ListPrescriptions)
	r.POST("/prescriptions", h.require(dentistOnly), h.CreatePrescription)
	r.PATCH("/prescriptions/:id", h.require(dentistOnly), h.UpdatePrescription)
	r.DELETE("/prescriptions/:id", h.require(dentistOnly), h.DeletePrescription)

	return r
}

func (h *Handler) require(roles model.RoleSet) gin.HandlerFunc {
	return middleware.RequireRoles(h.Guard, h.Sessions, roles)
}
