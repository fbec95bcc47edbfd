package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/mealbridge/mealbridge-api/docs"
	v1 "github.com/mealbridge/mealbridge-api/internal/api/handler/v1"
	"github.com/mealbridge/mealbridge-api/internal/api/middleware"
	"github.com/mealbridge/mealbridge-api/internal/config"
	"github.com/mealbridge/mealbridge-api/internal/repository"
	"github.com/mealbridge/mealbridge-api/internal/repository/dao"
	"github.com/mealbridge/mealbridge-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	donationHandler := s.initDonationHandler(db)
	s.MountHandlers(authHandler, donationHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initDonationHandler(db *gorm.DB) *v1.DonationHandler {
	donationDAO := dao.NewDonationDAO(db)
	repo := repository.NewDonationRepository(donationDAO)
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewDonationService(repo, userRepo)
	handler := v1.NewDonationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, donationHandler *v1.DonationHandler) {
	auth := s.Router.Group("")
	{
		auth.POST("/register", authHandler.HandleRegister)
		auth.POST("/login", authHandler.HandleLogin)
	}

	donations := s.Router.Group("", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		donations.POST("/donations", donationHandler.HandleCreateDonation)
		donations.GET("/donations", donationHandler.HandleListDonations)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.Title = "MealBridge API"
	docs.SwaggerInfo.Description = "Food-donation marketplace: donors post surplus food, split into claimable lots."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
