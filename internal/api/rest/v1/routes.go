package v1

import (
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/outfits"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Services groups everything the version 1 routes depend on
type Services struct {
	ClothingUpload   clothing.ClothingUploadService
	ClothingMetadata clothing.ClothingMetadataService
	ClothingPhoto    clothing.ClothingPhotoService
	Profile          profiles.ProfileService
	Weather          weather.WeatherService
	Outfit           outfits.OutfitService
	Account          accounts.AccountService
	Tokens           accounts.TokenService
	MaxUploadBytes   int64
	CheckDatabase    DatabaseChecker
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, log logger.Logger) {
	v1 := r.Group(BasePath) // lookup in version file

	// Public routes
	healthHandler := NewHealthHandler(services.CheckDatabase)
	v1.GET("/health", healthHandler.Health)
	v1.GET("/ping", healthHandler.Ping)

	authHandler := NewAuthHandler(services.Account, log)
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("")
	protected.Use(RequireAuth(services.Tokens))

	// Clothing Routes
	clothingHandler := NewClothingHandler(services.ClothingUpload, services.ClothingMetadata, services.ClothingPhoto, services.MaxUploadBytes, log)
	protected.POST("/clothing", clothingHandler.Upload)
	protected.GET("/clothing", clothingHandler.List)
	protected.GET("/clothing/:id", clothingHandler.GetByID)
	protected.GET("/clothing/:id/photo", clothingHandler.DownloadPhotoByID)
	protected.DELETE("/clothing/:id", clothingHandler.DeleteByID)

	// Profile Routes
	profileHandler := NewProfileHandler(services.Profile, log)
	protected.GET("/user/profile", profileHandler.Get)
	protected.PUT("/user/profile", profileHandler.Update)

	// Weather Routes
	weatherHandler := NewWeatherHandler(services.Weather, log)
	protected.GET("/weather", weatherHandler.Current)

	// Outfit Routes
	outfitHandler := NewOutfitHandler(services.Outfit, log)
	protected.POST("/outfits/generate", outfitHandler.Generate)
	protected.POST("/outfits/gap-finder", outfitHandler.FindGaps)
}
