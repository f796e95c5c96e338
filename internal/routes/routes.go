package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tavola/restaurant-hours/internal/audit"
	"github.com/tavola/restaurant-hours/internal/cache"
	"github.com/tavola/restaurant-hours/internal/config"
	"github.com/tavola/restaurant-hours/internal/handlers"
	infraRepo "github.com/tavola/restaurant-hours/internal/infra/repository"
	"github.com/tavola/restaurant-hours/internal/middleware"
	ucRestaurant "github.com/tavola/restaurant-hours/internal/usecase/restaurant"
	ucSchedule "github.com/tavola/restaurant-hours/internal/usecase/schedule"
	"github.com/tavola/restaurant-hours/internal/validators"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store cache.Cache, cfg *config.Config) {

	r.Use(middleware.CORSMiddleware())
	validators.Register()

	restaurantRepo := infraRepo.NewRestaurantGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	ttl := cfg.CacheTTL

	restaurantHandler := handlers.NewRestaurantHandler(
		ucRestaurant.NewCreateRestaurant(restaurantRepo, store, auditDispatcher),
		ucRestaurant.NewGetRestaurantByID(restaurantRepo, store, ttl),
		ucRestaurant.NewListRestaurants(restaurantRepo, store, ttl),
		ucRestaurant.NewSearchRestaurants(restaurantRepo, store, ttl),
		ucRestaurant.NewUpdateRestaurant(restaurantRepo, store, auditDispatcher),
		ucRestaurant.NewDeleteRestaurant(restaurantRepo, store, auditDispatcher),
		ucRestaurant.NewIsOpenRestaurant(restaurantRepo),
	)

	scheduleHandler := handlers.NewScheduleHandler(
		ucSchedule.NewCreateSchedules(scheduleRepo, store, auditDispatcher),
		ucSchedule.NewGetSchedules(scheduleRepo, store, ttl),
		ucSchedule.NewUpdateSchedules(scheduleRepo, store, auditDispatcher),
		ucSchedule.NewDeleteSchedules(scheduleRepo, store, auditDispatcher),
	)

	restaurants := r.Group("/restaurants")
	{
		restaurants.POST("", restaurantHandler.Create)
		restaurants.GET("", restaurantHandler.List)
		restaurants.GET("/search", restaurantHandler.Search)
		restaurants.GET("/:id", restaurantHandler.GetByID)
		restaurants.PATCH("/:id", restaurantHandler.Update)
		restaurants.DELETE("/:id", restaurantHandler.Delete)
		restaurants.GET("/:id/open", restaurantHandler.IsOpen)

		restaurants.POST("/:id/schedules", scheduleHandler.Create)
		restaurants.GET("/:id/schedules", scheduleHandler.Get)
		restaurants.PUT("/:id/schedules", scheduleHandler.Update)
	}

	r.DELETE("/schedules", scheduleHandler.Delete)
}
