package router

import (
	"time"

	"github.com/Claudio-Lins/amigo-tvde-backend/config"
	"github.com/Claudio-Lins/amigo-tvde-backend/handlers"
	"github.com/Claudio-Lins/amigo-tvde-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// Dependencies holds everything required to set up routes.
type Dependencies struct {
	Config         *config.Config
	RedisClient    *redis.Client
	PeriodHandler  *handlers.PeriodHandler
	VehicleHandler *handlers.VehicleHandler
	ShiftHandler   *handlers.ShiftHandler
	FuelHandler    *handlers.FuelHandler
	ExpenseHandler *handlers.ExpenseHandler
	ReportHandler  *handlers.ReportHandler
	HealthHandler  *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics routes don't require auth.
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.Use(middleware.AuthMiddleware(&deps.Config.Server))
	if deps.RedisClient != nil {
		window := time.Duration(deps.Config.RateLimit.WindowSeconds) * time.Second
		v1.Use(middleware.AuthRateLimiter(deps.RedisClient, deps.Config.RateLimit.RequestsPerMinute, window))
	}
	{
		periodRoutes := v1.Group("/periods")
		{
			periodRoutes.POST("", deps.PeriodHandler.CreatePeriodHandler)
			periodRoutes.GET("", deps.PeriodHandler.ListPeriodsHandler)
			periodRoutes.GET("/active", deps.PeriodHandler.GetActivePeriodHandler)
			periodRoutes.GET("/:id", deps.PeriodHandler.GetPeriodHandler)
			periodRoutes.PUT("/:id", deps.PeriodHandler.UpdatePeriodHandler)
			periodRoutes.PATCH("/:id/activate", deps.PeriodHandler.ActivatePeriodHandler)
			periodRoutes.DELETE("/:id", deps.PeriodHandler.DeletePeriodHandler)
		}

		vehicleRoutes := v1.Group("/vehicles")
		{
			vehicleRoutes.POST("", deps.VehicleHandler.CreateVehicleHandler)
			vehicleRoutes.GET("", deps.VehicleHandler.ListVehiclesHandler)
			vehicleRoutes.GET("/:id", deps.VehicleHandler.GetVehicleHandler)
			vehicleRoutes.PUT("/:id", deps.VehicleHandler.UpdateVehicleHandler)
			vehicleRoutes.PATCH("/:id/default", deps.VehicleHandler.SetDefaultVehicleHandler)
			vehicleRoutes.DELETE("/:id", deps.VehicleHandler.DeleteVehicleHandler)
		}

		shiftRoutes := v1.Group("/shifts")
		{
			shiftRoutes.POST("", deps.ShiftHandler.StartShiftHandler)
			shiftRoutes.GET("", deps.ShiftHandler.ListShiftsHandler)
			shiftRoutes.GET("/:id", deps.ShiftHandler.GetShiftHandler)
			shiftRoutes.PUT("/:id", deps.ShiftHandler.UpdateShiftHandler)
			shiftRoutes.DELETE("/:id", deps.ShiftHandler.DeleteShiftHandler)
		}

		fuelRoutes := v1.Group("/fuel")
		{
			fuelRoutes.POST("", deps.FuelHandler.CreateFuelRecordHandler)
			fuelRoutes.GET("", deps.FuelHandler.ListFuelRecordsHandler)
			fuelRoutes.GET("/:id", deps.FuelHandler.GetFuelRecordHandler)
			fuelRoutes.PUT("/:id", deps.FuelHandler.UpdateFuelRecordHandler)
			fuelRoutes.DELETE("/:id", deps.FuelHandler.DeleteFuelRecordHandler)
		}

		expenseRoutes := v1.Group("/expenses")
		{
			expenseRoutes.POST("", deps.ExpenseHandler.CreateExpenseHandler)
			expenseRoutes.GET("", deps.ExpenseHandler.ListExpensesHandler)
			expenseRoutes.GET("/:id", deps.ExpenseHandler.GetExpenseHandler)
			expenseRoutes.PUT("/:id", deps.ExpenseHandler.UpdateExpenseHandler)
			expenseRoutes.DELETE("/:id", deps.ExpenseHandler.DeleteExpenseHandler)
		}

		reportRoutes := v1.Group("/reports")
		{
			reportRoutes.GET("/shifts/:id", deps.ReportHandler.GetShiftReportHandler)
			reportRoutes.GET("/vehicles/:id", deps.ReportHandler.GetVehicleReportHandler)
			reportRoutes.GET("/periods/:id", deps.ReportHandler.GetPeriodReportHandler)
		}
	}

	return r
}
