package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/printadmin/storformat/internal/api/controller"
	"github.com/printadmin/storformat/internal/pkg/config"
	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/printadmin/storformat/internal/pkg/logger"
	"github.com/printadmin/storformat/internal/service/auth"
	"github.com/printadmin/storformat/internal/service/storformat"
	"github.com/spf13/viper"
)

type APIService struct {
	router            *echo.Echo
	storformatService *storformat.Service
	authService       *auth.Service
}

// Serve blocks until the server stops. A graceful Shutdown is not an error.
func (svc *APIService) Serve(addr string) error {
	logger.Infof(context.Background(), "storformat api listening on %s", addr)
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(storformatService *storformat.Service) (*APIService, error) {
	svc := &APIService{
		router:            echo.New(),
		storformatService: storformatService,
		authService: auth.NewService(func() string {
			return viper.GetString(constants.ViperSecretKey)
		}, auth.DefaultTokenTTL),
	}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.WARN)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = JSONSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestID())
	svc.router.Use(svc.RequestLoggerMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     config.StringSlice(constants.ViperServerCORSOriginsKey),
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, constants.HeaderKeySecretToken},
		AllowCredentials: true,
	}))

	cntrl := controller.NewController(svc.storformatService, svc.authService)

	svc.router.GET("/health", cntrl.Health)

	api := svc.router.Group("/api/v1/storformat")
	api.POST("/calculate", cntrl.Calculate)
	api.POST("/quote", cntrl.Quote)
	api.POST("/quote/table", cntrl.QuoteTable)

	api.POST("/admin/login", cntrl.LoginAdmin)

	admin := api.Group("/admin", svc.AdminMiddleware)
	admin.GET("/config", cntrl.GetConfig)
	admin.PUT("/config", cntrl.UpdateConfig)

	materials := admin.Group("/materials")
	materials.GET("/list", cntrl.ListMaterials)
	materials.GET("/:id", cntrl.GetMaterial)
	materials.POST("", cntrl.SaveMaterial)
	materials.DELETE("/:id", cntrl.DeleteMaterial)

	finishes := admin.Group("/finishes")
	finishes.GET("/list", cntrl.ListFinishes)
	finishes.GET("/:id", cntrl.GetFinish)
	finishes.POST("", cntrl.SaveFinish)
	finishes.DELETE("/:id", cntrl.DeleteFinish)

	products := admin.Group("/products")
	products.GET("/list", cntrl.ListProducts)
	products.GET("/:id", cntrl.GetProduct)
	products.POST("", cntrl.SaveProduct)
	products.DELETE("/:id", cntrl.DeleteProduct)

	return svc, nil
}
