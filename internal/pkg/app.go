package pkg

import (
	"fmt"

	"backend/internal/app/config"
	"backend/internal/app/handler"
	"backend/internal/app/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Handler    *handler.Handler
	APIHandler *handler.APIHandler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler, api *handler.APIHandler) *Application {
	return &Application{
		Config:     c,
		Router:     r,
		Handler:    h,
		APIHandler: api,
	}
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.Router.Use(middleware.WithRequestID())
	a.Router.Use(cors.Default())

	// Регистрируем статические файлы и маршруты
	a.Handler.RegisterStatic(a.Router)
	a.Handler.RegisterRoutes(a.Router)
	a.APIHandler.RegisterAPIRoutes(a.Router)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
