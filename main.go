package main

import (
	"net/http"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/CasterlyGit/Home/communication"
	appConfig "github.com/CasterlyGit/Home/config"
	"github.com/CasterlyGit/Home/handlers"
	"github.com/CasterlyGit/Home/navigation"
	"github.com/CasterlyGit/Home/pages"
	"github.com/CasterlyGit/Home/registry"
	"github.com/CasterlyGit/Home/responder"
	"github.com/CasterlyGit/Home/sentry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}
	appConfig.NewConfig()
	setupLogging()

	if appConfig.Config.Sentry.IsEnabled() {
		sentry.Init()
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func setupLogging() {
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		TimestampFormat: "15:04:05",
	})

	level, err := log.ParseLevel(appConfig.Config.Logging.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func run() error {
	reg := registry.Default()

	res, err := responder.New(
		responder.DefaultPools(),
		responder.FallbackPersonaID,
		responder.WithDelay(appConfig.Config.Responder.ThinkDelay),
	)
	if err != nil {
		return err
	}

	hub := communication.NewHub()
	nav := navigation.NewManager(hub.Observer())

	manager := handlers.NewManager(reg, res, nav, hub)

	router := gin.Default()
	if appConfig.Config.Sentry.IsEnabled() {
		router.Use(sentry.GetSentryGin())
	}

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(pages.Index))
	})
	router.GET("/health", manager.Health)

	api := router.Group("/api")
	{
		api.POST("/chat", manager.Chat)
		api.GET("/personas", manager.ListPersonas)
		api.GET("/personas/:id", manager.GetPersona)
		api.POST("/personality/update", manager.UpdatePersonality)
		api.POST("/sessions/:sessionId/navigation", manager.Navigate)
	}

	router.GET("/ws/navigation", manager.NavigationSocket)

	port := appConfig.Config.Server.Port
	if port == "" {
		port = "8080"
	}
	log.Infof("Starting server on :%s with %d personas", port, reg.Len())
	return router.Run(":" + port)
}
