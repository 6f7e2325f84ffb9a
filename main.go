package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"browcam/camera"
	"browcam/config"
	"browcam/db"
	"browcam/handlers"
	"browcam/landmarks"
	"browcam/models"
	"browcam/overlay"
	"browcam/pipeline"
	"browcam/styles"
	"browcam/utils"
	"browcam/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionStoreKey       = "this is a long key" // TODO: convert to env variable
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	db.Init()
	models.Init()

	status := &pipeline.Status{}
	if err := landmarks.Init(config.FACE_MODELS_DIR); err != nil {
		// Terminal for the session: raw video still works, the overlay
		// simply never appears.
		status.SetError("Face model failed to load")
	}

	var source camera.Source
	var push *camera.PushSource
	if config.CAMERA_PUSH {
		push = camera.NewPushSource()
		source = push
	} else {
		// ffmpeg starts fine on a bad or locked device and exits right
		// away, so acquisition failures arrive through the callback too.
		device, err := camera.OpenDevice(config.FFMPEG_BIN, config.CAMERA_DEVICE, func(error) {
			status.SetError("Camera access failed")
		})
		if err != nil {
			log.Printf("Camera access failed: %v", err)
			status.SetError("Camera access failed")
		} else {
			source = device
		}
	}

	surface := pipeline.NewSurface()
	frames := pipeline.NewBroadcaster()
	var loop *pipeline.Loop
	if source != nil {
		loop = &pipeline.Loop{
			Source:   source,
			Detector: landmarks.Get,
			Selected: styles.Selected,
			Renderer: &overlay.StrokeRenderer{},
			Surface:  surface,
			Frames:   frames,
			Interval: time.Second / time.Duration(config.FRAME_RATE),
			Mirror:   config.CAMERA_MIRROR,
		}
		go loop.Run()
	}
	handlers.Setup(source, surface, status, frames, push)

	// Release the camera and the detector on interrupt
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		if loop != nil {
			loop.Stop()
		}
		landmarks.Shutdown()
		os.Exit(0)
	}()

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(sessionStoreKey))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/stream", "/capture/fetch"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	router.GET("/", web.IndexView)
	router.GET("/status", handlers.StatusView)
	// Style handlers
	router.GET("/styles/list", handlers.StyleList)
	router.POST("/styles/select", handlers.StyleSelect)
	// Capture handlers
	router.POST("/capture/trigger", handlers.CaptureTrigger)
	router.GET("/capture/list", handlers.CaptureList)
	router.GET("/capture/fetch", handlers.CaptureFetch)
	// Live view
	router.GET("/stream", handlers.Stream)
	router.GET("/ws", handlers.WebSocket)
	// Misc
	router.GET("/robots.txt", web.DisallowRobots)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
