package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/avvvet/student-services/internal/comm"
	"github.com/avvvet/student-services/internal/nats"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	config "github.com/avvvet/student-services/configs"

	"github.com/avvvet/student-services/internal/socketsvc/broker"
	"github.com/avvvet/student-services/internal/socketsvc/routes"
	"github.com/avvvet/student-services/internal/socketsvc/ws"
)

const SERVICE_NAME = "socket"

var instanceId string

func init() {
	config.LoadEnv(SERVICE_NAME)
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
}

func main() {
	shared := config.LoadShared()

	port := os.Getenv("SOCKET_SERVICE_PORT")
	if port == "" {
		port = "3001"
	}

	// the feed has nothing to serve without NATS
	n, err := nats.Connect(SERVICE_NAME + "_service_" + instanceId)
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(1)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(shared.RateLimit, 1*time.Minute))

	jwtKey := shared.JWTSecret
	if jwtKey == "" {
		jwtKey = uuid.NewString()
		log.Warn("JWT_SECRET_KEY not set, /v1/health uses a random key for this run")
	}

	// Initialize websocket registry and routes
	s := ws.NewWs()
	routes.SetRoutes(r, s, routes.NewTokenAuth(jwtKey), port)

	// forward student events to every socket
	b := broker.NewBroker(n.Conn, s.Broadcast)
	sub, err := b.Subscribe(comm.EventsSubject + ".>")
	if err != nil {
		log.Errorf("Error: unable to subscribe to student events %v", err)
		os.Exit(1)
	}

	// Create server with timeout settings
	server := &http.Server{
		Addr:        ":" + port,
		Handler:     r,
		ReadTimeout: 60 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	sub.Unsubscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
