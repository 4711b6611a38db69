package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/avvvet/student-services/configs"
	nats "github.com/avvvet/student-services/internal/nats"
	"github.com/avvvet/student-services/internal/studentsvc/broker"
	svcconfig "github.com/avvvet/student-services/internal/studentsvc/config"
	"github.com/avvvet/student-services/internal/studentsvc/db"
	handlers "github.com/avvvet/student-services/internal/studentsvc/handlers"
	"github.com/avvvet/student-services/internal/studentsvc/service"
	"github.com/avvvet/student-services/internal/studentsvc/store"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "student"

var instanceId string

func init() {
	config.LoadEnv(SERVICE_NAME)
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
}

func main() {
	cfg := svcconfig.Load()
	shared := config.LoadShared()

	// store connections are opened once, a failure here is not fatal;
	// requests against that store fail individually instead
	session, err := db.ConnectCassandra(cfg.Cassandra)
	if err != nil {
		log.Errorf("Error connecting to Cassandra: %v", err)
	} else {
		defer session.Close()
		log.Info("Connected to Cassandra")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	mongoDB, err := db.ConnectMongo(ctx, cfg.Mongo)
	if err != nil {
		log.Errorf("Error connecting to MongoDB: %v", err)
	} else {
		log.Info("Connected to MongoDB")
		if err := db.CreatePRNIndex(ctx, mongoDB.Collection(cfg.Mongo.Collection)); err != nil {
			log.Warnf("prn index not created: %v", err)
		}
	}
	cancel()

	var coll *mongo.Collection
	if mongoDB != nil {
		coll = mongoDB.Collection(cfg.Mongo.Collection)
	}

	// change events are optional
	var publisher service.Publisher
	n, err := nats.Connect(SERVICE_NAME + "_service_" + instanceId)
	if err != nil {
		log.Warnf("NATS unavailable, student events disabled: %v", err)
	} else {
		defer n.Conn.Close()
		publisher = broker.NewBroker(n.Conn)
		log.Printf("NATS connection established successfully %s", n.Url)
	}

	cassandraService := service.NewStudentService("cassandra",
		store.NewCassandraStore(session, cfg.Cassandra.Table), publisher, instanceId)
	mongoService := service.NewStudentService("mongo",
		store.NewMongoStore(coll), publisher, instanceId)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(shared.RateLimit, 1*time.Minute))

	jwtKey := shared.JWTSecret
	if jwtKey == "" {
		jwtKey = uuid.NewString()
		log.Warn("JWT_SECRET_KEY not set, /v1 routes use a random key for this run")
	}

	// Init handlers and routes
	h := handlers.NewHandler(cassandraService, mongoService, cfg.Port)
	h.InitAuth(jwtKey)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
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

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}

	if err := db.Disconnect(ctx, mongoDB); err != nil {
		log.Warnf("mongodb disconnect: %v", err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
