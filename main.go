package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/DevOuttaHeree/colabx-api/config"
	"github.com/DevOuttaHeree/colabx-api/database"
	"github.com/DevOuttaHeree/colabx-api/handlers"
	"github.com/DevOuttaHeree/colabx-api/middleware"
	"github.com/DevOuttaHeree/colabx-api/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := utils.NewLogger()
	defer logger.Sync()

	// A failed connection is not fatal: the handlers answer 503 until the
	// process is restarted with a reachable database.
	var store database.UserStore
	db, err := database.Connect(context.Background(), cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", zap.Error(err))
	} else {
		logger.Info("Connected to MongoDB", zap.String("database", cfg.DBName))
		store = database.NewUserStore(db)
	}

	h := handlers.New(store, logger)

	r := mux.NewRouter()
	r.Use(middleware.Cors(cfg.AllowedOrigin))

	r.HandleFunc("/api/register", h.RegisterUser).Methods("POST")
	r.HandleFunc("/api/login", h.LoginUser).Methods("POST")
	r.HandleFunc("/api/profile/{uid}", h.GetProfile).Methods("GET")
	r.HandleFunc("/api/profile/{uid}", h.UpdateProfile).Methods("PUT")
	r.HandleFunc("/api/profiles", h.ListProfiles).Methods("GET")

	logger.Info("Server is running", zap.String("port", cfg.Port))
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
