package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/DevOuttaHeree/colabx-api/database"
	"github.com/DevOuttaHeree/colabx-api/models"
	"github.com/DevOuttaHeree/colabx-api/utils"
)

const msgUnavailable = "Database service unavailable. Connection failed."

// Handler serves the five /api routes. The store is nil when the mongo
// connection could not be established at startup; every handler checks that
// before touching it and answers 503.
type Handler struct {
	store database.UserStore
	log   *zap.Logger
}

func New(store database.UserStore, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	var req struct {
		Name       string          `json:"name"`
		Email      string          `json:"email"`
		Password   string          `json:"password"`
		City       string          `json:"city"`
		Skills     string          `json:"skills"`
		Experience json.RawMessage `json:"experience"`
		Portfolio  string          `json:"portfolio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email, and password are required.")
		return
	}

	_, err := h.store.FindByEmail(r.Context(), req.Email)
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Account already exists with this email.")
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		h.log.Error("email lookup failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed due to a server error.")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		h.log.Error("password hashing failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed due to a server error.")
		return
	}

	newUser := models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashedPassword,
		City:       req.City,
		Skills:     parseSkills(req.Skills),
		Experience: coerceNumber(req.Experience),
		Portfolio:  req.Portfolio,
		ProfilePic: "",
		CreatedAt:  time.Now(),
	}

	uid, err := h.store.Insert(r.Context(), &newUser)
	if err != nil {
		h.log.Error("user insert failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed due to a server error.")
		return
	}

	h.log.Info("user registered", zap.String("uid", uid.Hex()))
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully!",
		"uid":     uid.Hex(),
	})
}

func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Same message as a wrong password so callers cannot probe
			// which emails are registered.
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		h.log.Error("login lookup failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during login.")
		return
	}

	if !utils.ComparePassword(req.Password, user.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    user.Profile(),
	})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["uid"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	user, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found.")
			return
		}
		h.log.Error("profile lookup failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error fetching profile.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user.Profile())
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["uid"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	var req struct {
		Name       string          `json:"name"`
		City       string          `json:"city"`
		Skills     string          `json:"skills"`
		Experience json.RawMessage `json:"experience"`
		Portfolio  string          `json:"portfolio"`
		ProfilePic *string         `json:"profilePic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	// name, city, skills and portfolio are applied only when non-empty;
	// experience and profilePic are applied whenever the key is present,
	// zero and empty string included. Inherited behavior, kept for parity
	// with existing clients.
	var fields models.UpdateFields
	if req.Name != "" {
		fields.Name = &req.Name
	}
	if req.City != "" {
		fields.City = &req.City
	}
	if req.Skills != "" {
		fields.Skills = parseSkills(req.Skills)
	}
	if req.Experience != nil {
		experience := coerceNumber(req.Experience)
		fields.Experience = &experience
	}
	if req.Portfolio != "" {
		fields.Portfolio = &req.Portfolio
	}
	if req.ProfilePic != nil {
		fields.ProfilePic = req.ProfilePic
	}

	matched, err := h.store.Update(r.Context(), id, fields)
	if err != nil {
		h.log.Error("profile update failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error updating profile.")
		return
	}
	if matched == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found.")
		return
	}

	user, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		h.log.Error("profile re-read failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error updating profile.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user.Profile())
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	users, err := h.store.FindAll(r.Context())
	if err != nil {
		h.log.Error("profile listing failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error fetching profiles.")
		return
	}

	profiles := make([]models.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}

	utils.RespondWithJSON(w, http.StatusOK, profiles)
}

// parseSkills turns a comma separated list into trimmed entries, dropping
// empty ones. Always returns a non-nil slice.
func parseSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// coerceNumber converts a raw JSON value to a float64 the way the API has
// always accepted experience: numbers pass through, numeric strings are
// parsed, booleans map to 1/0, everything else falls back to 0.
func coerceNumber(raw json.RawMessage) float64 {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0
	}

	switch v := value.(type) {
	case float64:
		return v
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return n
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}
