package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"budget-server/src/config"
	"budget-server/src/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Login exchanges the admin password for a bearer token valid for 24
// hours. The server is single-user; there is no account registration.
func Login(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		var req struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logg.Error().Err(err).Msg("failed to decode login request body")
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
			logg.Warn().Msg("login rejected")
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "admin",
			"iat": now.Unix(),
			"exp": now.Add(24 * time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			logg.Error().Err(err).Msg("failed to sign token")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		logg.Info().Msg("login successful")
		writeJSON(w, http.StatusOK, map[string]string{"token": signed})
	}
}
