package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"catatan/app/dto"
	jwtutil "catatan/app/jwt"
	"catatan/app/middleware"
	"catatan/app/services"
)

type AuthController struct {
	Users    *services.UserService
	Sessions *services.SessionService
	Signer   *jwtutil.Signer
}

func NewAuthController(users *services.UserService, sessions *services.SessionService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Sessions: sessions, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.Register(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.TokenResponse{AccessToken: token})
}

func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.ResetPassword(req.Username, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Logout revokes the presented token for its remaining lifetime. Without a
// redis backend this is a no-op and tokens simply age out.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := c.Sessions.Revoke(r.Context(), claims.ID, ttl); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
