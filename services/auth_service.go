package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"tomyumkitchen/entity"
	"tomyumkitchen/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	DB     *gorm.DB
	Secret string
	TTL    time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, Secret: secret, TTL: ttl}
}

type SessionRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
}

// AnonymousSession mints a guest session for the mobile client; the session id
// keys the in-memory cart.
func (s *AuthService) AnonymousSession() (*SessionRes, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	sid := hex.EncodeToString(buf)

	token, err := utils.GenerateToken(sid, "guest", s.Secret, s.TTL)
	if err != nil {
		return nil, err
	}
	return &SessionRes{SessionID: sid, Token: token}, nil
}

// AdminLogin checks the seeded dashboard credential.
func (s *AuthService) AdminLogin(email, password string) (string, error) {
	var admin entity.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(fmt.Sprintf("admin:%d", admin.ID), "admin", s.Secret, s.TTL)
}
