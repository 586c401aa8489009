package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/config"
)

// Errores de autenticación. Credenciales incorrectas producen siempre el
// mismo error, sin distinguir usuario de contraseña.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService maneja la emisión y verificación de tokens de acceso
type AuthService struct {
	username string
	password string
	secret   []byte
	expiry   time.Duration
	logger   *logrus.Logger
}

// NewAuthService crea una nueva instancia del servicio
func NewAuthService(cfg *config.Config, logger *logrus.Logger) *AuthService {
	return &AuthService{
		username: cfg.Auth.Username,
		password: cfg.Auth.Password,
		secret:   []byte(cfg.JWT.Secret),
		expiry:   cfg.JWT.Expiry,
		logger:   logger,
	}
}

// Authenticate verifica el par de credenciales configurado y emite un
// token firmado con el usuario como subject
func (s *AuthService) Authenticate(username, password string) (string, error) {
	// Comparación en tiempo constante; ambas se evalúan siempre
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		s.logger.WithField("username", username).Warn("Failed login attempt")
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"exp": now.Add(s.expiry).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	s.logger.WithField("username", username).Info("Access token issued")

	return signed, nil
}

// VerifyToken valida firma y expiración del token y retorna el subject
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Verificar método de firma
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}

	return subject, nil
}
