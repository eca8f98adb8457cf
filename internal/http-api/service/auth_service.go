package service

import (
	"errors"
	"time"

	"schoolrate/internal/auth"
	"schoolrate/internal/config"
	"schoolrate/internal/http-api/models"
	"schoolrate/internal/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidInput       = errors.New("missing required field")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)

// Claims are the access-token claims carried in every authenticated request.
type Claims struct {
	StudentID string `json:"student_id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(username, password, email string) (*models.Student, error)
	Login(username, password string) (accessToken, refreshToken string, student *models.Student, err error)
	RefreshAccessToken(refreshToken string) (newAccessToken, newRefreshToken string, err error)
	RevokeToken(refreshToken string) error
	ValidateToken(tokenString string) (*Claims, error)
	// AccessTokenTTL reports the configured access-token lifetime so handlers
	// can advertise the real expiry instead of a hardcoded one.
	AccessTokenTTL() time.Duration
}

type authService struct {
	studentRepo      repository.StudentRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSecret        string
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
}

func NewAuthService(
	studentRepo repository.StudentRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	cfg *config.Config,
) AuthService {
	return &authService{
		studentRepo:      studentRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSecret:        cfg.JWTSecret,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
	}
}

// Register creates a new student account. Username, password and email are
// all mandatory; the duplicate check against the unique username index is
// the authoritative one, the lookup just gives a friendlier fast path.
func (s *authService) Register(username, password, email string) (*models.Student, error) {
	if username == "" || password == "" || email == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.studentRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	if err := s.studentRepo.Create(student); err != nil {
		// two concurrent registrations can both pass the lookup; the unique
		// index catches the loser
		if repository.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return student, nil
}

// Login authenticates a student and returns access and refresh tokens. A bad
// username and a bad password are indistinguishable to the caller.
func (s *authService) Login(username, password string) (string, string, *models.Student, error) {
	student, err := s.studentRepo.FindByUsername(username)
	if err != nil {
		// dummy compare so unknown usernames take as long as wrong passwords
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(student.Password, password); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(student)
	if err != nil {
		return "", "", nil, err
	}

	refreshToken, err := s.generateRefreshToken(student)
	if err != nil {
		return "", "", nil, err
	}

	return accessToken, refreshToken, student, nil
}

func (s *authService) AccessTokenTTL() time.Duration {
	return s.accessTokenTTL
}

func (s *authService) generateAccessToken(student *models.Student) (string, error) {
	now := time.Now()
	claims := Claims{
		StudentID: student.ID,
		Username:  student.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(student *models.Student) (string, error) {
	refreshToken := &models.RefreshToken{
		ID:        uuid.New().String(),
		StudentID: student.ID,
		Token:     uuid.New().String(), // opaque token, validated against the DB
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", err
	}

	return refreshToken.Token, nil
}

// RefreshAccessToken rotates the refresh token: the old one is revoked and a
// fresh pair is issued.
func (s *authService) RefreshAccessToken(refreshTokenString string) (string, string, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil || refreshToken.Revoked {
		return "", "", ErrInvalidToken
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		s.refreshTokenRepo.Delete(refreshToken.ID)
		return "", "", ErrExpiredToken
	}

	student, err := s.studentRepo.FindByID(refreshToken.StudentID)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	accessToken, err := s.generateAccessToken(student)
	if err != nil {
		return "", "", err
	}

	newRefreshToken, err := s.generateRefreshToken(student)
	if err != nil {
		return "", "", err
	}

	if err := s.refreshTokenRepo.Revoke(refreshToken.ID); err != nil {
		return "", "", err
	}

	return accessToken, newRefreshToken, nil
}

// RevokeToken invalidates a refresh token on logout. Unknown tokens are not
// an error; revocation is idempotent.
func (s *authService) RevokeToken(refreshTokenString string) error {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.refreshTokenRepo.Revoke(refreshToken.ID)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
