package auth

import (
	"errors"
	"time"

	"github.com/agrotech/core/internal/models"
	sessionpkg "github.com/agrotech/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrBadCredentials = errors.New("invalid username or password")
	ErrUserExists     = errors.New("an account already exists")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates the owner account. The panel is single-admin: once any
// user exists, registration is closed.
func (s *Service) Register(username, password, fullName, email string) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Username: username,
		FullName: fullName,
		Email:    email,
		Password: string(hash),
	}
	return &user, s.db.Create(&user).Error
}

// Login verifies credentials and issues a session-bound token. Both an
// unknown username and a wrong password return ErrBadCredentials so the
// response does not reveal which half failed.
func (s *Service) Login(username, password, ip, ua string) (string, *models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrBadCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrBadCredentials
	}

	token, _, err := sessionpkg.Issue(s.db, user.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	_ = s.db.Model(&user).Updates(map[string]interface{}{
		"last_login_time": &now,
		"last_login_ip":   ip,
	}).Error
	user.LastLoginTime = &now
	user.LastLoginIP = ip
	return token, &user, nil
}

// Logout revokes the backing session; the JWT dies with it.
func (s *Service) Logout(userID, sessionID string) error {
	return sessionpkg.Revoke(s.db, userID, sessionID)
}

// LogoutAll revokes every session of the user.
func (s *Service) LogoutAll(userID string) error {
	return sessionpkg.RevokeAll(s.db, userID)
}

// Profile loads the authenticated user.
func (s *Service) Profile(userID string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the editable profile fields. A non-empty password
// is rehashed; sessions other than the current one stay valid.
func (s *Service) UpdateProfile(userID string, fullName, email, avatar, password *string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if fullName != nil {
		updates["full_name"] = *fullName
	}
	if email != nil {
		updates["email"] = *email
	}
	if avatar != nil {
		updates["avatar"] = *avatar
	}
	if password != nil && *password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}

	if len(updates) == 0 {
		return &user, nil
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
