package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/model"
	jwtpkg "github.com/kztJames01/makerSpace/pkg/jwt"
)

// bcryptCost matches the salt rounds used by the original account importer;
// existing hashes stay comparable.
const bcryptCost = 10

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	jwtExpire int
}

func NewAuthService(db *gorm.DB, jwtSecret string, jwtExpire int) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		jwtExpire: jwtExpire,
	}
}

// SignUp registers a new account and issues a session token. User creation
// runs inside a transaction so a failed token issue leaves nothing behind.
func (s *AuthService) SignUp(firstName, lastName, email, password, confirmPassword string) (*model.User, string, time.Time, error) {
	if password != confirmPassword {
		return nil, "", time.Time{}, apperrors.ErrPasswordMismatch
	}

	var count int64
	s.db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, "", time.Time{}, apperrors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.Internal("hash password: " + err.Error())
	}

	user := &model.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hash),
		Role:      "user",
	}

	var token string
	var expireAt time.Time
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			// The unique index on email is the backstop for a concurrent
			// sign-up racing past the pre-check.
			if isDuplicateKey(err) {
				return apperrors.ErrEmailTaken
			}
			return apperrors.Internal("create user: " + err.Error())
		}
		token, expireAt, err = jwtpkg.GenerateToken(s.jwtSecret, user.ID, user.Role, s.jwtExpire)
		if err != nil {
			return apperrors.Internal("generate token: " + err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expireAt, nil
}

// SignIn authenticates an email/password pair. Unknown email and wrong
// password fail identically so the API leaks nothing about which it was.
func (s *AuthService) SignIn(email, password string) (*model.User, string, time.Time, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", time.Time{}, apperrors.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, apperrors.Internal(err.Error())
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID, user.Role, s.jwtExpire)
	if err != nil {
		return nil, "", time.Time{}, apperrors.Internal("generate token: " + err.Error())
	}
	return &user, token, expireAt, nil
}

// AdminSignIn is SignIn restricted to accounts holding the admin role.
func (s *AuthService) AdminSignIn(email, password string) (*model.User, string, time.Time, error) {
	user, token, expireAt, err := s.SignIn(email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if !user.IsAdmin() {
		return nil, "", time.Time{}, apperrors.ErrNotAdmin
	}
	return user, token, expireAt, nil
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Internal(err.Error())
	}
	return &user, nil
}
