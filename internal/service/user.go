package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/model"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserPatch is a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Internal(err.Error())
	}
	return &user, nil
}

// Update applies a partial patch. Only the subject themselves or a platform
// admin may update a record.
func (s *UserService) Update(id uint, patch UserPatch, actorID uint, actorRole string) (*model.User, error) {
	if actorID != id && actorRole != "admin" {
		return nil, apperrors.ErrNotSelf
	}

	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.Email != nil && *patch.Email != user.Email {
		var count int64
		s.db.Model(&model.User{}).Where("email = ? AND id != ?", *patch.Email, id).Count(&count)
		if count > 0 {
			return nil, apperrors.ErrEmailTaken
		}
		updates["email"] = *patch.Email
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return nil, apperrors.Internal("hash password: " + err.Error())
		}
		updates["password"] = string(hash)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&model.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Internal(err.Error())
		}
	}
	return s.GetByID(id)
}

// Delete soft-deletes the record. Repeating the call yields NotFound rather
// than an error cascade.
func (s *UserService) Delete(id uint, actorID uint, actorRole string) error {
	if actorID != id && actorRole != "admin" {
		return apperrors.ErrNotSelf
	}

	result := s.db.Delete(&model.User{}, id)
	if result.Error != nil {
		return apperrors.Internal(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SearchCreators finds users by name or email for the discovery page.
func (s *UserService) SearchCreators(keyword string, page, pageSize int) ([]model.User, int64, error) {
	query := s.db.Model(&model.User{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}

	var total int64
	query.Count(&total)

	var users []model.User
	if err := query.Order("created_at desc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, apperrors.Internal(err.Error())
	}
	return users, total, nil
}
