package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/model"
)

// FeedService owns the social feed.
type FeedService struct {
	db *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

func (s *FeedService) CreatePost(authorID uint, content, imageURL string) (*model.Post, error) {
	post := &model.Post{
		AuthorID: authorID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	s.db.Preload("Author").First(post, post.ID)
	return post, nil
}

// List returns the feed newest-first.
func (s *FeedService) List(page, pageSize int) ([]model.Post, int64, error) {
	var total int64
	s.db.Model(&model.Post{}).Count(&total)

	var posts []model.Post
	err := s.db.Preload("Author").Order("created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&posts).Error
	if err != nil {
		return nil, 0, apperrors.Internal(err.Error())
	}
	return posts, total, nil
}

func (s *FeedService) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := s.db.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.Internal(err.Error())
	}
	return &post, nil
}

// DeletePost removes a post; only the author or a platform admin may.
func (s *FeedService) DeletePost(id, actorID uint, actorRole string) error {
	post, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID && actorRole != "admin" {
		return apperrors.Forbidden(40305, "not allowed to delete this post")
	}
	if err := s.db.Delete(&model.Post{}, id).Error; err != nil {
		return apperrors.Internal(err.Error())
	}
	return nil
}
