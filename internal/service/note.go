package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/model"
)

type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

// dedupeTags trims and de-duplicates a tag set, preserving first-seen order.
func dedupeTags(tags []string) model.StringList {
	seen := make(map[string]struct{}, len(tags))
	out := make(model.StringList, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (s *NoteService) Create(teamID, createdBy uint, title, content string, tags []string) (*model.Note, error) {
	note := &model.Note{
		TeamID:    teamID,
		Title:     title,
		Content:   content,
		Tags:      dedupeTags(tags),
		CreatedBy: createdBy,
	}
	if err := s.db.Create(note).Error; err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return note, nil
}

// List returns team notes, most recently updated first.
func (s *NoteService) List(teamID uint) ([]model.Note, error) {
	var notes []model.Note
	err := s.db.Preload("Author").Where("team_id = ?", teamID).Order("updated_at desc").Find(&notes).Error
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return notes, nil
}

func (s *NoteService) GetByID(teamID, noteID uint) (*model.Note, error) {
	var note model.Note
	err := s.db.Where("team_id = ?", teamID).First(&note, noteID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, apperrors.Internal(err.Error())
	}
	return &note, nil
}

// NotePatch is a partial note update.
type NotePatch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

func (s *NoteService) Update(teamID, noteID uint, patch NotePatch) (*model.Note, error) {
	if _, err := s.GetByID(teamID, noteID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Tags != nil {
		updates["tags"] = dedupeTags(*patch.Tags)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&model.Note{}).Where("id = ? AND team_id = ?", noteID, teamID).Updates(updates).Error; err != nil {
			return nil, apperrors.Internal(err.Error())
		}
	}
	return s.GetByID(teamID, noteID)
}

func (s *NoteService) Delete(teamID, noteID uint) error {
	result := s.db.Where("team_id = ?", teamID).Delete(&model.Note{}, noteID)
	if result.Error != nil {
		return apperrors.Internal(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}
