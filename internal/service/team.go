package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/model"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// Create stores the team and enrolls the creator as its first admin member.
func (s *TeamService) Create(team *model.Team, creatorID uint) (*model.Team, error) {
	team.CreatorID = creatorID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return apperrors.Internal(err.Error())
		}
		member := &model.TeamMember{
			TeamID: team.ID,
			UserID: creatorID,
			Role:   model.MemberRoleAdmin,
		}
		if err := tx.Create(member).Error; err != nil {
			return apperrors.Internal(err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Creator").First(team, team.ID)
	return team, nil
}

// ListForUser returns the teams the user belongs to.
func (s *TeamService) ListForUser(userID uint) ([]model.Team, error) {
	var teams []model.Team
	err := s.db.
		Where("id IN (SELECT team_id FROM team_members WHERE user_id = ?)", userID).
		Order("updated_at desc").
		Find(&teams).Error
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return teams, nil
}

func (s *TeamService) GetByID(id uint) (*model.Team, error) {
	var team model.Team
	if err := s.db.Preload("Creator").Preload("Members.User").First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.Internal(err.Error())
	}
	return &team, nil
}

func (s *TeamService) Update(id uint, updates map[string]interface{}) (*model.Team, error) {
	if err := s.db.Model(&model.Team{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return s.GetByID(id)
}

// IsMember reports whether the user holds any role within the team.
func (s *TeamService) IsMember(teamID, userID uint) bool {
	var count int64
	s.db.Model(&model.TeamMember{}).Where("team_id = ? AND user_id = ?", teamID, userID).Count(&count)
	return count > 0
}

// IsTeamAdmin reports whether the user holds the admin role within the team.
func (s *TeamService) IsTeamAdmin(teamID, userID uint) bool {
	var count int64
	s.db.Model(&model.TeamMember{}).
		Where("team_id = ? AND user_id = ? AND role = ?", teamID, userID, model.MemberRoleAdmin).
		Count(&count)
	return count > 0
}

func (s *TeamService) ListMembers(teamID uint) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := s.db.Preload("User").Where("team_id = ?", teamID).Order("joined_at asc").Find(&members).Error
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return members, nil
}

// Invite enrolls an existing user into the team. The pre-write existence
// check leaves a small time-of-check window; the composite unique index on
// (team_id, user_id) closes it.
func (s *TeamService) Invite(teamID, userID uint, role string) (*model.TeamMember, error) {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	var count int64
	s.db.Model(&model.TeamMember{}).Where("team_id = ? AND user_id = ?", teamID, userID).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrAlreadyMember
	}

	if role == "" {
		role = model.MemberRoleMember
	}
	member := &model.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	}
	if err := s.db.Create(member).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, apperrors.Internal("create member: " + err.Error())
	}

	member.User = &user
	return member, nil
}

// RemoveMember deletes a membership. Nothing stops a team admin removing
// themselves; observed behavior kept as-is.
func (s *TeamService) RemoveMember(teamID, userID uint) error {
	result := s.db.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&model.TeamMember{})
	if result.Error != nil {
		return apperrors.Internal(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

// Stats aggregates workspace counts for the team dashboard.
func (s *TeamService) Stats(teamID uint) map[string]int64 {
	stats := make(map[string]int64)
	count := func(m interface{}) int64 {
		var n int64
		s.db.Model(m).Where("team_id = ?", teamID).Count(&n)
		return n
	}
	stats["members"] = count(&model.TeamMember{})
	stats["projects"] = count(&model.Project{})
	stats["tasks"] = count(&model.Task{})
	stats["notes"] = count(&model.Note{})
	stats["channels"] = count(&model.Channel{})
	var openTasks int64
	s.db.Model(&model.Task{}).Where("team_id = ? AND status != ?", teamID, model.TaskStatusDone).Count(&openTasks)
	stats["open_tasks"] = openTasks
	return stats
}
