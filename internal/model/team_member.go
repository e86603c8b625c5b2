package model

import "time"

// Team member roles.
const (
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
	MemberRoleGuest  = "guest"
)

type TeamMember struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	TeamID   uint      `gorm:"not null;uniqueIndex:uk_team_user" json:"team_id"`
	UserID   uint      `gorm:"not null;uniqueIndex:uk_team_user;index:idx_member_user_id" json:"user_id"`
	Role     string    `gorm:"type:varchar(10);not null;default:member" json:"role"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TeamMember) TableName() string { return "team_members" }
