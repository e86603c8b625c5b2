package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/model"
)

func newTeamFixture(t *testing.T) (*TeamService, *AuthService, *model.User, *model.Team) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret, 24)
	svc := NewTeamService(db)

	creator := createTestUser(t, auth, "creator@x.com")
	team, err := svc.Create(&model.Team{Name: "t1", Industry: "robotics"}, creator.ID)
	require.NoError(t, err)
	return svc, auth, creator, team
}

func TestCreateTeamEnrollsCreatorAsAdmin(t *testing.T) {
	svc, _, creator, team := newTeamFixture(t)

	members, err := svc.ListMembers(team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, creator.ID, members[0].UserID)
	require.Equal(t, model.MemberRoleAdmin, members[0].Role)
	require.True(t, svc.IsTeamAdmin(team.ID, creator.ID))
}

func TestInviteMember(t *testing.T) {
	svc, auth, _, team := newTeamFixture(t)
	u2 := createTestUser(t, auth, "b@x.com")

	member, err := svc.Invite(team.ID, u2.ID, model.MemberRoleMember)
	require.NoError(t, err)
	require.Equal(t, model.MemberRoleMember, member.Role)
	require.False(t, member.JoinedAt.IsZero())

	members, err := svc.ListMembers(team.ID)
	require.NoError(t, err)

	var found int
	for _, m := range members {
		if m.UserID == u2.ID {
			found++
			require.Equal(t, model.MemberRoleMember, m.Role)
		}
	}
	require.Equal(t, 1, found)
}

func TestReinviteFailsWithConflict(t *testing.T) {
	svc, auth, _, team := newTeamFixture(t)
	u2 := createTestUser(t, auth, "b@x.com")

	_, err := svc.Invite(team.ID, u2.ID, model.MemberRoleMember)
	require.NoError(t, err)

	_, err = svc.Invite(team.ID, u2.ID, model.MemberRoleGuest)
	require.ErrorIs(t, err, apperrors.ErrAlreadyMember)
}

func TestInviteUnknownUser(t *testing.T) {
	svc, _, _, team := newTeamFixture(t)

	_, err := svc.Invite(team.ID, 9999, "")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestInviteDefaultsToMemberRole(t *testing.T) {
	svc, auth, _, team := newTeamFixture(t)
	u2 := createTestUser(t, auth, "b@x.com")

	member, err := svc.Invite(team.ID, u2.ID, "")
	require.NoError(t, err)
	require.Equal(t, model.MemberRoleMember, member.Role)
}

func TestRemoveMember(t *testing.T) {
	svc, auth, _, team := newTeamFixture(t)
	u2 := createTestUser(t, auth, "b@x.com")

	_, err := svc.Invite(team.ID, u2.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(team.ID, u2.ID))
	require.False(t, svc.IsMember(team.ID, u2.ID))

	err = svc.RemoveMember(team.ID, u2.ID)
	require.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}

func TestAdminSelfRemovalAllowed(t *testing.T) {
	svc, _, creator, team := newTeamFixture(t)

	// Nothing blocks an admin removing themselves.
	require.NoError(t, svc.RemoveMember(team.ID, creator.ID))
	require.False(t, svc.IsMember(team.ID, creator.ID))
}

func TestListForUser(t *testing.T) {
	svc, auth, creator, team := newTeamFixture(t)
	u2 := createTestUser(t, auth, "b@x.com")

	teams, err := svc.ListForUser(creator.ID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, team.ID, teams[0].ID)

	teams, err = svc.ListForUser(u2.ID)
	require.NoError(t, err)
	require.Empty(t, teams)
}

func TestTeamStats(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret, 24)
	svc := NewTeamService(db)
	ws := NewWorkspaceService(db)

	creator := createTestUser(t, auth, "creator@x.com")
	team, err := svc.Create(&model.Team{Name: "t1"}, creator.ID)
	require.NoError(t, err)

	project, err := ws.CreateProject(team.ID, "p1", "", "", nil)
	require.NoError(t, err)
	_, err = ws.CreateTask(team.ID, project.ID, "task", "", "", 0, nil)
	require.NoError(t, err)

	stats := svc.Stats(team.ID)
	require.EqualValues(t, 1, stats["members"])
	require.EqualValues(t, 1, stats["projects"])
	require.EqualValues(t, 1, stats["tasks"])
	require.EqualValues(t, 1, stats["open_tasks"])
}
