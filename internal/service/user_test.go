package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kztJames01/makerSpace/internal/apperrors"
)

func TestUpdateUserRoundTrip(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret, 24)
	svc := NewUserService(db)

	user := createTestUser(t, auth, "ada@x.com")

	firstName := "X"
	_, err := svc.Update(user.ID, UserPatch{FirstName: &firstName}, user.ID, "user")
	require.NoError(t, err)

	got, err := svc.GetByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "X", got.FirstName)
	require.Equal(t, "User", got.LastName)
}

func TestUpdateUserForbiddenForOthers(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret, 24)
	svc := NewUserService(db)

	u1 := createTestUser(t, auth, "a@x.com")
	u2 := createTestUser(t, auth, "b@x.com")

	firstName := "X"
	_, err := svc.Update(u2.ID, UserPatch{FirstName: &firstName}, u1.ID, "user")
	require.ErrorIs(t, err, apperrors.ErrNotSelf)
}

func TestUpdateUserAdminCanPatchAnyone(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret, 24)
	svc := NewUserService(db)

	admin := createTestUser(t, auth, "admin@x.com")
	target := createTestUser(t, auth, "b@x.com")

	firstName := "Patched"
	got, err := svc.Update(target.ID, UserPatch{FirstName: &firstName}, admin.ID, "admin")
	require.NoError(t, err)
	require.Equal(t, "Patched", got.FirstName)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret, 24)
	svc := NewUserService(db)

	createTestUser(t, auth, "taken@x.com")
	u2 := createTestUser(t, auth, "b@x.com")

	email := "taken@x.com"
	_, err := svc.Update(u2.ID, UserPatch{Email: &email}, u2.ID, "user")
	require.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestDeleteUserIdempotent(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret, 24)
	svc := NewUserService(db)

	user := createTestUser(t, auth, "ada@x.com")

	require.NoError(t, svc.Delete(user.ID, user.ID, "user"))

	// Second delete reports NotFound, not a crash.
	err := svc.Delete(user.ID, user.ID, "user")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.GetByID(user.ID)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSearchCreators(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret, 24)
	svc := NewUserService(db)

	_, _, _, err := auth.SignUp("Ada", "Lovelace", "ada@x.com", "password123", "password123")
	require.NoError(t, err)
	_, _, _, err = auth.SignUp("Grace", "Hopper", "grace@x.com", "password123", "password123")
	require.NoError(t, err)

	users, total, err := svc.SearchCreators("ada", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Ada", users[0].FirstName)
}
