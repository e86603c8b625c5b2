package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kztJames01/makerSpace/internal/handler"
	"github.com/kztJames01/makerSpace/internal/model"
	"github.com/kztJames01/makerSpace/internal/service"
	"github.com/kztJames01/makerSpace/internal/sse"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Team{}, &model.TeamMember{}, &model.Project{},
		&model.Task{}, &model.Note{}, &model.Channel{}, &model.Message{},
		&model.AIMessage{}, &model.Post{},
	))

	authService := service.NewAuthService(db, testSecret, 24)
	teamService := service.NewTeamService(db)

	r := gin.New()
	Setup(r, Deps{
		DB:               db,
		JWTSecret:        testSecret,
		TeamService:      teamService,
		AuthHandler:      handler.NewAuthHandler(authService),
		UserHandler:      handler.NewUserHandler(service.NewUserService(db)),
		TeamHandler:      handler.NewTeamHandler(teamService),
		WorkspaceHandler: handler.NewWorkspaceHandler(service.NewWorkspaceService(db)),
		NoteHandler:      handler.NewNoteHandler(service.NewNoteService(db)),
		ChatHandler:      handler.NewChatHandler(service.NewChatService(db, sse.NewHub(nil)), service.NewAIMessageService(db, nil)),
		FeedHandler:      handler.NewFeedHandler(service.NewFeedService(db)),
	})
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func signUp(t *testing.T, r *gin.Engine, email string) (uint, string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/sign-up", "", gin.H{
		"firstName":       "Test",
		"lastName":        "User",
		"email":           email,
		"password":        "password123",
		"confirmPassword": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	user := data["user"].(map[string]interface{})
	return uint(user["id"].(float64)), data["token"].(string)
}

func TestSignUpSetsSessionCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/sign-up", "", gin.H{
		"firstName":       "Ada",
		"lastName":        "Lovelace",
		"email":           "ada@x.com",
		"password":        "password123",
		"confirmPassword": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	cookie := w.Header().Get("Set-Cookie")
	require.Contains(t, cookie, "token=")
	require.Contains(t, cookie, "HttpOnly")
	require.Contains(t, cookie, "SameSite=Strict")
}

func TestSignInWrongPasswordNoCookie(t *testing.T) {
	r, _ := newTestRouter(t)
	signUp(t, r, "ada@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/sign-in", "", gin.H{
		"email":    "ada@x.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestLegacyLoginPath(t *testing.T) {
	r, _ := newTestRouter(t)
	signUp(t, r, "ada@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "ada@x.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCurrentUserRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users/current", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateOtherUserForbidden(t *testing.T) {
	r, _ := newTestRouter(t)
	otherID, _ := signUp(t, r, "a@x.com")
	_, token := signUp(t, r, "b@x.com")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/users/update/%d", otherID), token, gin.H{
		"firstName": "X",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestTeamMembershipFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	u2ID, u2Token := signUp(t, r, "b@x.com")
	_, adminToken := signUp(t, r, "admin@team.com")

	w := doJSON(t, r, http.MethodPost, "/api/teams", adminToken, gin.H{"name": "t1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	teamID := uint(decodeData(t, w)["id"].(float64))

	// Outsiders cannot see the team.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/teams/%d", teamID), u2Token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Invite u2 as member.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/teams/%d/members", teamID), adminToken, gin.H{
		"user_id": u2ID,
		"role":    "member",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Re-invite conflicts.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/teams/%d/members", teamID), adminToken, gin.H{
		"user_id": u2ID,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// u2 can now read the team, but cannot invite.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/teams/%d", teamID), u2Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/teams/%d/members", teamID), u2Token, gin.H{
		"user_id": 9999,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestTaskStatusPatch(t *testing.T) {
	r, _ := newTestRouter(t)
	_, token := signUp(t, r, "maker@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/teams", token, gin.H{"name": "t1"})
	require.Equal(t, http.StatusCreated, w.Code)
	teamID := uint(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/teams/%d/projects", teamID), token, gin.H{"name": "p1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	projectID := uint(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/teams/%d/projects/%d/tasks", teamID, projectID), token, gin.H{
		"title": "wire the motor",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	taskID := uint(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/teams/%d/tasks/%d", teamID, taskID), token, gin.H{
		"status": "done",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "done", decodeData(t, w)["status"])

	// Backwards transition allowed.
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/teams/%d/tasks/%d", teamID, taskID), token, gin.H{
		"status": "todo",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "todo", decodeData(t, w)["status"])
}

func TestSignOutClearsCookieAndIsIdempotent(t *testing.T) {
	r, _ := newTestRouter(t)
	signUp(t, r, "ada@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/sign-out", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := w.Header().Get("Set-Cookie")
	require.Contains(t, cookie, "token=;")
	require.Contains(t, cookie, "Max-Age=0")
	require.Contains(t, cookie, "HttpOnly")

	// Signing out again without a session still succeeds.
	w = doJSON(t, r, http.MethodPost, "/api/auth/sign-out", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestSessionCookieAuthenticates(t *testing.T) {
	r, _ := newTestRouter(t)
	_, token := signUp(t, r, "ada@x.com")

	// No Authorization header; the session cookie alone carries the token.
	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "ada@x.com", decodeData(t, w)["email"])
}

func TestDeleteUserTwice(t *testing.T) {
	r, _ := newTestRouter(t)
	id, token := signUp(t, r, "gone@x.com")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/delete/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The session subject no longer resolves; the middleware fails closed.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/delete/%d", id), token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
