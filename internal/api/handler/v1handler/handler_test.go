package v1handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mserjo/bossy/internal/api/handler/v1handler"
	"github.com/mserjo/bossy/internal/auth"
	mockauth "github.com/mserjo/bossy/internal/auth/mock"
	"github.com/mserjo/bossy/internal/group"
	mockgroup "github.com/mserjo/bossy/internal/group/mock"
	mockreward "github.com/mserjo/bossy/internal/reward/mock"
	mocktask "github.com/mserjo/bossy/internal/task/mock"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/logger"
	"github.com/mserjo/bossy/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

type handlerMocks struct {
	auth    *mockauth.MockAuth
	groups  *mockgroup.MockGroups
	tasks   *mocktask.MockTasks
	rewards *mockreward.MockRewards
}

func newTestHandler(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		auth:    mockauth.NewMockAuth(ctrl),
		groups:  mockgroup.NewMockGroups(ctrl),
		tasks:   mocktask.NewMockTasks(ctrl),
		rewards: mockreward.NewMockRewards(ctrl),
	}
	h := v1handler.New(v1handler.Deps{
		Auth:    mocks.auth,
		Groups:  mocks.groups,
		Tasks:   mocks.tasks,
		Rewards: mocks.rewards,
	})

	return mocks, h
}

// expectUser wires token verification for a request carrying "Bearer <token>".
func expectUser(m handlerMocks, token string, user *domain.User) {
	m.auth.EXPECT().VerifyAccessToken(gomock.Any(), token).Return(user, nil)
}

func doJSON(t *testing.T, h http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestRegister(t *testing.T) {
	mocks, h := newTestHandler(t)

	userID := domain.UserID(uuid.New())
	mocks.auth.EXPECT().
		Register(gomock.Any(), "alex@example.com", "Alex", "sup3rsecret").
		Return(&domain.User{ID: userID, Email: "alex@example.com", DisplayName: "Alex"}, nil)

	rec := doJSON(t, h, http.MethodPost, "/auth/register", "", map[string]string{
		"email":       "alex@example.com",
		"displayName": "Alex",
		"password":    "sup3rsecret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "alex@example.com", user.Email)
}

func TestRegister_UnknownFieldRejected(t *testing.T) {
	_, h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "alex@example.com",
		"passwrod": "typo",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	mocks, h := newTestHandler(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), "alex@example.com", "sup3rsecret").
		Return(&auth.TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 900}, nil)

	rec := doJSON(t, h, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alex@example.com",
		"password": "sup3rsecret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var pair auth.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	require.Equal(t, "acc", pair.AccessToken)
	require.EqualValues(t, 900, pair.ExpiresIn)
}

func TestLogin_BadCredentials(t *testing.T) {
	mocks, h := newTestHandler(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), "alex@example.com", "wrong").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials"))

	rec := doJSON(t, h, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alex@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, h := newTestHandler(t)

		rec := doJSON(t, h, http.MethodGet, "/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		mocks, h := newTestHandler(t)

		mocks.auth.EXPECT().
			VerifyAccessToken(gomock.Any(), "expired").
			Return(nil, serrors.With(serrors.ErrUnauthorized, "token expired"))

		rec := doJSON(t, h, http.MethodGet, "/me", "expired", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		mocks, h := newTestHandler(t)

		user := &domain.User{ID: domain.UserID(uuid.New()), Email: "alex@example.com"}
		expectUser(mocks, "good", user)

		rec := doJSON(t, h, http.MethodGet, "/me", "good", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var me domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
		require.Equal(t, user.Email, me.Email)
	})
}

func TestCreateGroup(t *testing.T) {
	mocks, h := newTestHandler(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	expectUser(mocks, "tok", user)

	groupID := domain.GroupID(uuid.New())
	mocks.groups.EXPECT().
		Create(gomock.Any(), user.ID, group.CreateInput{Name: "Chores", Type: domain.GroupTypeFamily}).
		Return(&domain.Group{ID: groupID, Name: "Chores", Type: domain.GroupTypeFamily}, nil)

	rec := doJSON(t, h, http.MethodPost, "/groups", "tok", map[string]string{
		"name": "Chores",
		"type": "FAMILY",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Group
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, groupID, created.ID)
}

func TestGetGroup_InvalidID(t *testing.T) {
	mocks, h := newTestHandler(t)

	expectUser(mocks, "tok", &domain.User{ID: domain.UserID(uuid.New())})

	rec := doJSON(t, h, http.MethodGet, "/groups/not-a-uuid", "tok", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGroup_ForbiddenForNonMembers(t *testing.T) {
	mocks, h := newTestHandler(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	expectUser(mocks, "tok", user)

	groupID := uuid.New()
	mocks.groups.EXPECT().
		Group(gomock.Any(), user.ID, domain.GroupID(groupID)).
		Return(nil, serrors.With(serrors.ErrForbidden, "not a member of the group"))

	rec := doJSON(t, h, http.MethodGet, "/groups/"+groupID.String(), "tok", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMyGroups_Pagination(t *testing.T) {
	mocks, h := newTestHandler(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	expectUser(mocks, "tok", user)

	mocks.groups.EXPECT().
		UserGroups(gomock.Any(), user.ID, "abc", uint(5)).
		Return([]domain.Group{{Name: "a"}}, "next-cursor", nil)

	rec := doJSON(t, h, http.MethodGet, "/me/groups?cursor=abc&limit=5", "tok", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Items      []domain.Group `json:"items"`
		NextCursor string         `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	require.Equal(t, "next-cursor", page.NextCursor)
}

func TestMyGroups_LimitClamped(t *testing.T) {
	mocks, h := newTestHandler(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	expectUser(mocks, "tok", user)

	// limits above the cap collapse to 100
	mocks.groups.EXPECT().
		UserGroups(gomock.Any(), user.ID, "", uint(100)).
		Return(nil, "", nil)

	rec := doJSON(t, h, http.MethodGet, "/me/groups?limit=5000", "tok", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReviewTask(t *testing.T) {
	mocks, h := newTestHandler(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	expectUser(mocks, "tok", user)

	taskID := uuid.New()
	mocks.tasks.EXPECT().
		Review(gomock.Any(), user.ID, domain.TaskID(taskID), false, "needs more scrubbing").
		Return(&domain.Task{ID: domain.TaskID(taskID), Status: domain.TaskStatusInProgress}, nil)

	rec := doJSON(t, h, http.MethodPost, fmt.Sprintf("/tasks/%s/review", taskID), "tok", map[string]any{
		"approve": false,
		"note":    "needs more scrubbing",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var reviewed domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviewed))
	require.Equal(t, domain.TaskStatusInProgress, reviewed.Status)
}

func TestRedeemReward_InsufficientFunds(t *testing.T) {
	mocks, h := newTestHandler(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	expectUser(mocks, "tok", user)

	rewardID := uuid.New()
	mocks.rewards.EXPECT().
		Redeem(gomock.Any(), user.ID, domain.RewardID(rewardID)).
		Return(nil, serrors.With(serrors.ErrInsufficientFunds, "balance 10 cannot cover 30"))

	rec := doJSON(t, h, http.MethodPost, fmt.Sprintf("/rewards/%s/redeem", rewardID), "tok", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWriteError_InternalErrorsAreOpaque(t *testing.T) {
	mocks, h := newTestHandler(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	expectUser(mocks, "tok", user)

	groupID := uuid.New()
	mocks.groups.EXPECT().
		Group(gomock.Any(), user.ID, domain.GroupID(groupID)).
		Return(nil, fmt.Errorf("pq: connection reset"))

	rec := doJSON(t, h, http.MethodGet, "/groups/"+groupID.String(), "tok", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// the database error text must not leak to the client
	require.Equal(t, "internal server error", body.Error)
}
