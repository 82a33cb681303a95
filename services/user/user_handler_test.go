package userservice

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assettag/models"
	"assettag/providers"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerTest(t *testing.T) (*UserHandler, *MockUserService, *providers.MockAuthMiddlewareService, func()) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := NewMockUserService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	return NewUserHandler(mockService, mockAuth), mockService, mockAuth, ctrl.Finish
}

func TestLoginHandler(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		handler, _, _, cleanup := newHandlerTest(t)
		defer cleanup()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"tech1"}`))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		handler, mockService, _, cleanup := newHandlerTest(t)
		defer cleanup()

		mockService.EXPECT().Login(gomock.Any(), LoginReq{Username: "tech1", Password: "wrong"}).
			Return(LoginRes{}, models.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"tech1","password":"wrong"}`))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("successful login returns the token payload", func(t *testing.T) {
		handler, mockService, _, cleanup := newHandlerTest(t)
		defer cleanup()

		mockService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(LoginRes{
			Token: "jwt-token",
			User:  LoginUserRes{Username: "tech1", Unit: "U1", Role: models.TechnicianRole, FirstLogin: true},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"tech1","password":"secret123"}`))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"jwt-token"`)
		assert.Contains(t, rec.Body.String(), `"firstLogin":true`)
	})
}

func TestChangePasswordHandler(t *testing.T) {
	authUser := models.AuthUser{ID: uuid.NewString(), Username: "tech1", Role: models.TechnicianRole}

	t.Run("unauthenticated", func(t *testing.T) {
		handler, _, mockAuth, cleanup := newHandlerTest(t)
		defer cleanup()

		mockAuth.EXPECT().GetUserFromContext(gomock.Any()).
			Return(models.AuthUser{}, models.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password",
			strings.NewReader(`{"newPassword":"newpass99"}`))
		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("password too short", func(t *testing.T) {
		handler, _, mockAuth, cleanup := newHandlerTest(t)
		defer cleanup()

		mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(authUser, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password",
			strings.NewReader(`{"newPassword":"abc"}`))
		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("updates the password", func(t *testing.T) {
		handler, mockService, mockAuth, cleanup := newHandlerTest(t)
		defer cleanup()

		mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(authUser, nil)
		mockService.EXPECT().ChangePassword(gomock.Any(), uuid.MustParse(authUser.ID), "newpass99").
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password",
			strings.NewReader(`{"newPassword":"newpass99"}`))
		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRegisterUserHandler(t *testing.T) {
	admin := models.AuthUser{ID: uuid.NewString(), Username: "admin", Role: models.AdminRole}
	body := `{"username":"mech2","password":"welcome1","name":"Mechanic Two","unit":"U2","role":"mechanic"}`

	t.Run("creates the user", func(t *testing.T) {
		handler, mockService, mockAuth, cleanup := newHandlerTest(t)
		defer cleanup()

		newID := uuid.New()
		mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(admin, nil)
		mockService.EXPECT().RegisterUser(gomock.Any(), gomock.Any(), models.AdminRole).
			Return(newID, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.RegisterUser(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), newID.String())
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		handler, mockService, mockAuth, cleanup := newHandlerTest(t)
		defer cleanup()

		supervisor := models.AuthUser{ID: uuid.NewString(), Username: "sup1", Role: models.SupervisorRole}
		mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(supervisor, nil)
		mockService.EXPECT().RegisterUser(gomock.Any(), gomock.Any(), models.SupervisorRole).
			Return(uuid.Nil, models.ErrAdminOnly)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.RegisterUser(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		handler, mockService, mockAuth, cleanup := newHandlerTest(t)
		defer cleanup()

		mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(admin, nil)
		mockService.EXPECT().RegisterUser(gomock.Any(), gomock.Any(), models.AdminRole).
			Return(uuid.Nil, models.ErrDuplicateUsername)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.RegisterUser(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
