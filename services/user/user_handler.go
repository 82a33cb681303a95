package userservice

import (
	"net/http"

	"assettag/models"
	"assettag/providers"
	"assettag/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type UserHandler struct {
	Service        UserService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewUserHandler(service UserService, auth providers.AuthMiddlewareService) *UserHandler {
	return &UserHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "username and password are required")
		return
	}

	res, err := h.Service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			utils.RespondError(w, http.StatusUnauthorized, err, "invalid credentials")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "login failed")
		return
	}

	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	authUser, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req ChangePasswordReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid password input")
		return
	}

	userUUID, err := uuid.Parse(authUser.ID)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "invalid user id")
		return
	}

	if err := h.Service.ChangePassword(r.Context(), userUUID, req.NewPassword); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			utils.RespondError(w, http.StatusNotFound, err, "user not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to update password")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	authUser, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req RegisterUserReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	userID, err := h.Service.RegisterUser(r.Context(), req, authUser.Role)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAdminOnly):
			utils.RespondError(w, http.StatusForbidden, err, "admin access required")
		case errors.Is(err, models.ErrDuplicateUsername):
			utils.RespondError(w, http.StatusConflict, err, "username already exists")
		case errors.Is(err, models.ErrValidation):
			utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, err, "failed to create user")
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "user created successfully",
		"userId":  userID,
	})
}
