package userservice

import "assettag/models"

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUserRes struct {
	Username   string      `json:"username"`
	Name       string      `json:"name"`
	Unit       string      `json:"unit"`
	Role       models.Role `json:"role"`
	FirstLogin bool        `json:"firstLogin"`
}

type LoginRes struct {
	Token string       `json:"token"`
	User  LoginUserRes `json:"user"`
}

type ChangePasswordReq struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type RegisterUserReq struct {
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required,min=6"`
	Name     string      `json:"name" validate:"required"`
	Unit     string      `json:"unit" validate:"required"`
	Role     models.Role `json:"role"`
}
