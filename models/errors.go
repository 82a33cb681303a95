package models

import "github.com/pkg/errors"

// Sentinel error kinds. Services return these (possibly wrapped); handlers
// translate them to status codes and never invent their own kinds.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrDuplicateAsset     = errors.New("asset number already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAdminOnly          = errors.New("admin access required")
	ErrUnitForbidden      = errors.New("asset belongs to another unit")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPhotoSlot   = errors.New("invalid photo slot")
	ErrValidation         = errors.New("validation failed")
)
