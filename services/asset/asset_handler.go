package assetservice

import (
	"io"
	"net/http"

	"assettag/models"
	"assettag/providers"
	"assettag/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const maxPhotoUploadBytes = 10 << 20

type AssetHandler struct {
	Service        AssetService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewAssetHandler(service AssetService, auth providers.AuthMiddlewareService) *AssetHandler {
	return &AssetHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *AssetHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	assets, err := h.Service.GetAssets(r.Context(), actor)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch assets")
		return
	}

	utils.RespondJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req models.CreateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	asset, err := h.Service.CreateAsset(r.Context(), req, actor)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateAsset):
			utils.RespondError(w, http.StatusConflict, err, "asset number already exists")
		case errors.Is(err, models.ErrUnitForbidden):
			utils.RespondError(w, http.StatusForbidden, err, "cannot create asset in another unit")
		default:
			utils.RespondError(w, http.StatusInternalServerError, err, "failed to create asset")
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	assetNumber := chi.URLParam(r, "assetNumber")
	if assetNumber == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "asset number is required")
		return
	}

	var patch models.UpdateAssetReq
	if err := utils.ParseJSONBody(r, &patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	asset, err := h.Service.UpdateAsset(r.Context(), assetNumber, patch, actor)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAssetNotFound):
			utils.RespondError(w, http.StatusNotFound, err, "asset not found")
		case errors.Is(err, models.ErrUnitForbidden):
			utils.RespondError(w, http.StatusForbidden, err, "asset belongs to another unit")
		default:
			utils.RespondError(w, http.StatusInternalServerError, err, "failed to update asset")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	assetNumber := chi.URLParam(r, "assetNumber")
	slot := chi.URLParam(r, "slot")

	photo, err := readPhotoUpload(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid photo upload")
		return
	}

	res, err := h.Service.SetPhoto(r.Context(), assetNumber, slot, photo, actor)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPhotoSlot):
			utils.RespondError(w, http.StatusBadRequest, err, "invalid photo slot")
		case errors.Is(err, models.ErrAssetNotFound):
			utils.RespondError(w, http.StatusNotFound, err, "asset not found")
		case errors.Is(err, models.ErrUnitForbidden):
			utils.RespondError(w, http.StatusForbidden, err, "asset belongs to another unit")
		default:
			utils.RespondError(w, http.StatusInternalServerError, err, "failed to upload photo")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Photo uploaded successfully",
		"photoUrl":   res.PhotoURL,
		"isComplete": res.IsComplete,
	})
}

func (h *AssetHandler) ImportAssets(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req struct {
		Assets []models.ImportAssetRecord `json:"assets"`
	}
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	result, err := h.Service.ImportAssets(r.Context(), req.Assets, actor)
	if err != nil {
		if errors.Is(err, models.ErrAdminOnly) {
			utils.RespondError(w, http.StatusForbidden, err, "admin access required")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "import failed")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

func readPhotoUpload(r *http.Request) ([]byte, error) {
	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("photo")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, maxPhotoUploadBytes))
}
