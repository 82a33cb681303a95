package assetservice

import (
	"context"
	"time"

	"assettag/models"
	"assettag/providers"
	"assettag/utils"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type AssetService interface {
	GetAssets(ctx context.Context, actor models.AuthUser) ([]models.Asset, error)
	CreateAsset(ctx context.Context, req models.CreateAssetReq, actor models.AuthUser) (models.Asset, error)
	UpdateAsset(ctx context.Context, assetNumber string, patch models.UpdateAssetReq, actor models.AuthUser) (models.Asset, error)
	SetPhoto(ctx context.Context, assetNumber string, slot string, photo []byte, actor models.AuthUser) (models.SetPhotoRes, error)
	ImportAssets(ctx context.Context, records []models.ImportAssetRecord, actor models.AuthUser) (models.ImportResult, error)
}

type assetService struct {
	repo   AssetRepository
	db     *sqlx.DB
	photos providers.PhotoStorageProvider
}

func NewAssetService(repo AssetRepository, db *sqlx.DB, photos providers.PhotoStorageProvider) AssetService {
	return &assetService{repo: repo, db: db, photos: photos}
}

func (s *assetService) GetAssets(ctx context.Context, actor models.AuthUser) ([]models.Asset, error) {
	if actor.IsAdmin() {
		return s.repo.GetAllAssets(ctx)
	}
	unit, err := s.repo.GetUnitForUser(ctx, actor.Username)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAssetsByUnit(ctx, unit)
}

func (s *assetService) CreateAsset(ctx context.Context, req models.CreateAssetReq, actor models.AuthUser) (asset models.Asset, err error) {
	if !actor.IsAdmin() {
		unit, unitErr := s.repo.GetUnitForUser(ctx, actor.Username)
		if unitErr != nil {
			return models.Asset{}, unitErr
		}
		if req.Unit != unit {
			return models.Asset{}, models.ErrUnitForbidden
		}
	}

	newAsset := assetFromCreateReq(req)
	stampMutation(&newAsset, actor.Username)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Asset{}, err
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	asset, err = s.repo.CreateAsset(ctx, tx, newAsset)
	return asset, err
}

func (s *assetService) UpdateAsset(ctx context.Context, assetNumber string, patch models.UpdateAssetReq, actor models.AuthUser) (asset models.Asset, err error) {
	var actorUnit string
	if !actor.IsAdmin() {
		actorUnit, err = s.repo.GetUnitForUser(ctx, actor.Username)
		if err != nil {
			return models.Asset{}, err
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Asset{}, err
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	asset, err = s.repo.GetAssetForUpdate(ctx, tx, assetNumber)
	if err != nil {
		return models.Asset{}, err
	}
	if !actor.IsAdmin() && asset.Unit != actorUnit {
		err = models.ErrUnitForbidden
		return models.Asset{}, err
	}

	applyPatch(&asset, patch)
	stampMutation(&asset, actor.Username)

	if err = s.repo.UpdateAsset(ctx, tx, asset); err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

func (s *assetService) SetPhoto(ctx context.Context, assetNumber string, slot string, photo []byte, actor models.AuthUser) (res models.SetPhotoRes, err error) {
	photoSlot, err := models.ParsePhotoSlot(slot)
	if err != nil {
		return models.SetPhotoRes{}, err
	}

	var actorUnit string
	if !actor.IsAdmin() {
		actorUnit, err = s.repo.GetUnitForUser(ctx, actor.Username)
		if err != nil {
			return models.SetPhotoRes{}, err
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.SetPhotoRes{}, err
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	asset, err := s.repo.GetAssetForUpdate(ctx, tx, assetNumber)
	if err != nil {
		return models.SetPhotoRes{}, err
	}
	if !actor.IsAdmin() && asset.Unit != actorUnit {
		err = models.ErrUnitForbidden
		return models.SetPhotoRes{}, err
	}

	photoURL, err := s.photos.StorePhoto(ctx, assetNumber, photoSlot, photo)
	if err != nil {
		return models.SetPhotoRes{}, errors.Wrap(err, "failed to store photo")
	}

	asset.Photos.Set(photoSlot, photoURL)
	asset.IsComplete = asset.Photos.Complete()
	stampMutation(&asset, actor.Username)

	if err = s.repo.UpdateAsset(ctx, tx, asset); err != nil {
		return models.SetPhotoRes{}, err
	}

	return models.SetPhotoRes{PhotoURL: photoURL, IsComplete: asset.IsComplete}, nil
}

// ImportAssets merges a batch by asset number. Records are independent: a
// bad record is counted and reported without aborting the rest of the batch.
func (s *assetService) ImportAssets(ctx context.Context, records []models.ImportAssetRecord, actor models.AuthUser) (models.ImportResult, error) {
	if actor.Role != models.AdminRole {
		return models.ImportResult{}, models.ErrAdminOnly
	}

	result := models.ImportResult{TotalProcessed: len(records)}
	for i, record := range records {
		created, err := s.importRecord(ctx, record, actor.Username)
		if err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, models.ImportRecordError{
				Index:       i,
				AssetNumber: record.AssetNumber,
				Message:     err.Error(),
			})
			continue
		}
		if created {
			result.NewCount++
		} else {
			result.UpdateCount++
		}
	}

	utils.Logger.Info("asset import finished",
		zap.Int("new", result.NewCount),
		zap.Int("updated", result.UpdateCount),
		zap.Int("failed", result.FailedCount),
		zap.Int("total", result.TotalProcessed))

	return result, nil
}

func (s *assetService) importRecord(ctx context.Context, record models.ImportAssetRecord, actingUsername string) (created bool, err error) {
	if record.AssetNumber == "" {
		return false, errors.Wrap(models.ErrValidation, "asset_number is required")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	asset, err := s.repo.GetAssetForUpdate(ctx, tx, record.AssetNumber)
	switch {
	case err == nil:
		applyPatch(&asset, record.UpdateAssetReq)
		stampMutation(&asset, actingUsername)
		if err = s.repo.UpdateAsset(ctx, tx, asset); err != nil {
			return false, err
		}
		return false, nil

	case errors.Is(err, models.ErrAssetNotFound):
		newAsset := assetFromImportRecord(record)
		if err = validateRequiredAssetFields(newAsset); err != nil {
			return false, err
		}
		stampMutation(&newAsset, actingUsername)
		if _, err = s.repo.CreateAsset(ctx, tx, newAsset); err != nil {
			return false, err
		}
		return true, nil

	default:
		return false, err
	}
}

// applyPatch copies the caller-supplied fields onto the stored record.
// Only the allow-listed mutable fields can move; assetNumber, photos,
// isComplete and the bookkeeping columns stay derived/immutable.
func applyPatch(asset *models.Asset, patch models.UpdateAssetReq) {
	if patch.Description != nil {
		asset.Description = *patch.Description
	}
	if patch.AssetGroup != nil {
		asset.AssetGroup = *patch.AssetGroup
	}
	if patch.SafetyCriticality != nil {
		asset.SafetyCriticality = *patch.SafetyCriticality
	}
	if patch.OperationalCriticality != nil {
		asset.OperationalCriticality = *patch.OperationalCriticality
	}
	if patch.IadcCode != nil {
		asset.IadcCode = *patch.IadcCode
	}
	if patch.MainParent != nil {
		asset.MainParent = *patch.MainParent
	}
	if patch.Make != nil {
		asset.Make = *patch.Make
	}
	if patch.Model != nil {
		asset.Model = *patch.Model
	}
	if patch.SerialNumber != nil {
		asset.SerialNumber = *patch.SerialNumber
	}
	if patch.RfidCode != nil {
		asset.RfidCode = *patch.RfidCode
	}
	if patch.RfidTagNumber != nil {
		asset.RfidTagNumber = *patch.RfidTagNumber
	}
	if patch.Remarks != nil {
		asset.Remarks = *patch.Remarks
	}
	if patch.Unit != nil {
		asset.Unit = *patch.Unit
	}
	if patch.Location != nil {
		asset.Location = *patch.Location
	}
	if patch.Status != nil {
		asset.Status = *patch.Status
	}
}

func stampMutation(asset *models.Asset, actingUsername string) {
	asset.AssignedTo = actingUsername
	asset.LastUpdated = time.Now()
}

func assetFromCreateReq(req models.CreateAssetReq) models.Asset {
	asset := models.Asset{
		AssetNumber:            req.AssetNumber,
		Description:            req.Description,
		AssetGroup:             req.AssetGroup,
		SafetyCriticality:      req.SafetyCriticality,
		OperationalCriticality: req.OperationalCriticality,
		IadcCode:               req.IadcCode,
		MainParent:             req.MainParent,
		Make:                   req.Make,
		Model:                  req.Model,
		SerialNumber:           req.SerialNumber,
		RfidCode:               req.RfidCode,
		RfidTagNumber:          req.RfidTagNumber,
		Remarks:                req.Remarks,
		Unit:                   req.Unit,
		Location:               req.Location,
		Status:                 req.Status,
	}
	applyAssetDefaults(&asset)
	return asset
}

func assetFromImportRecord(record models.ImportAssetRecord) models.Asset {
	asset := models.Asset{AssetNumber: record.AssetNumber}
	applyPatch(&asset, record.UpdateAssetReq)
	applyAssetDefaults(&asset)
	return asset
}

func applyAssetDefaults(asset *models.Asset) {
	if asset.SafetyCriticality == "" {
		asset.SafetyCriticality = models.DefaultCriticality
	}
	if asset.OperationalCriticality == "" {
		asset.OperationalCriticality = models.DefaultCriticality
	}
	if asset.Status == "" {
		asset.Status = models.DefaultAssetStatus
	}
}

func validateRequiredAssetFields(asset models.Asset) error {
	if asset.Description == "" {
		return errors.Wrap(models.ErrValidation, "description is required")
	}
	if asset.AssetGroup == "" {
		return errors.Wrap(models.ErrValidation, "asset_group is required")
	}
	if asset.Unit == "" {
		return errors.Wrap(models.ErrValidation, "unit is required")
	}
	return nil
}
