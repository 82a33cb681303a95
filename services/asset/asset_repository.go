package assetservice

import (
	"context"
	"database/sql"
	"fmt"

	"assettag/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type AssetRepository interface {
	GetAssetByNumber(ctx context.Context, assetNumber string) (models.Asset, error)
	GetAssetForUpdate(ctx context.Context, tx *sqlx.Tx, assetNumber string) (models.Asset, error)
	GetAssetsByUnit(ctx context.Context, unit string) ([]models.Asset, error)
	GetAllAssets(ctx context.Context) ([]models.Asset, error)
	CreateAsset(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error)
	UpdateAsset(ctx context.Context, tx *sqlx.Tx, asset models.Asset) error
	GetUnitForUser(ctx context.Context, username string) (string, error)
}

type PostgresAssetRepository struct {
	DB *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &PostgresAssetRepository{DB: db}
}

const assetColumns = `id, asset_number, description, asset_group, safety_criticality,
		operational_criticality, iadc_code, main_parent, make, model, serial_number,
		rfid_code, rfid_tag_number, remarks, unit, location, status,
		photo_a AS "photos.a", photo_b AS "photos.b", photo_c AS "photos.c", photo_d AS "photos.d",
		is_complete, assigned_to, last_updated, created_at`

func (r *PostgresAssetRepository) GetAssetByNumber(ctx context.Context, assetNumber string) (models.Asset, error) {
	var asset models.Asset
	err := r.DB.GetContext(ctx, &asset, `
		SELECT `+assetColumns+` FROM assets
		WHERE asset_number = $1
	`, assetNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, models.ErrAssetNotFound
		}
		return models.Asset{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}

// GetAssetForUpdate locks the row so the read-modify-write of a single
// asset number cannot interleave with another mutator of the same key.
func (r *PostgresAssetRepository) GetAssetForUpdate(ctx context.Context, tx *sqlx.Tx, assetNumber string) (models.Asset, error) {
	var asset models.Asset
	err := tx.GetContext(ctx, &asset, `
		SELECT `+assetColumns+` FROM assets
		WHERE asset_number = $1
		FOR UPDATE
	`, assetNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, models.ErrAssetNotFound
		}
		return models.Asset{}, fmt.Errorf("failed to lock asset for update: %w", err)
	}
	return asset, nil
}

func (r *PostgresAssetRepository) GetAssetsByUnit(ctx context.Context, unit string) ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT `+assetColumns+` FROM assets
		WHERE unit = $1
		ORDER BY created_at DESC
	`, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets by unit: %w", err)
	}
	return assets, nil
}

func (r *PostgresAssetRepository) GetAllAssets(ctx context.Context) ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT `+assetColumns+` FROM assets
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}
	return assets, nil
}

func (r *PostgresAssetRepository) CreateAsset(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error) {
	var created models.Asset
	err := tx.GetContext(ctx, &created, `
		INSERT INTO assets (
			asset_number, description, asset_group, safety_criticality,
			operational_criticality, iadc_code, main_parent, make, model,
			serial_number, rfid_code, rfid_tag_number, remarks, unit, location,
			status, assigned_to, last_updated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING `+assetColumns+`
	`, asset.AssetNumber, asset.Description, asset.AssetGroup, asset.SafetyCriticality,
		asset.OperationalCriticality, asset.IadcCode, asset.MainParent, asset.Make, asset.Model,
		asset.SerialNumber, asset.RfidCode, asset.RfidTagNumber, asset.Remarks, asset.Unit,
		asset.Location, asset.Status, asset.AssignedTo, asset.LastUpdated)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.Asset{}, models.ErrDuplicateAsset
		}
		return models.Asset{}, fmt.Errorf("failed to insert asset: %w", err)
	}
	return created, nil
}

func (r *PostgresAssetRepository) UpdateAsset(ctx context.Context, tx *sqlx.Tx, asset models.Asset) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE assets SET
			description = $1, asset_group = $2, safety_criticality = $3,
			operational_criticality = $4, iadc_code = $5, main_parent = $6,
			make = $7, model = $8, serial_number = $9, rfid_code = $10,
			rfid_tag_number = $11, remarks = $12, unit = $13, location = $14,
			status = $15, photo_a = $16, photo_b = $17, photo_c = $18,
			photo_d = $19, is_complete = $20, assigned_to = $21, last_updated = $22
		WHERE asset_number = $23
	`, asset.Description, asset.AssetGroup, asset.SafetyCriticality,
		asset.OperationalCriticality, asset.IadcCode, asset.MainParent,
		asset.Make, asset.Model, asset.SerialNumber, asset.RfidCode,
		asset.RfidTagNumber, asset.Remarks, asset.Unit, asset.Location,
		asset.Status, asset.Photos.A, asset.Photos.B, asset.Photos.C,
		asset.Photos.D, asset.IsComplete, asset.AssignedTo, asset.LastUpdated,
		asset.AssetNumber)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.ErrAssetNotFound
	}
	return nil
}

// GetUnitForUser resolves the acting user's unit for visibility scoping.
func (r *PostgresAssetRepository) GetUnitForUser(ctx context.Context, username string) (string, error) {
	var unit string
	err := r.DB.GetContext(ctx, &unit, `
		SELECT unit FROM users
		WHERE username = $1
	`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to fetch user unit: %w", err)
	}
	return unit, nil
}
