package assetservice

import (
	"context"
	"errors"
	"testing"

	"assettag/models"
	"assettag/providers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (AssetService, *MockAssetRepository, *providers.MockPhotoStorageProvider, sqlmock.Sqlmock, func()) {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")

	mockRepo := NewMockAssetRepository(ctrl)
	mockPhotos := providers.NewMockPhotoStorageProvider(ctrl)

	service := NewAssetService(mockRepo, sqlxDB, mockPhotos)
	cleanup := func() {
		ctrl.Finish()
		db.Close()
	}
	return service, mockRepo, mockPhotos, mock, cleanup
}

func strPtr(s string) *string {
	return &s
}

func TestUpdateAsset(t *testing.T) {
	ctx := context.Background()
	admin := models.AuthUser{ID: "1", Username: "admin", Role: models.AdminRole}
	tech := models.AuthUser{ID: "2", Username: "tech1", Role: models.TechnicianRole}

	existing := models.Asset{
		AssetNumber:  "AST-001",
		Description:  "Pump",
		AssetGroup:   "Rotating",
		SerialNumber: "SN-42",
		Unit:         "U1",
		Status:       "Active",
	}

	t.Run("merges present fields and preserves absent ones", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectCommit()

		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-001").Return(existing, nil)
		mockRepo.EXPECT().UpdateAsset(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, asset models.Asset) error {
				assert.Equal(t, "Pump", asset.Description)
				assert.Equal(t, "SN-42", asset.SerialNumber)
				assert.Equal(t, "Deck 2", asset.Location)
				assert.Equal(t, "admin", asset.AssignedTo)
				assert.False(t, asset.LastUpdated.IsZero())
				return nil
			})

		patch := models.UpdateAssetReq{Location: strPtr("Deck 2")}
		updated, err := service.UpdateAsset(ctx, "AST-001", patch, admin)

		require.NoError(t, err)
		assert.Equal(t, "Deck 2", updated.Location)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("asset not found", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectRollback()

		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-404").
			Return(models.Asset{}, models.ErrAssetNotFound)

		_, err := service.UpdateAsset(ctx, "AST-404", models.UpdateAssetReq{}, admin)
		assert.ErrorIs(t, err, models.ErrAssetNotFound)
	})

	t.Run("non-admin cannot touch another unit", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectRollback()

		mockRepo.EXPECT().GetUnitForUser(ctx, "tech1").Return("U2", nil)
		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-001").Return(existing, nil)

		_, err := service.UpdateAsset(ctx, "AST-001", models.UpdateAssetReq{Status: strPtr("Scrapped")}, tech)
		assert.ErrorIs(t, err, models.ErrUnitForbidden)
	})

	t.Run("non-admin updates asset in own unit", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectCommit()

		mockRepo.EXPECT().GetUnitForUser(ctx, "tech1").Return("U1", nil)
		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-001").Return(existing, nil)
		mockRepo.EXPECT().UpdateAsset(ctx, gomock.Any(), gomock.Any()).Return(nil)

		updated, err := service.UpdateAsset(ctx, "AST-001", models.UpdateAssetReq{Remarks: strPtr("checked")}, tech)
		require.NoError(t, err)
		assert.Equal(t, "tech1", updated.AssignedTo)
	})
}

func TestSetPhoto(t *testing.T) {
	ctx := context.Background()
	tech := models.AuthUser{ID: "2", Username: "tech1", Role: models.TechnicianRole}
	admin := models.AuthUser{ID: "1", Username: "admin", Role: models.AdminRole}

	t.Run("invalid slot", func(t *testing.T) {
		service, _, _, _, cleanup := newTestService(t)
		defer cleanup()

		_, err := service.SetPhoto(ctx, "AST-001", "Z", []byte("img"), admin)
		assert.ErrorIs(t, err, models.ErrInvalidPhotoSlot)
	})

	t.Run("asset not found", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectRollback()

		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-404").
			Return(models.Asset{}, models.ErrAssetNotFound)

		_, err := service.SetPhoto(ctx, "AST-404", "A", []byte("img"), admin)
		assert.ErrorIs(t, err, models.ErrAssetNotFound)
	})

	t.Run("three slots filled stays incomplete", func(t *testing.T) {
		service, mockRepo, mockPhotos, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectCommit()

		asset := models.Asset{AssetNumber: "AST-001", Unit: "U1", Photos: models.PhotoSet{
			A: strPtr("url-a"),
			B: strPtr("url-b"),
		}}

		mockRepo.EXPECT().GetUnitForUser(ctx, "tech1").Return("U1", nil)
		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-001").Return(asset, nil)
		mockPhotos.EXPECT().StorePhoto(ctx, "AST-001", models.PhotoSlotC, []byte("img")).
			Return("url-c", nil)
		mockRepo.EXPECT().UpdateAsset(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, updated models.Asset) error {
				assert.False(t, updated.IsComplete)
				return nil
			})

		res, err := service.SetPhoto(ctx, "AST-001", "C", []byte("img"), tech)
		require.NoError(t, err)
		assert.Equal(t, "url-c", res.PhotoURL)
		assert.False(t, res.IsComplete)
	})

	t.Run("fourth slot completes the asset", func(t *testing.T) {
		service, mockRepo, mockPhotos, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectCommit()

		asset := models.Asset{AssetNumber: "AST-001", Unit: "U1", Photos: models.PhotoSet{
			A: strPtr("url-a"),
			B: strPtr("url-b"),
			C: strPtr("url-c"),
		}}

		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-001").Return(asset, nil)
		mockPhotos.EXPECT().StorePhoto(ctx, "AST-001", models.PhotoSlotD, []byte("img")).
			Return("url-d", nil)
		mockRepo.EXPECT().UpdateAsset(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, updated models.Asset) error {
				assert.True(t, updated.IsComplete)
				assert.Equal(t, "admin", updated.AssignedTo)
				return nil
			})

		res, err := service.SetPhoto(ctx, "AST-001", "D", []byte("img"), admin)
		require.NoError(t, err)
		assert.True(t, res.IsComplete)
	})

	t.Run("photo storage failure rolls back", func(t *testing.T) {
		service, mockRepo, mockPhotos, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectRollback()

		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-001").
			Return(models.Asset{AssetNumber: "AST-001", Unit: "U1"}, nil)
		mockPhotos.EXPECT().StorePhoto(ctx, "AST-001", models.PhotoSlotA, gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		_, err := service.SetPhoto(ctx, "AST-001", "A", []byte("img"), admin)
		assert.Error(t, err)
	})
}

func TestImportAssets(t *testing.T) {
	ctx := context.Background()
	admin := models.AuthUser{ID: "1", Username: "admin", Role: models.AdminRole}

	t.Run("non-admin is rejected", func(t *testing.T) {
		service, _, _, _, cleanup := newTestService(t)
		defer cleanup()

		tech := models.AuthUser{ID: "2", Username: "tech1", Role: models.TechnicianRole}
		_, err := service.ImportAssets(ctx, []models.ImportAssetRecord{{AssetNumber: "AST-001"}}, tech)
		assert.ErrorIs(t, err, models.ErrAdminOnly)
	})

	t.Run("mixed batch of new, existing and invalid records", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		// one tx per valid record
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectCommit()

		records := []models.ImportAssetRecord{
			{
				AssetNumber: "AST-100",
				UpdateAssetReq: models.UpdateAssetReq{
					Description: strPtr("New compressor"),
					AssetGroup:  strPtr("Static"),
					Unit:        strPtr("U1"),
				},
			},
			{
				AssetNumber: "AST-001",
				UpdateAssetReq: models.UpdateAssetReq{
					Remarks: strPtr("re-tagged"),
				},
			},
			{
				// missing asset number
				UpdateAssetReq: models.UpdateAssetReq{Description: strPtr("orphan")},
			},
		}

		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-100").
			Return(models.Asset{}, models.ErrAssetNotFound)
		mockRepo.EXPECT().CreateAsset(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, asset models.Asset) (models.Asset, error) {
				assert.Equal(t, "New compressor", asset.Description)
				assert.Equal(t, models.DefaultCriticality, asset.SafetyCriticality)
				assert.Equal(t, models.DefaultAssetStatus, asset.Status)
				assert.Equal(t, "admin", asset.AssignedTo)
				return asset, nil
			})

		existing := models.Asset{
			AssetNumber:  "AST-001",
			Description:  "Pump",
			AssetGroup:   "Rotating",
			SerialNumber: "SN-42",
			Unit:         "U1",
		}
		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-001").Return(existing, nil)
		mockRepo.EXPECT().UpdateAsset(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, asset models.Asset) error {
				assert.Equal(t, "re-tagged", asset.Remarks)
				assert.Equal(t, "SN-42", asset.SerialNumber)
				assert.Equal(t, "Pump", asset.Description)
				return nil
			})

		result, err := service.ImportAssets(ctx, records, admin)
		require.NoError(t, err)

		assert.Equal(t, 1, result.NewCount)
		assert.Equal(t, 1, result.UpdateCount)
		assert.Equal(t, 1, result.FailedCount)
		assert.Equal(t, 3, result.TotalProcessed)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, 2, result.Errors[0].Index)
	})

	t.Run("record failure does not abort the batch", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectCommit()

		records := []models.ImportAssetRecord{
			{AssetNumber: "AST-001"},
			{AssetNumber: "AST-002", UpdateAssetReq: models.UpdateAssetReq{Status: strPtr("Active")}},
		}

		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-001").
			Return(models.Asset{}, errors.New("db error"))
		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-002").
			Return(models.Asset{AssetNumber: "AST-002", Unit: "U1"}, nil)
		mockRepo.EXPECT().UpdateAsset(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := service.ImportAssets(ctx, records, admin)
		require.NoError(t, err)
		assert.Equal(t, 1, result.FailedCount)
		assert.Equal(t, 1, result.UpdateCount)
		assert.Equal(t, 2, result.TotalProcessed)
	})

	t.Run("new record missing required fields is counted as failed", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectRollback()

		mockRepo.EXPECT().GetAssetForUpdate(ctx, gomock.Any(), "AST-300").
			Return(models.Asset{}, models.ErrAssetNotFound)

		records := []models.ImportAssetRecord{{AssetNumber: "AST-300"}}
		result, err := service.ImportAssets(ctx, records, admin)
		require.NoError(t, err)
		assert.Equal(t, 0, result.NewCount)
		assert.Equal(t, 1, result.FailedCount)
		assert.Equal(t, 1, result.TotalProcessed)
	})
}

func TestCreateAsset(t *testing.T) {
	ctx := context.Background()
	admin := models.AuthUser{ID: "1", Username: "admin", Role: models.AdminRole}
	tech := models.AuthUser{ID: "2", Username: "tech1", Role: models.TechnicianRole}

	req := models.CreateAssetReq{
		AssetNumber: "AST-001",
		Description: "Pump",
		AssetGroup:  "Rotating",
		Unit:        "U1",
	}

	t.Run("applies defaults and stamps the actor", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectCommit()

		mockRepo.EXPECT().CreateAsset(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, asset models.Asset) (models.Asset, error) {
				assert.Equal(t, models.DefaultCriticality, asset.SafetyCriticality)
				assert.Equal(t, models.DefaultCriticality, asset.OperationalCriticality)
				assert.Equal(t, models.DefaultAssetStatus, asset.Status)
				assert.Equal(t, "admin", asset.AssignedTo)
				return asset, nil
			})

		_, err := service.CreateAsset(ctx, req, admin)
		require.NoError(t, err)
	})

	t.Run("duplicate asset number", func(t *testing.T) {
		service, mockRepo, _, mock, cleanup := newTestService(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectRollback()

		mockRepo.EXPECT().CreateAsset(ctx, gomock.Any(), gomock.Any()).
			Return(models.Asset{}, models.ErrDuplicateAsset)

		_, err := service.CreateAsset(ctx, req, admin)
		assert.ErrorIs(t, err, models.ErrDuplicateAsset)
	})

	t.Run("non-admin cannot create in another unit", func(t *testing.T) {
		service, mockRepo, _, _, cleanup := newTestService(t)
		defer cleanup()

		mockRepo.EXPECT().GetUnitForUser(ctx, "tech1").Return("U2", nil)

		_, err := service.CreateAsset(ctx, req, tech)
		assert.ErrorIs(t, err, models.ErrUnitForbidden)
	})
}

func TestGetAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("admin sees all units", func(t *testing.T) {
		service, mockRepo, _, _, cleanup := newTestService(t)
		defer cleanup()

		all := []models.Asset{{AssetNumber: "AST-001", Unit: "U1"}, {AssetNumber: "AST-002", Unit: "U2"}}
		mockRepo.EXPECT().GetAllAssets(ctx).Return(all, nil)

		admin := models.AuthUser{ID: "1", Username: "admin", Role: models.AdminRole}
		assets, err := service.GetAssets(ctx, admin)
		require.NoError(t, err)
		assert.Len(t, assets, 2)
	})

	t.Run("non-admin is confined to own unit", func(t *testing.T) {
		service, mockRepo, _, _, cleanup := newTestService(t)
		defer cleanup()

		mockRepo.EXPECT().GetUnitForUser(ctx, "mech1").Return("U1", nil)
		mockRepo.EXPECT().GetAssetsByUnit(ctx, "U1").
			Return([]models.Asset{{AssetNumber: "AST-001", Unit: "U1"}}, nil)

		mech := models.AuthUser{ID: "3", Username: "mech1", Role: models.MechanicRole}
		assets, err := service.GetAssets(ctx, mech)
		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, "U1", assets[0].Unit)
	})
}
