package repository

import (
	"database/sql"
	"fmt"
	"time"

	"assetrisk/internal/db/models/postgres/public/enum"
	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// UserAssetRepository is the holdings store. Symbols are stored normalized;
// callers normalize before lookups. Every listing orders by creation time -
// liquidation depends on that order as its FIFO tie-break.
type UserAssetRepository interface {
	Add(tx *sql.Tx, asset model.UserAsset) (*model.UserAsset, error)
	Get(id uuid.UUID) (*model.UserAsset, error)
	List() ([]model.UserAsset, error)
	ListByType(assetType model.AssetType) ([]model.UserAsset, error)
	ListBySymbol(symbol string) ([]model.UserAsset, error)
	// ListBySymbolForUpdate takes row locks on the symbol's lots so
	// concurrent sells serialize instead of losing updates.
	ListBySymbolForUpdate(tx *sql.Tx, symbol string) ([]model.UserAsset, error)
	UpdateSale(tx *sql.Tx, asset model.UserAsset) (*model.UserAsset, error)
	UpdateCurrentPrice(tx *sql.Tx, asset model.UserAsset) (*model.UserAsset, error)
	Delete(tx *sql.Tx, id uuid.UUID) error
}

type userAssetRepositoryHandler struct {
	Db *sql.DB
}

func NewUserAssetRepository(db *sql.DB) UserAssetRepository {
	return userAssetRepositoryHandler{Db: db}
}

func (h userAssetRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h userAssetRepositoryHandler) Add(tx *sql.Tx, asset model.UserAsset) (*model.UserAsset, error) {
	asset.CreatedAt = time.Now().UTC()
	asset.LastUpdated = time.Now().UTC()
	query := table.UserAsset.
		INSERT(table.UserAsset.MutableColumns).
		MODEL(asset).
		RETURNING(table.UserAsset.AllColumns)

	out := model.UserAsset{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user asset: %w", err)
	}

	return &out, nil
}

func (h userAssetRepositoryHandler) Get(id uuid.UUID) (*model.UserAsset, error) {
	query := table.UserAsset.
		SELECT(table.UserAsset.AllColumns).
		WHERE(table.UserAsset.UserAssetID.EQ(postgres.UUID(id)))

	out := model.UserAsset{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", id, err)
	}

	return &out, nil
}

func (h userAssetRepositoryHandler) List() ([]model.UserAsset, error) {
	query := table.UserAsset.
		SELECT(table.UserAsset.AllColumns).
		ORDER_BY(table.UserAsset.CreatedAt.ASC(), table.UserAsset.UserAssetID.ASC())

	out := []model.UserAsset{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return out, nil
}

func assetTypeEnum(assetType model.AssetType) postgres.StringExpression {
	if assetType == model.AssetType_Crypto {
		return enum.AssetType.Crypto
	}
	return enum.AssetType.Stock
}

func (h userAssetRepositoryHandler) ListByType(assetType model.AssetType) ([]model.UserAsset, error) {
	query := table.UserAsset.
		SELECT(table.UserAsset.AllColumns).
		WHERE(table.UserAsset.AssetType.EQ(assetTypeEnum(assetType))).
		ORDER_BY(table.UserAsset.CreatedAt.ASC(), table.UserAsset.UserAssetID.ASC())

	out := []model.UserAsset{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s assets: %w", assetType, err)
	}

	return out, nil
}

func (h userAssetRepositoryHandler) ListBySymbol(symbol string) ([]model.UserAsset, error) {
	query := table.UserAsset.
		SELECT(table.UserAsset.AllColumns).
		WHERE(table.UserAsset.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(table.UserAsset.CreatedAt.ASC(), table.UserAsset.UserAssetID.ASC())

	out := []model.UserAsset{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for %s: %w", symbol, err)
	}

	return out, nil
}

func (h userAssetRepositoryHandler) ListBySymbolForUpdate(tx *sql.Tx, symbol string) ([]model.UserAsset, error) {
	query := table.UserAsset.
		SELECT(table.UserAsset.AllColumns).
		WHERE(table.UserAsset.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(table.UserAsset.CreatedAt.ASC(), table.UserAsset.UserAssetID.ASC()).
		FOR(postgres.UPDATE())

	out := []model.UserAsset{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to lock assets for %s: %w", symbol, err)
	}

	return out, nil
}

func (h userAssetRepositoryHandler) UpdateSale(tx *sql.Tx, asset model.UserAsset) (*model.UserAsset, error) {
	asset.LastUpdated = time.Now().UTC()
	query := table.UserAsset.
		UPDATE(postgres.ColumnList{
			table.UserAsset.Qty,
			table.UserAsset.SellingPrice,
			table.UserAsset.SellingDate,
			table.UserAsset.LastUpdated,
		}).
		MODEL(asset).
		WHERE(table.UserAsset.UserAssetID.EQ(postgres.UUID(asset.UserAssetID))).
		RETURNING(table.UserAsset.AllColumns)

	out := model.UserAsset{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update sale for asset %s: %w", asset.UserAssetID, err)
	}

	return &out, nil
}

func (h userAssetRepositoryHandler) UpdateCurrentPrice(tx *sql.Tx, asset model.UserAsset) (*model.UserAsset, error) {
	asset.LastUpdated = time.Now().UTC()
	query := table.UserAsset.
		UPDATE(postgres.ColumnList{
			table.UserAsset.CurrentPrice,
			table.UserAsset.CurrentUpdated,
			table.UserAsset.LastUpdated,
		}).
		MODEL(asset).
		WHERE(table.UserAsset.UserAssetID.EQ(postgres.UUID(asset.UserAssetID))).
		RETURNING(table.UserAsset.AllColumns)

	out := model.UserAsset{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update price for asset %s: %w", asset.UserAssetID, err)
	}

	return &out, nil
}

func (h userAssetRepositoryHandler) Delete(tx *sql.Tx, id uuid.UUID) error {
	query := table.UserAsset.
		DELETE().
		WHERE(table.UserAsset.UserAssetID.EQ(postgres.UUID(id)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", id, err)
	}

	return nil
}
