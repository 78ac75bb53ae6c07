package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// warehouseCache contrato mínimo de un repositorio con caché de lectura.
// Los cambios hechos dentro de una transacción no pasan por la caché y hay que invalidarla.
type warehouseCache interface {
	Invalidate(ctx context.Context, ids ...string)
}

// WarehouseUseCase casos de uso para el registro de bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
	tx   inventory.TxRunner
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, tx inventory.TxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, tx: tx}
}

// Create crea una nueva bodega. La primera bodega de la empresa queda como predeterminada.
func (uc *WarehouseUseCase) Create(ctx context.Context, companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.ListByCompany(ctx, companyID, 1, 0)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		Address:   in.Address,
		IsDefault: in.IsDefault || len(existing) == 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.tx.Run(ctx, func(r inventory.Repos) error {
		if warehouse.IsDefault {
			if err := r.Warehouses.ClearDefault(ctx, companyID); err != nil {
				return err
			}
		}
		return r.Warehouses.Create(ctx, warehouse)
	})
	if err != nil {
		return nil, err
	}
	if warehouse.IsDefault {
		uc.invalidateCompany(ctx, companyID)
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza nombre y dirección. Es lo único modificable una vez la bodega tiene movimientos.
func (uc *WarehouseUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		warehouse.Name = name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// SetDefault marca la bodega como predeterminada y desmarca la anterior en la misma transacción.
func (uc *WarehouseUseCase) SetDefault(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	var warehouse *entity.Warehouse
	err := uc.tx.Run(ctx, func(r inventory.Repos) error {
		w, err := r.Warehouses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if w == nil || w.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if err := r.Warehouses.ClearDefault(ctx, companyID); err != nil {
			return err
		}
		w.IsDefault = true
		w.UpdatedAt = time.Now()
		warehouse = w
		return r.Warehouses.Update(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateCompany(ctx, companyID)
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas por empresa con paginación.
func (uc *WarehouseUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *WarehouseUseCase) invalidateCompany(ctx context.Context, companyID string) {
	cache, ok := uc.repo.(warehouseCache)
	if !ok {
		return
	}
	list, err := uc.repo.ListByCompany(ctx, companyID, 1000, 0)
	if err != nil {
		return
	}
	ids := make([]string, 0, len(list))
	for _, w := range list {
		ids = append(ids, w.ID)
	}
	cache.Invalidate(ctx, ids...)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Address:   w.Address,
		IsDefault: w.IsDefault,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
