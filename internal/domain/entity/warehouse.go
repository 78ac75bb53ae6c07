package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario (multi-bodega).
// Solo una bodega por empresa puede ser la predeterminada; una vez referenciada por un
// movimiento solo se permite cambiar su nombre y dirección.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
