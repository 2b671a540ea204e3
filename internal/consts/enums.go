package consts

// Order lifecycle states as the frontend knows them.
const (
	OrderPendiente  = "pendiente"
	OrderPreparando = "preparando"
	OrderEntregado  = "entregado"
	OrderCancelado  = "cancelado"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPendiente, OrderPreparando, OrderEntregado, OrderCancelado:
		return true
	}
	return false
}

// User roles.
const (
	RolCliente       = "cliente"
	RolEmpleado      = "empleado"
	RolAdministrador = "administrador"
)

func ValidRol(s string) bool {
	switch s {
	case RolCliente, RolEmpleado, RolAdministrador:
		return true
	}
	return false
}

// User account states.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Contact message states.
const (
	ContactNuevo      = "nuevo"
	ContactLeido      = "leido"
	ContactRespondido = "respondido"
)

func ValidContactEstado(s string) bool {
	switch s {
	case ContactNuevo, ContactLeido, ContactRespondido:
		return true
	}
	return false
}

// Menu categories.
const (
	CategoriaEntradas = "entradas"
	CategoriaPlatos   = "platos"
	CategoriaBebidas  = "bebidas"
	CategoriaPostres  = "postres"
)

func ValidCategoria(s string) bool {
	switch s {
	case CategoriaEntradas, CategoriaPlatos, CategoriaBebidas, CategoriaPostres:
		return true
	}
	return false
}
