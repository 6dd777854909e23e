// Package access decide si un rol de usuario puede usar un grupo de
// capacidades. La política vive en las tablas estáticas de grupos; la función
// HasRole solo normaliza y compara — no hay jerarquía implícita de roles.
package access

import (
	"strings"

	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
)

// Group conjunto canónico de roles permitidos para una capacidad.
// Membresía enumerada: si super_admin debe pasar, el grupo lo lista.
type Group map[string]struct{}

// NewGroup construye un grupo a partir de tokens canónicos de rol.
func NewGroup(roles ...string) Group {
	g := make(Group, len(roles))
	for _, r := range roles {
		g[Normalize(r)] = struct{}{}
	}
	return g
}

// Grupos de capacidades de Ledgerly. Configuración estática: cambiar la
// membresía requiere redesplegar estas tablas.
var (
	// GroupBusiness gestión del negocio: facturas, recibos, clientes.
	GroupBusiness = NewGroup(entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleStaff)
	// GroupReports reportes y dashboard financiero.
	GroupReports = NewGroup(entity.RoleAdmin, entity.RoleSuperAdmin)
	// GroupSettings configuración de la empresa y plantillas.
	GroupSettings = NewGroup(entity.RoleAdmin, entity.RoleSuperAdmin)
	// GroupSupport chat y soporte al cliente.
	GroupSupport = NewGroup(entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleStaff, entity.RoleSupport)
	// GroupInventoryManage ajustes de inventario.
	GroupInventoryManage = NewGroup(entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleStaff)
)

// Normalize lleva un token de rol a su forma canónica: sin espacios
// alrededor y en minúsculas.
func Normalize(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// HasRole informa si el rol (normalizado) pertenece al grupo. Cerrado por
// defecto: rol vacío, desconocido o grupo vacío devuelven false; nunca hay
// error ni panic — la denegación es un booleano, no una falla.
func HasRole(role string, group Group) bool {
	if len(group) == 0 {
		return false
	}
	norm := Normalize(role)
	if norm == "" {
		return false
	}
	_, ok := group[norm]
	return ok
}
