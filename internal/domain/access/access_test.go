package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerly/ledgerly-api/internal/domain/access"
	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
)

func TestHasRole_MiembroDelGrupo(t *testing.T) {
	assert.True(t, access.HasRole(entity.RoleAdmin, access.GroupBusiness))
	assert.True(t, access.HasRole(entity.RoleStaff, access.GroupBusiness))
	assert.True(t, access.HasRole(entity.RoleSuperAdmin, access.GroupReports))
}

func TestHasRole_NoMiembro(t *testing.T) {
	assert.False(t, access.HasRole(entity.RoleViewer, access.GroupBusiness))
	assert.False(t, access.HasRole(entity.RoleStaff, access.GroupReports))
	assert.False(t, access.HasRole(entity.RoleSupport, access.GroupInventoryManage))
}

// TestHasRole_Normalizacion variantes de mayúsculas y espacios de un rol
// válido deben resolver igual que el token canónico.
func TestHasRole_Normalizacion(t *testing.T) {
	assert.True(t, access.HasRole("  Admin  ", access.GroupSettings))
	assert.True(t, access.HasRole("STAFF", access.GroupBusiness))
	assert.True(t, access.HasRole("Super_Admin", access.GroupSupport))
	assert.False(t, access.HasRole("  Viewer ", access.GroupSettings))
}

// TestHasRole_CerradoPorDefecto rol ausente, malformado o desconocido
// devuelve false, nunca error.
func TestHasRole_CerradoPorDefecto(t *testing.T) {
	assert.False(t, access.HasRole("", access.GroupBusiness))
	assert.False(t, access.HasRole("   ", access.GroupBusiness))
	assert.False(t, access.HasRole("root", access.GroupBusiness))
	assert.False(t, access.HasRole("admin;drop", access.GroupBusiness))
}

// TestHasRole_GrupoVacio un grupo sin miembros niega todo, incluso admin.
func TestHasRole_GrupoVacio(t *testing.T) {
	empty := access.NewGroup()
	assert.False(t, access.HasRole(entity.RoleAdmin, empty))
	assert.False(t, access.HasRole("", empty))

	var nilGroup access.Group
	assert.False(t, access.HasRole(entity.RoleAdmin, nilGroup))
}

// TestHasRole_SinJerarquia super_admin solo pasa donde está enumerado:
// la elevación no se infiere.
func TestHasRole_SinJerarquia(t *testing.T) {
	soloStaff := access.NewGroup(entity.RoleStaff)
	assert.False(t, access.HasRole(entity.RoleSuperAdmin, soloStaff))
	assert.False(t, access.HasRole(entity.RoleAdmin, soloStaff))
	assert.True(t, access.HasRole(entity.RoleStaff, soloStaff))
}
