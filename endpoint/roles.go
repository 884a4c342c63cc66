package endpoint

import (
	"github.com/ariebrainware/dentist-api/model"
)

// Route role sets.
var (
	adminOnly      = model.NewRoleSet(model.RoleAdmin)
	dentistOnly    = model.NewRoleSet(model.RoleDentist)
	staff          = model.NewRoleSet(model.RoleAdmin, model.RoleDentist)
	anyValidCaller = model.AnyRole
)
