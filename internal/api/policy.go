package api

import "github.com/starlog/catalog-api/internal/core/domain"

// routePolicies maps each protected route to its required role set. The
// access guard consults this table when routes are registered: an entry
// with an empty set means authentication only, and routes absent from the
// table are public. Role names here must match the stored role rows and
// token claims exactly.
var routePolicies = map[string][]string{
	"PATCH /user/update-role/:email":  {domain.RoleAdmin, domain.RoleSuperAdmin},
	"DELETE /user/delete-role/:email": {domain.RoleAdmin, domain.RoleSuperAdmin},
	"DELETE /user/delete/:id":         {domain.RoleAdmin, domain.RoleSuperAdmin},

	"POST /film/create": {domain.RoleAdmin, domain.RoleSuperAdmin},
	"GET /film/all":     {domain.RoleAdmin, domain.RoleUser, domain.RoleSuperAdmin},
	"GET /film/titles":  {domain.RoleAdmin, domain.RoleUser, domain.RoleSuperAdmin},
	"GET /film/:id":     {domain.RoleUser},
	"PATCH /film/:id":   {domain.RoleAdmin, domain.RoleSuperAdmin},
	"DELETE /film/:id":  {domain.RoleAdmin, domain.RoleSuperAdmin},
	"POST /film/sync":   {domain.RoleAdmin, domain.RoleSuperAdmin},
}

// policyFor returns the required role set for a route identifier. Looking
// up a route that is not in the table panics: every guarded registration
// must have an explicit policy entry.
func policyFor(route string) []string {
	roles, ok := routePolicies[route]
	if !ok {
		panic("api: no role policy declared for route " + route)
	}
	return roles
}
