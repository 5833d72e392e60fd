package domain

// Role groups a flat set of permission codes. There is no hierarchy:
// authorization is plain membership over the union of the identity's roles.
type Role struct {
	ID       int64    `json:"id"`
	Nombre   string   `json:"nombre"`
	Permisos []string `json:"permisos"`
}

// Identity is the authenticated caller, resolved fresh per request.
type Identity struct {
	ID      int64  `json:"id"`
	Usuario string `json:"usuario"`
	Nombre  string `json:"nombre"`
	Roles   []Role `json:"roles"`
}

// HasPermission reports whether perm belongs to the union of the permission
// sets of every role assigned to the identity.
func (i Identity) HasPermission(perm string) bool {
	for _, r := range i.Roles {
		for _, p := range r.Permisos {
			if p == perm {
				return true
			}
		}
	}
	return false
}

// Permissions returns the deduplicated union, used by the profile endpoint
// so the dashboard can hide actions the user cannot perform.
func (i Identity) Permissions() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range i.Roles {
		for _, p := range r.Permisos {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
