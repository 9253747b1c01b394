// Package role stores per-user role grants and resolves caller roles.
//
// A user has at most one grant, either "user" or "admin"; a user without a
// grant has the default role "user". Absence is modeled explicitly: the
// repository returns ErrRoleNotFound and the service maps it to RoleUser at
// the call site, so the default never leaks into storage.
//
// # Basic Usage
//
//	import "github.com/tendant/simple-ideas/pkg/role"
//
//	repo := role.NewPostgresUserRoleRepository(pool)
//	service := role.NewRoleService(repo)
//
//	r, err := service.ResolveRole(ctx, userID)
//	isAdmin, err := service.IsAdmin(ctx, userID)
//
// GrantAdminIfNoneExists backs the one-time bootstrap in pkg/setup; its
// existence check and write are atomic so concurrent bootstrap calls admit
// exactly one admin.
package role
