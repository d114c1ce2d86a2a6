// File: internal/service/authorize.go
package service

import "slotbook/internal/model"

// CanAccess reports whether a caller may act on a resource owned by ownerID.
// Admins may act on anything; everyone else only on their own resources.
func CanAccess(role model.Role, ownerID, callerID int) bool {
	return role == model.RoleAdmin || ownerID == callerID
}
