// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the role claim carried in the session token.
type Role string

const (
	// RoleShopOwner manages a shop and its incoming orders.
	RoleShopOwner Role = "shop_owner"
	// RoleStudent is a storefront customer.
	RoleStudent Role = "student"
	// RoleTeacher is a storefront customer.
	RoleTeacher Role = "teacher"
)

// customerRoles are the roles allowed to shop on the storefront.
var customerRoles = []Role{RoleStudent, RoleTeacher}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r.IsOwner() || r.IsCustomer()
}

// IsOwner reports whether the role manages a shop.
func (r Role) IsOwner() bool {
	return r == RoleShopOwner
}

// IsCustomer reports whether the role may build a cart and check out.
func (r Role) IsCustomer() bool {
	return slices.Contains(customerRoles, r)
}
