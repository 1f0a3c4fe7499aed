package auth

import (
	"strings"

	"showcase/internal/model"
)

// RolePolicy assigns a role to a newly registered user. Admin membership is
// configured externally (ADMIN_EMAILS), never compiled in.
type RolePolicy struct {
	adminEmails map[string]struct{}
}

// NewRolePolicy builds a policy from the configured admin email list.
// Matching is case-insensitive on the email address.
func NewRolePolicy(adminEmails []string) *RolePolicy {
	m := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		m[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &RolePolicy{adminEmails: m}
}

// RoleFor returns the role a user with the given email starts with.
func (p *RolePolicy) RoleFor(email string) model.Role {
	if _, ok := p.adminEmails[strings.ToLower(email)]; ok {
		return model.RoleAdmin
	}
	return model.RoleStudent
}
