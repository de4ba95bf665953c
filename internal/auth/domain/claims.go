// Package domain defines the authentication and authorization model: the
// claim set carried by login tokens, role codes, and the static
// role-to-permission policy table.
package domain

// Claims is the identity payload embedded in a signed login token.
// Only the numeric employee id is trusted for authorization decisions;
// the username is carried for logging convenience.
type Claims struct {
	ID       int64
	Username string
}
