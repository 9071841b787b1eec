package templates

import (
	"strings"

	"scipress-events/internal/domain/user"
)

// UserVars projects a user profile into template variables.
func UserVars(u *user.User) Vars {
	return Vars{
		"USER_FULLNAME":     u.FullName(),
		"USER_FIRSTNAME":    u.FirstName,
		"USER_LASTNAME":     u.LastName,
		"USER_NICKNAME":     u.Nickname,
		"USER_EMAIL":        u.Email,
		"USER_INSTITUTIONS": strings.Join(u.Institutions, ", "),
	}
}
