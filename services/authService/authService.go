package authService

import (
	"errors"

	"gorm.io/gorm"

	"parlayPickem/models"
	"parlayPickem/services/common"
)

// Session is the authenticated identity handed in by the upstream auth
// proxy. Issuing sessions is not this service's job; it only consumes
// the resolved email.
type Session struct {
	Email *string
}

// ResolveUser maps a session to the stored user with that email. Both
// failure modes are terminal for the request.
func ResolveUser(db *gorm.DB, session *Session) (models.User, error) {
	if session == nil || session.Email == nil || *session.Email == "" {
		return models.User{}, common.NewError(common.KindUnauthenticated, "no session found")
	}

	var user models.User
	result := db.Where("email = ?", *session.Email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.User{}, common.NewError(common.KindUnknownUser, "no user found for session")
	}
	if result.Error != nil {
		return models.User{}, common.WrapStorage("fetching user", result.Error)
	}

	return user, nil
}
