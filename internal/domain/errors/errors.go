package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrEmailAlreadyExists = errors.New("register.email_exists")
	ErrInvalidCredentials = errors.New("login.invalid")
	ErrPasswordTooShort   = errors.New("password.too_short")
)
