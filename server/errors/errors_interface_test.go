package errors_test

import (
	apperrors "securitydashboard/server/errors"
	"securitydashboard/server/middleware"
)

// Проверка, что AppError реализует интерфейс middleware.HTTPError
var _ middleware.HTTPError = (*apperrors.AppError)(nil)
