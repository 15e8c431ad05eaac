package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "securitydashboard/server/errors"
)

// RequirePostForm возвращает значение обязательного поля формы.
// Пустая строка допустима, отсутствие поля нет: в этом случае к контексту
// добавляется ошибка 400 и обработка прерывается
func RequirePostForm(c *gin.Context, field string) (string, bool) {
	value, exists := c.GetPostForm(field)
	if !exists {
		abortWithError(c, apperrors.NewMissingFieldError(field).WithContext(c.FullPath()))
		return "", false
	}
	return value, true
}

// abortWithError передает ошибку в GinErrorMiddleware и прерывает цепочку
func abortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}
