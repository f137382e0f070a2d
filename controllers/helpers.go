package controllers

import (
	"errors"
	"gin-ratings/constants"
	"gin-ratings/services"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerFieldNamesOnce sync.Once

// registerJSONFieldNames はバリデーションエラーのフィールド名をJSONのキー名にする
func registerJSONFieldNames() {
	registerFieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// parseID はパスパラメータ :id を読み取る。不正な場合は400を返して false
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}

// bindJSON はリクエストボディをバインドし、失敗した場合は400を返して false
func bindJSON(ctx *gin.Context, input interface{}) bool {
	registerJSONFieldNames()
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, fieldError.Field())
		}
		return constants.ErrMissingFields + ": " + strings.Join(fields, ", ")
	}
	return constants.ErrInvalidInput
}

// respondError はサービスのエラーをステータスコードに変換する
func respondError(ctx *gin.Context, err error, conflictMessage string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRoleNotFound),
		errors.Is(err, services.ErrReviewNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrAlreadyExists), errors.Is(err, services.ErrInUse):
		ctx.JSON(http.StatusConflict, gin.H{"message": conflictMessage})
	default:
		log.Printf("%s %s error: %v", ctx.Request.Method, ctx.FullPath(), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
	}
}
