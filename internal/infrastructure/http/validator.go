package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// requestValidator go-playground/validator 기반 Echo 검증기
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

// Validate 요청 구조체의 validate 태그를 검사하고 첫 위반 필드를
// 도메인 ValidationError로 변환합니다.
func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			return errs.NewValidationError(first.Field(), first.Tag(), first.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
