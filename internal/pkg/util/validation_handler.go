package util

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验 validate 标签
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}

// ValidationMessage 把绑定/校验错误转成对外的提示信息
func ValidationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		firstError := vErrs[0]
		if firstError.Param() != "" {
			return fmt.Sprintf("Field [%s] failed on the '%s=%s' rule",
				firstError.Field(), firstError.Tag(), firstError.Param())
		}
		return fmt.Sprintf("Field [%s] failed on the '%s' rule",
			firstError.Field(), firstError.Tag())
	}

	// gin 默认用 encoding/json 解码，go_json 构建标签下换成 goccy
	var stdTypeErr *stdjson.UnmarshalTypeError
	if errors.As(err, &stdTypeErr) {
		return fmt.Sprintf("Field [%s] has invalid type", stdTypeErr.Field)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("Field [%s] has invalid type", typeErr.Field)
	}
	var stdSyntaxErr *stdjson.SyntaxError
	var syntaxErr *json.SyntaxError
	if errors.As(err, &stdSyntaxErr) || errors.As(err, &syntaxErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return "Invalid JSON body"
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("Invalid number: %s", numErr.Num)
	}
	return err.Error()
}
