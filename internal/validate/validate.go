// Package validate: istek gövdesi doğrulaması için ortak validator örneği.
package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct: doğrulama hatasında ilk hatalı alanı işaret eden Türkçe bir mesaj
// döner; handler bunu 400 olarak iletir.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		ve := errs[0]
		switch ve.Tag() {
		case "required":
			return fmt.Errorf("%s alanı zorunlu", ve.Field())
		case "gt":
			return fmt.Errorf("%s alanı %s'den büyük olmalı", ve.Field(), ve.Param())
		case "oneof":
			return fmt.Errorf("%s alanı şunlardan biri olmalı: %s", ve.Field(), ve.Param())
		case "email":
			return fmt.Errorf("%s geçerli bir e-posta olmalı", ve.Field())
		default:
			return fmt.Errorf("%s alanı geçersiz", ve.Field())
		}
	}
	return err
}
