package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-instalaciones/pkg/colombia"
)

var validate = newValidator()

var reMACSerial = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$|^[A-Za-z0-9-]{6,30}$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// decimal.Decimal como número para que min=0 funcione.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("cedula", func(fl validator.FieldLevel) bool {
		return colombia.ValidateCedula(fl.Field().String()) == nil
	})
	must("documento", func(fl validator.FieldLevel) bool {
		return colombia.ValidateDocumento(fl.Field().String()) == nil
	})
	must("telefono", func(fl validator.FieldLevel) bool {
		return colombia.ValidateTelefono(fl.Field().String()) == nil
	})
	must("coordenadas", func(fl validator.FieldLevel) bool {
		_, _, err := colombia.ParseCoordenadas(fl.Field().String())
		return err == nil
	})
	must("macserial", func(fl validator.FieldLevel) bool {
		return reMACSerial.MatchString(fl.Field().String())
	})
	must("nombre", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if len([]rune(s)) < 3 || len([]rune(s)) > 100 {
			return false
		}
		for _, r := range s {
			if !unicode.IsLetter(r) && r != ' ' && r != '.' && r != '\'' && r != '-' {
				return false
			}
		}
		return true
	})
	must("password", func(fl validator.FieldLevel) bool {
		var letter, digit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsLetter(r):
				letter = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return letter && digit
	})
	return v
}

var fieldMessages = map[string]string{
	"required":    "es obligatorio",
	"email":       "no es un email válido",
	"cedula":      "cédula inválida: 6 a 10 dígitos sin cero inicial",
	"documento":   "documento inválido: cédula o NIT con dígito de verificación",
	"telefono":    "teléfono inválido: celular de 10 dígitos o fijo",
	"coordenadas": "coordenadas inválidas: use lat,lng",
	"macserial":   "MAC o serial inválido",
	"nombre":      "nombre inválido: solo letras, 3 a 100 caracteres",
	"password":    "la contraseña debe tener letras y números",
	"datetime":    "fecha inválida: use YYYY-MM-DD",
	"ipv4":        "IP inválida",
	"oneof":       "valor no permitido",
	"uuid":        "identificador inválido",
}

// bindAndValidate parsea el cuerpo y aplica las reglas de validación. Si falla ya respondió;
// el handler debe retornar el error devuelto sin escribir otra respuesta.
func bindAndValidate(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return false, fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			msg, found := fieldMessages[fe.Tag()]
			if !found {
				msg = "no cumple la regla " + fe.Tag()
				if fe.Param() != "" {
					msg += "=" + fe.Param()
				}
			}
			fields[fe.Field()] = msg
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(validationError(fields))
	}
	return true, nil
}
