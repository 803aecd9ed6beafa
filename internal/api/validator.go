package api

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/skyline-media/revenue-insights/internal/pkg/constants"
)

type requestValidator struct {
	validate *validator.Validate
}

func NewValidator() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// sonicSerializer swaps echo's JSON codec for sonic.
type sonicSerializer struct{}

func NewJSONSerializer() echo.JSONSerializer {
	return sonicSerializer{}
}

func (sonicSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	return enc.Encode(i)
}

func (sonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	dec := sonic.ConfigDefault.NewDecoder(c.Request().Body)
	err := dec.Decode(i)
	if err == io.EOF {
		return nil
	}
	return err
}
