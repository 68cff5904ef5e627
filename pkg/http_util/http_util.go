package http_util

import (
	"encoding/json"
	"fmt"

	"github.com/labstack/echo"
)

// Encode writes v as the JSON response body with the given status.
func Encode[T any](c echo.Context, status int, v T) error {
	return c.JSON(status, v)
}

// Decode binds the request body into a value of type T.
func Decode[T any](c echo.Context) (T, error) {
	var v T
	if err := c.Bind(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// DecodeBody unmarshals a raw body into v. Used by tests to read
// responses back.
func DecodeBody[T any](body []byte, v T) (T, error) {
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}
