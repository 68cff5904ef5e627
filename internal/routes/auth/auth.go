package routesAuth

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/campusmatch/backend/internal/entity"
	authUseCase "github.com/campusmatch/backend/internal/usecase/auth"
	"github.com/campusmatch/backend/pkg/http_util"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

// SignupHandler creates an account from the multipart signup form. The
// photo part is optional.
func SignupHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	age, _ := strconv.Atoi(c.FormValue("age"))

	req := entity.SignupRequest{
		FullName:   c.FormValue("fullName"),
		College:    c.FormValue("college"),
		Email:      c.FormValue("email"),
		Password:   c.FormValue("password"),
		Bio:        c.FormValue("bio"),
		Gender:     c.FormValue("gender"),
		Preference: c.FormValue("preference"),
		Age:        age,
		Interests:  c.FormValue("interests"),
	}

	if problems := req.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "Missing required signup fields",
		})
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil
	}

	user, err := authCase.SignupUser(c.Request().Context(), req, photo)
	if err != nil {
		logrus.WithError(err).Error("signup failed")
		return http_util.Encode(c, http.StatusInternalServerError, entity.ErrorResponse{
			Status:  "error",
			Message: "Failed to sign up",
		})
	}

	return http_util.Encode(c, http.StatusOK, entity.AuthResponse{
		Status:  "success",
		Message: fmt.Sprintf("Welcome, %s!", user.FullName),
		User:    entity.UserSummary{ID: user.ID, FullName: user.FullName},
	})
}

func LoginHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	req, err := http_util.Decode[entity.LoginRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "Invalid request",
		})
	}

	if problems := req.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "Email and password are required",
		})
	}

	user, err := authCase.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return http_util.Encode(c, http.StatusUnauthorized, entity.ErrorResponse{
			Status:  "error",
			Message: "Invalid email or password.",
		})
	}

	return http_util.Encode(c, http.StatusOK, entity.AuthResponse{
		Status:  "success",
		Message: fmt.Sprintf("Welcome back, %s!", user.FullName),
		User:    entity.UserSummary{ID: user.ID, FullName: user.FullName},
	})
}
