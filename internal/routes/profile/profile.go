package routesProfile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campusmatch/backend/internal/entity"
	"github.com/campusmatch/backend/internal/usecase/profile"
	"github.com/campusmatch/backend/pkg/http_util"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UsersHandler lists browsable candidates for the viewer in the userId
// query parameter.
func UsersHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	viewerID, err := strconv.ParseUint(c.QueryParam("userId"), 10, 32)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "userId is required",
		})
	}

	candidates, err := profileCase.ListCandidates(c.Request().Context(), uint(viewerID))
	if err != nil {
		logrus.WithError(err).Error("list candidates failed")
		return http_util.Encode(c, http.StatusInternalServerError, entity.ErrorResponse{
			Status:  "error",
			Message: "Failed to load users",
		})
	}

	return http_util.Encode(c, http.StatusOK, candidates)
}

func GetProfileHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "Invalid user id",
		})
	}

	user, err := profileCase.GetProfile(c.Request().Context(), uint(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return http_util.Encode(c, http.StatusNotFound, entity.ErrorResponse{
				Status:  "error",
				Message: "User not found",
			})
		}
		logrus.WithError(err).Error("get profile failed")
		return http_util.Encode(c, http.StatusInternalServerError, entity.ErrorResponse{
			Status:  "error",
			Message: "Failed to load profile",
		})
	}

	return http_util.Encode(c, http.StatusOK, user)
}

func UpdateProfileHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	req, err := http_util.Decode[entity.UpdateProfileRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "Invalid request",
		})
	}

	if problems := req.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "userId is required",
		})
	}

	if err := profileCase.UpdateProfile(c.Request().Context(), req); err != nil {
		logrus.WithError(err).Error("update profile failed")
		return http_util.Encode(c, http.StatusInternalServerError, entity.ErrorResponse{
			Status:  "error",
			Message: "Failed to update profile",
		})
	}

	return http_util.Encode(c, http.StatusOK, entity.StatusResponse{
		Status:  "success",
		Message: "Profile updated successfully!",
	})
}
