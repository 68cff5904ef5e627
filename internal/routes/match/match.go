package routesMatch

import (
	"net/http"
	"strconv"

	"github.com/campusmatch/backend/internal/entity"
	"github.com/campusmatch/backend/internal/usecase/match"
	"github.com/campusmatch/backend/pkg/http_util"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

func LikeHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	req, err := http_util.Decode[entity.LikeRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "Invalid request",
		})
	}

	if problems := req.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "liker_id and liked_id are required",
		})
	}

	matched, err := matchCase.LikeProfile(c.Request().Context(), req.LikerID, req.LikedID)
	if err != nil {
		logrus.WithError(err).Error("like failed")
		return http_util.Encode(c, http.StatusInternalServerError, entity.ErrorResponse{
			Status:  "error",
			Message: "Failed to record like",
		})
	}

	return http_util.Encode(c, http.StatusOK, entity.LikeResponse{
		Status: "success",
		Match:  matched,
	})
}

func MatchesHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	userID, err := strconv.ParseUint(c.QueryParam("userId"), 10, 32)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "userId is required",
		})
	}

	matches, err := matchCase.GetMatches(c.Request().Context(), uint(userID))
	if err != nil {
		logrus.WithError(err).Error("list matches failed")
		return http_util.Encode(c, http.StatusInternalServerError, entity.ErrorResponse{
			Status:  "error",
			Message: "Failed to load matches",
		})
	}

	if matches == nil {
		matches = []entity.MatchProfile{}
	}
	return http_util.Encode(c, http.StatusOK, matches)
}
