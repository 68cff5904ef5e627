package routesChat

import (
	"net/http"
	"strconv"

	"github.com/campusmatch/backend/internal/entity"
	"github.com/campusmatch/backend/internal/usecase/chat"
	"github.com/campusmatch/backend/pkg/http_util"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

func MessagesHandler(c echo.Context, chatCase chat.IChatUseCase) error {
	matchID, err := strconv.ParseUint(c.Param("matchId"), 10, 32)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "Invalid match id",
		})
	}

	messages, err := chatCase.ListMessages(c.Request().Context(), uint(matchID))
	if err != nil {
		logrus.WithError(err).Error("list messages failed")
		return http_util.Encode(c, http.StatusInternalServerError, entity.ErrorResponse{
			Status:  "error",
			Message: "Failed to load messages",
		})
	}

	if messages == nil {
		messages = []entity.Message{}
	}
	return http_util.Encode(c, http.StatusOK, messages)
}

func SendMessageHandler(c echo.Context, chatCase chat.IChatUseCase) error {
	req, err := http_util.Decode[entity.SendMessageRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "Invalid request",
		})
	}

	if problems := req.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, entity.ErrorResponse{
			Status:  "error",
			Message: "match_id, sender_id and message_text are required",
		})
	}

	if _, err := chatCase.SendMessage(c.Request().Context(), req); err != nil {
		logrus.WithError(err).Error("send message failed")
		return http_util.Encode(c, http.StatusInternalServerError, entity.ErrorResponse{
			Status:  "error",
			Message: "Failed to send message",
		})
	}

	return http_util.Encode(c, http.StatusOK, entity.StatusResponse{
		Status:  "success",
		Message: "Message sent",
	})
}
