package chat

import (
	"context"

	"github.com/campusmatch/backend/internal/entity"
	messageRepo "github.com/campusmatch/backend/internal/repository/message"
)

type IChatUseCase interface {
	SendMessage(ctx context.Context, req entity.SendMessageRequest) (*entity.Message, error)
	ListMessages(ctx context.Context, matchID uint) ([]entity.Message, error)
}

type chatUseCase struct {
	messageRepo messageRepo.IMessageRepo
}

func NewChatUseCase(messageRepo messageRepo.IMessageRepo) IChatUseCase {
	return &chatUseCase{
		messageRepo: messageRepo,
	}
}

// SendMessage appends a message with a server-assigned timestamp. The
// sender is not checked against the match participants; the UI owns
// that.
func (c *chatUseCase) SendMessage(ctx context.Context, req entity.SendMessageRequest) (*entity.Message, error) {
	msg := entity.Message{
		MatchID:     req.MatchID,
		SenderID:    req.SenderID,
		MessageText: req.MessageText,
	}
	return c.messageRepo.CreateMessage(ctx, &msg)
}

func (c *chatUseCase) ListMessages(ctx context.Context, matchID uint) ([]entity.Message, error) {
	return c.messageRepo.ListByMatch(ctx, matchID)
}
