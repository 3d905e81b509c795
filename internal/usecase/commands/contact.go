package commands

import (
	"context"
	"strings"

	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/errs"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidContactMessage = errs.New("invalid contact message")

type ContactCommands interface {
	SubmitContact(ctx context.Context, msg shared.ContactMessage) (uuid.UUID, error)
}

type contactUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewContactUseCase(uow shared.UnitOfWork) ContactCommands {
	return &contactUseCaseImpl{uow: uow}
}

func (c *contactUseCaseImpl) SubmitContact(ctx context.Context, msg shared.ContactMessage) (uuid.UUID, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.ToLower(strings.TrimSpace(msg.Email))
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || !strings.Contains(msg.Email, "@") || msg.Message == "" {
		return uuid.Nil, ErrInvalidContactMessage
	}

	var createdID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Contacts().Create(ctx, tx.DB(), msg)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return createdID, nil
}
