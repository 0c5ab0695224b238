package commands

import (
	"context"
	"strings"

	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/password"
	"frontdesk/internal/usecase/queries"
	"frontdesk/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrDuplicateOperator  = errs.New("duplicate operator")
)

const minPasswordLength = 8

// AuthCommands gates front-desk access. It has no bearing on booking
// correctness; credentials are bcrypt hashes, never stored in the clear.
type AuthCommands interface {
	Register(ctx context.Context, username, plainPassword string) (*queries.OperatorView, error)
	Login(ctx context.Context, username, plainPassword string) (*queries.OperatorView, error)
}

type authCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAuthCommands(uow shared.UnitOfWork) AuthCommands {
	return &authCommandsImpl{uow: uow}
}

func (c *authCommandsImpl) Register(ctx context.Context, username, plainPassword string) (*queries.OperatorView, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(plainPassword) < minPasswordLength {
		return nil, ErrValidation
	}

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	view := &queries.OperatorView{Username: username}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Operators().Create(ctx, tx.DB(), username, hash)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateOperator
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		view.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, username, plainPassword string) (*queries.OperatorView, error) {
	op, err := c.uow.CommandReads().OperatorByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	if err := password.ComparePassword(op.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &queries.OperatorView{ID: op.ID, Username: op.Username}, nil
}
