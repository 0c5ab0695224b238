package repository

import (
	"context"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"

	"github.com/google/uuid"
)

type OperatorRepository struct{}

func NewOperatorRepository() *OperatorRepository {
	return &OperatorRepository{}
}

func (r *OperatorRepository) Create(ctx context.Context, dbtx db.DBTX, username, passwordHash string) (uuid.UUID, error) {
	const q = `
		INSERT INTO operators (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q, username, passwordHash).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert operator", err)
	}
	return id, nil
}
