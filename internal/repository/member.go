package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/ordermart/ordermart/internal/repository/postgres"
)

const pgErrUniqueViolationCode = "23505"

const (
	insertMemberQuery = `
						INSERT INTO members (id, name, email)
						VALUES ($1, $2, $3)
						RETURNING id, name, email, created_at
`
	selectMemberByIDQuery = `
						SELECT id, name, email, created_at FROM members
						WHERE id = $1
`
	selectMemberByEmailQuery = `
						SELECT id, name, email, created_at FROM members
						WHERE email = $1
`
)

// MemberRepository implements MemberRepository interface
type MemberRepository struct {
	db *postgres.DB
}

// NewMemberRepository creates new MemberRepository instance
func NewMemberRepository(db *postgres.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// CreateMember inserts new member to database
func (mr *MemberRepository) CreateMember(ctx context.Context, member *models.Member) (*models.Member, error) {
	err := mr.db.QueryRow(ctx, insertMemberQuery, member.ID, member.Name, member.Email).Scan(&member.ID, &member.Name, &member.Email, &member.CreatedAt)
	if err != nil {
		if errCode := mr.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return member, nil
}

// GetMemberByID returns member by id
func (mr *MemberRepository) GetMemberByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	member := models.Member{}
	err := mr.db.QueryRow(ctx, selectMemberByIDQuery, id).Scan(&member.ID, &member.Name, &member.Email, &member.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrMemberNotFound
		}
		return nil, err
	}

	return &member, nil
}

// GetMemberByEmail returns member by email
func (mr *MemberRepository) GetMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	member := models.Member{}
	err := mr.db.QueryRow(ctx, selectMemberByEmailQuery, email).Scan(&member.ID, &member.Name, &member.Email, &member.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrMemberNotFound
		}
		return nil, err
	}

	return &member, nil
}
