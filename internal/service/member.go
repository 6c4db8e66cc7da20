package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ordermart/ordermart/internal/models"
)

//go:generate mockgen -source=member.go -destination=mocks/member.go -package=mocks

// MemberRepository is interface for interacting with member-related data
type MemberRepository interface {
	// CreateMember inserts new member to database
	CreateMember(ctx context.Context, member *models.Member) (*models.Member, error)
	// GetMemberByID returns member by id
	GetMemberByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	// GetMemberByEmail returns member by email
	GetMemberByEmail(ctx context.Context, email string) (*models.Member, error)
}

// MemberService implements MemberService interface
type MemberService struct {
	repo MemberRepository
}

// NewMemberService creates new MemberService instance
func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{repo: repo}
}

// Register creates new member with unique email.
// The lookup below only produces a clean early error; the actual
// enforcement is the unique constraint on members.email, whose violation
// is reported the same way.
func (ms *MemberService) Register(ctx context.Context, name, email string) (*models.Member, error) {
	_, err := ms.repo.GetMemberByEmail(ctx, email)
	if err == nil {
		return nil, models.ErrEmailExists
	}
	if !errors.Is(err, models.ErrMemberNotFound) {
		return nil, err
	}

	member := &models.Member{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	}

	member, err = ms.repo.CreateMember(ctx, member)
	if err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return nil, models.ErrEmailExists
		}
		return nil, err
	}

	return member, nil
}

// GetMember returns member by id
func (ms *MemberService) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	return ms.repo.GetMemberByID(ctx, id)
}
