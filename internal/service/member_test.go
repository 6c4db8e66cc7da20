package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/ordermart/ordermart/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberService_Register(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		setup   func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberRepository
		wantErr error
	}{
		{
			name:  "fresh_email_registers",
			email: "hong@test.com",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberRepository {
				repoMock := mocks.NewMockMemberRepository(ctrl)
				repoMock.EXPECT().GetMemberByEmail(gomock.Any(), "hong@test.com").Return(nil, models.ErrMemberNotFound)
				repoMock.EXPECT().CreateMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, member *models.Member) (*models.Member, error) {
						return member, nil
					})
				return repoMock
			},
		},
		{
			name:  "existing_email_rejected",
			email: "hong@test.com",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberRepository {
				repoMock := mocks.NewMockMemberRepository(ctrl)
				repoMock.EXPECT().GetMemberByEmail(gomock.Any(), "hong@test.com").Return(&models.Member{
					ID:    uuid.New(),
					Name:  "홍길동",
					Email: "hong@test.com",
				}, nil)
				repoMock.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrEmailExists,
		},
		{
			// concurrent registration slipping past the check still ends
			// in the same error through the unique constraint
			name:  "constraint_violation_rejected",
			email: "hong@test.com",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberRepository {
				repoMock := mocks.NewMockMemberRepository(ctrl)
				repoMock.EXPECT().GetMemberByEmail(gomock.Any(), "hong@test.com").Return(nil, models.ErrMemberNotFound)
				repoMock.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Return(nil, models.ErrConflictData)
				return repoMock
			},
			wantErr: models.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMemberService(tt.setup(t, ctrl))

			member, err := svc.Register(context.Background(), "홍길동", tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, member)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, member.ID)
			assert.Equal(t, "홍길동", member.Name)
			assert.Equal(t, tt.email, member.Email)
		})
	}
}

func TestMemberService_GetMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	want := &models.Member{ID: id, Name: "홍길동", Email: "hong@test.com"}

	repoMock := mocks.NewMockMemberRepository(ctrl)
	repoMock.EXPECT().GetMemberByID(gomock.Any(), id).Return(want, nil)

	svc := NewMemberService(repoMock)

	member, err := svc.GetMember(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, member)
}

func TestMemberService_GetMember_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockMemberRepository(ctrl)
	repoMock.EXPECT().GetMemberByID(gomock.Any(), gomock.Any()).Return(nil, models.ErrMemberNotFound)

	svc := NewMemberService(repoMock)

	_, err := svc.GetMember(context.Background(), uuid.New())
	require.True(t, errors.Is(err, models.ErrMemberNotFound))
}
