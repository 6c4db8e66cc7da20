package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/ordermart/ordermart/internal/handler/http/mocks"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberHandler_RegisterMember(t *testing.T) {
	memberID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService
		wantStatusCode int
	}{
		{
			name: "valid_request_return_200",
			body: `{"name":"홍길동","email":"hong@test.com"}`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService {
				svcMock := mocks.NewMockMemberService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), "홍길동", "hong@test.com").Return(&models.Member{
					ID:    memberID,
					Name:  "홍길동",
					Email: "hong@test.com",
				}, nil)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "duplicate_email_return_409",
			body: `{"name":"홍길동","email":"hong@test.com"}`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService {
				svcMock := mocks.NewMockMemberService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrEmailExists)
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "empty_name_return_400",
			body: `{"name":"","email":"hong@test.com"}`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService {
				svcMock := mocks.NewMockMemberService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "malformed_body_return_400",
			body: `{"name":`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService {
				svcMock := mocks.NewMockMemberService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "internal_error_return_500",
			body: `{"name":"홍길동","email":"hong@test.com"}`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService {
				svcMock := mocks.NewMockMemberService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("storage down"))
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mh := NewMemberHandler(tt.setup(t, ctrl))

			req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			mh.RegisterMember().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantStatusCode == http.StatusOK {
				var resp memberResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

				want := memberResponse{
					ID:    memberID.String(),
					Name:  "홍길동",
					Email: "hong@test.com",
				}
				if diff := cmp.Diff(want, resp); diff != "" {
					t.Errorf("response mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestMemberHandler_GetMember(t *testing.T) {
	memberID := uuid.New()

	tests := []struct {
		name           string
		target         string
		setup          func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService
		wantStatusCode int
	}{
		{
			name:   "existing_member_return_200",
			target: "/api/members/" + memberID.String(),
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService {
				svcMock := mocks.NewMockMemberService(ctrl)
				svcMock.EXPECT().GetMember(gomock.Any(), memberID).Return(&models.Member{
					ID:    memberID,
					Name:  "홍길동",
					Email: "hong@test.com",
				}, nil)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "unknown_member_return_404",
			target: "/api/members/" + memberID.String(),
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService {
				svcMock := mocks.NewMockMemberService(ctrl)
				svcMock.EXPECT().GetMember(gomock.Any(), memberID).Return(nil, models.ErrMemberNotFound)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "invalid_id_return_400",
			target: "/api/members/not-a-uuid",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockMemberService {
				svcMock := mocks.NewMockMemberService(ctrl)
				svcMock.EXPECT().GetMember(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mh := NewMemberHandler(tt.setup(t, ctrl))

			router := chi.NewRouter()
			router.Get("/api/members/{id}", mh.GetMember())

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
		})
	}
}
