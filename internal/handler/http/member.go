package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ordermart/ordermart/internal/models"
)

//go:generate mockgen -source=member.go -destination=mocks/member.go -package=mocks

type MemberService interface {
	// Register creates new member with unique email
	Register(ctx context.Context, name, email string) (*models.Member, error)
	// GetMember returns member by id
	GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error)
}

// MemberHandler represents HTTP handler for member-related requests
type MemberHandler struct {
	svc MemberService
}

// NewMemberHandler creates new MemberHandler instance
func NewMemberHandler(svc MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type memberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterMember registers new member
// 200 — участник зарегистрирован;
// 400 — неверный формат запроса;
// 409 — email уже занят;
// 500 — внутренняя ошибка сервера.
func (mh *MemberHandler) RegisterMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if req.Name == "" || req.Email == "" {
			http.Error(w, "name and email are required", http.StatusBadRequest)
			return
		}

		member, err := mh.svc.Register(r.Context(), req.Name, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEmailExists):
				http.Error(w, "email exists", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toMemberResponse(member)); err != nil {
			return
		}
	}
}

// GetMember returns member by id
// 200 — успешная обработка запроса;
// 400 — неверный идентификатор;
// 404 — участник не найден;
// 500 — внутренняя ошибка сервера.
func (mh *MemberHandler) GetMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid member id", http.StatusBadRequest)
			return
		}

		member, err := mh.svc.GetMember(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMemberNotFound):
				http.Error(w, "member not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toMemberResponse(member)); err != nil {
			return
		}
	}
}

func toMemberResponse(member *models.Member) memberResponse {
	return memberResponse{
		ID:    member.ID.String(),
		Name:  member.Name,
		Email: member.Email,
	}
}
