package response

import (
	"time"

	"lendloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        view.ID,
		Name:      view.Name,
		Email:     view.Email,
		CreatedAt: view.CreatedAt,
	}
}

func FromUserList(views []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, len(views))
	for i, view := range views {
		out[i] = FromUserView(view)
	}
	return out
}
