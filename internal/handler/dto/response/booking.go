package response

import (
	"time"

	"lendloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID       `json:"id"`
	Start     time.Time       `json:"start"`
	End       time.Time       `json:"end"`
	Status    string          `json:"status"`
	Item      ItemRefResponse `json:"item"`
	Booker    UserRefResponse `json:"booker"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ItemRefResponse struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"ownerId"`
	Name    string    `json:"name"`
}

type UserRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     view.ID,
		Start:  view.Start,
		End:    view.End,
		Status: view.Status,
		Item: ItemRefResponse{
			ID:      view.Item.ID,
			OwnerID: view.Item.OwnerID,
			Name:    view.Item.Name,
		},
		Booker: UserRefResponse{
			ID:   view.Booker.ID,
			Name: view.Booker.Name,
		},
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, view := range views {
		out[i] = FromBookingView(view)
	}
	return out
}
