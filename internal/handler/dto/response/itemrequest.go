package response

import (
	"time"

	"lendloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID           `json:"id"`
	Description string              `json:"description"`
	RequesterID uuid.UUID           `json:"requesterId"`
	Created     time.Time           `json:"created"`
	Items       []*ItemListResponse `json:"items"`
}

func FromRequestView(view *queries.RequestView) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          view.ID,
		Description: view.Description,
		RequesterID: view.RequesterID,
		Created:     view.Created,
		Items:       FromItemList(view.Items),
	}
}

func FromRequestList(views []*queries.RequestView) []*ItemRequestResponse {
	out := make([]*ItemRequestResponse, len(views))
	for i, view := range views {
		out[i] = FromRequestView(view)
	}
	return out
}
