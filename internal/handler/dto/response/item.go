package response

import (
	"time"

	"lendloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Available   bool                `json:"available"`
	OwnerID     uuid.UUID           `json:"ownerId"`
	RequestID   *uuid.UUID          `json:"requestId,omitempty"`
	LastBooking *BookingRefResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingRefResponse `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse  `json:"comments"`
}

type ItemListResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type BookingRefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		Available:   view.Available,
		OwnerID:     view.OwnerID,
		RequestID:   view.RequestID,
		LastBooking: fromBookingRef(view.LastBooking),
		NextBooking: fromBookingRef(view.NextBooking),
		Comments:    FromCommentList(view.Comments),
	}
}

func FromItemViewList(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(views))
	for i, view := range views {
		out[i] = FromItemView(view)
	}
	return out
}

func FromItemListItem(row *queries.ItemListItem) *ItemListResponse {
	return &ItemListResponse{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		OwnerID:     row.OwnerID,
		RequestID:   row.RequestID,
	}
}

func FromItemList(rows []*queries.ItemListItem) []*ItemListResponse {
	out := make([]*ItemListResponse, len(rows))
	for i, row := range rows {
		out[i] = FromItemListItem(row)
	}
	return out
}

func FromCommentView(view *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         view.ID,
		Text:       view.Text,
		AuthorName: view.AuthorName,
		Created:    view.Created,
	}
}

func FromCommentList(views []*queries.CommentView) []*CommentResponse {
	out := make([]*CommentResponse, len(views))
	for i, view := range views {
		out[i] = FromCommentView(view)
	}
	return out
}

func fromBookingRef(ref *queries.BookingRef) *BookingRefResponse {
	if ref == nil {
		return nil
	}
	return &BookingRefResponse{
		ID:       ref.ID,
		BookerID: ref.BookerID,
		Start:    ref.Start,
		End:      ref.End,
	}
}
