package queries

import (
	"time"

	"lendloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidPaging = errs.New("invalid paging parameters")

const DefaultPageSize = 20

// Page is an offset/size window over an ordered result. A window past the
// end of the result yields an empty page, never an error.
type Page struct {
	From int
	Size int
}

func NewPage(from, size int) (Page, error) {
	if from < 0 || size <= 0 {
		return Page{}, ErrInvalidPaging
	}
	return Page{From: from, Size: size}, nil
}

func DefaultPage() Page {
	return Page{From: 0, Size: DefaultPageSize}
}

func (p Page) Limit() int32 {
	return int32(p.Size)
}

func (p Page) Offset() int32 {
	return int32(p.From)
}

// Read models (DTO for read side)

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRef struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
}

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Item      ItemRef   `json:"item"`
	Booker    UserRef   `json:"booker"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingRef is the compact last/next projection shown on an item to its
// owner: the booking id and who booked it.
type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	RequestID   *uuid.UUID     `json:"request_id,omitempty"`
	LastBooking *BookingRef    `json:"last_booking,omitempty"`
	NextBooking *BookingRef    `json:"next_booking,omitempty"`
	Comments    []*CommentView `json:"comments"`
}

type ItemListItem struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RequestView struct {
	ID          uuid.UUID       `json:"id"`
	RequesterID uuid.UUID       `json:"requester_id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []*ItemListItem `json:"items"`
}
