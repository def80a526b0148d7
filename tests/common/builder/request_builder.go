//go:build unit || e2e

package builder

import (
	"time"

	domrequest "lendloop/internal/domain/request"
	reqdto "lendloop/internal/handler/dto/request"
	"lendloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Description string
	Created     time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		Description: "Looking for a tent for the weekend",
		Created:     time.Now().Truncate(time.Second),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) BuildDomain() (*domrequest.ItemRequest, error) {
	return domrequest.NewItemRequest(b.RequesterID, b.Description, b.Created)
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequestRequest {
	return reqdto.CreateItemRequestRequest{
		Description: b.Description,
	}
}

func (b *RequestBuilder) BuildViewQuery() *queries.RequestView {
	return &queries.RequestView{
		ID:          b.ID,
		RequesterID: b.RequesterID,
		Description: b.Description,
		Created:     b.Created,
		Items:       []*queries.ItemListItem{},
	}
}

func (b *RequestBuilder) WithRequesterID(requesterID uuid.UUID) *RequestBuilder {
	b.RequesterID = requesterID
	return b
}

func (b *RequestBuilder) WithDescription(description string) *RequestBuilder {
	b.Description = description
	return b
}
