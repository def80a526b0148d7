//go:build unit || e2e

package builder

import (
	dombooking "lendloop/internal/domain/booking"
	domitem "lendloop/internal/domain/item"
	reqdto "lendloop/internal/handler/dto/request"
	"lendloop/internal/usecase/queries"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Cordless Drill",
		Description: "18V drill with two batteries",
		Available:   true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.NewItem(b.OwnerID, b.Name, b.Description, b.Available, b.RequestID)
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := b.Available
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildUpdateRequestDTO() reqdto.UpdateItemRequest {
	name := b.Name
	description := b.Description
	available := b.Available
	return reqdto.UpdateItemRequest{
		Name:        &name,
		Description: &description,
		Available:   &available,
	}
}

func (b *ItemBuilder) BuildListItem() *queries.ItemListItem {
	return &queries.ItemListItem{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		OwnerID:     b.OwnerID,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildViewQuery() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		OwnerID:     b.OwnerID,
		RequestID:   b.RequestID,
		Comments:    []*queries.CommentView{},
	}
}

func (b *ItemBuilder) BuildSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildSpec() dombooking.ItemSpec {
	return dombooking.ItemSpec{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Available: b.Available,
	}
}

// Fluent builder methods
func (b *ItemBuilder) WithOwnerID(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithDescription(description string) *ItemBuilder {
	b.Description = description
	return b
}

func (b *ItemBuilder) WithRequestID(requestID uuid.UUID) *ItemBuilder {
	b.RequestID = &requestID
	return b
}

func (b *ItemBuilder) AsUnavailable() *ItemBuilder {
	b.Available = false
	return b
}
