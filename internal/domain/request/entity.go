package request

import (
	"strings"
	"time"

	"lendloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMissingDescription = errs.New("request description is required")

// ItemRequest is a wanted-item posting. The booking core never mutates it;
// items may carry a back-reference to the request they answer.
type ItemRequest struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	created     time.Time
}

func NewItemRequest(requesterID uuid.UUID, description string, now time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrMissingDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		requesterID: requesterID,
		description: description,
		created:     now,
	}, nil
}

func ReconstructItemRequest(id, requesterID uuid.UUID, description string, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		requesterID: requesterID,
		description: description,
		created:     created,
	}
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) RequesterID() uuid.UUID { return r.requesterID }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) Created() time.Time     { return r.created }
