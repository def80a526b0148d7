package comment

import (
	"strings"
	"time"

	"lendloop/internal/pkg/clock"
	"lendloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyComment      = errs.New("comment text is empty")
	ErrNoFinishedBooking = errs.New("author has no finished booking for this item")
)

// EligibilityInput is what the checker needs to decide whether the author
// actually rented the item and the rental is over. Booking status is
// deliberately not part of the contract: a rejected past booking still
// grants eligibility, matching the observed service behavior.
type EligibilityInput struct {
	AuthorID uuid.UUID
	ItemID   uuid.UUID
	Now      time.Time
}

type EligibilityChecker interface {
	CanComment(input EligibilityInput) error
}

type Services struct {
	Clock       clock.Clock
	Eligibility EligibilityChecker
}

type Comment struct {
	id       uuid.UUID
	itemID   uuid.UUID
	authorID uuid.UUID
	text     string
	created  time.Time
}

// NewComment gates creation: non-empty text first, then the finished-booking
// check against the author and item.
func NewComment(services *Services, authorID, itemID uuid.UUID, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	now := services.Clock.Now()
	if err := services.Eligibility.CanComment(EligibilityInput{
		AuthorID: authorID,
		ItemID:   itemID,
		Now:      now,
	}); err != nil {
		return nil, err
	}

	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now,
	}, nil
}

func ReconstructComment(id, itemID, authorID uuid.UUID, text string, created time.Time) *Comment {
	return &Comment{
		id:       id,
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}
}

func (c *Comment) ID() uuid.UUID       { return c.id }
func (c *Comment) ItemID() uuid.UUID   { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }
func (c *Comment) Text() string        { return c.text }
func (c *Comment) Created() time.Time  { return c.created }
