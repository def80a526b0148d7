package commands

import (
	"context"
	"strings"

	domcomment "lendloop/internal/domain/comment"
	"lendloop/internal/infra"
	"lendloop/internal/pkg/clock"
	"lendloop/internal/pkg/errs"
	"lendloop/internal/usecase/queries"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommentCommands interface {
	// Create gates comment creation: non-empty text, resolvable author and
	// item, and a booking by the author on the item that has already ended.
	Create(ctx context.Context, authorID, itemID uuid.UUID, text string) (*queries.CommentView, error)
}

type commentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentUseCaseImpl{uow: uow, clock: clk}
}

func (uc *commentUseCaseImpl) Create(ctx context.Context, authorID, itemID uuid.UUID, text string) (*queries.CommentView, error) {
	// The empty-text check runs before any lookup so the failure order is
	// stable: text, author, item, booking history.
	if strings.TrimSpace(text) == "" {
		return nil, domcomment.ErrEmptyComment
	}

	reads := uc.uow.CommandReads()

	author, err := reads.UserByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if _, err = reads.ItemByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	services := &domcomment.Services{
		Clock:       uc.clock,
		Eligibility: &storeEligibility{ctx: ctx, reads: reads},
	}

	entity, err := domcomment.NewComment(services, authorID, itemID, text)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Comments().Create(ctx, tx.DB(), entity)
		return txErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return &queries.CommentView{
		ID:         entity.ID(),
		Text:       entity.Text(),
		AuthorName: author.Name,
		Created:    entity.Created(),
	}, nil
}

// storeEligibility answers the domain's finished-booking question from the
// command reads. Booking status is intentionally not consulted.
type storeEligibility struct {
	ctx   context.Context
	reads shared.CommandReads
}

func (e *storeEligibility) CanComment(input domcomment.EligibilityInput) error {
	ok, err := e.reads.HasFinishedBooking(e.ctx, input.ItemID, input.AuthorID, input.Now)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if !ok {
		return domcomment.ErrNoFinishedBooking
	}
	return nil
}
