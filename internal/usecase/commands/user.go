package commands

import (
	"context"

	domuser "lendloop/internal/domain/user"
	"lendloop/internal/infra"
	"lendloop/internal/pkg/errs"
	"lendloop/internal/usecase/queries"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail = errs.New("email is already in use")
	ErrUserReferenced = errs.New("user is referenced by bookings")
)

type CreateUserInput struct {
	Name  string
	Email string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (*queries.UserView, error)
	Update(ctx context.Context, userID uuid.UUID, in UpdateUserInput) (*queries.UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, in CreateUserInput) (*queries.UserView, error) {
	email, err := domuser.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	entity, err := domuser.NewUser(in.Name, email)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Users().Create(ctx, tx.DB(), entity)
		return txErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return userToView(entity), nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, userID uuid.UUID, in UpdateUserInput) (*queries.UserView, error) {
	var email *domuser.Email
	if in.Email != nil {
		parsed, err := domuser.NewEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		email = &parsed
	}

	var updated *domuser.User
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().UserByID(ctx, userID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(txErr, ErrStoreFailure)
		}

		currentEmail, txErr := domuser.NewEmail(snap.Email)
		if txErr != nil {
			return errs.Mark(txErr, ErrStoreFailure)
		}
		entity := domuser.ReconstructUser(snap.ID, snap.Name, currentEmail, snap.CreatedAt, snap.UpdatedAt)
		if txErr = entity.Patch(in.Name, email); txErr != nil {
			return txErr
		}

		if txErr = tx.Users().Update(ctx, tx.DB(), entity); txErr != nil {
			return txErr
		}
		updated = entity
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return userToView(updated), nil
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, tx.DB(), userID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		// Bookings keep their booker reference for the whole record's life;
		// the schema restricts deleting a referenced user.
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrUserReferenced
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

func userToView(entity *domuser.User) *queries.UserView {
	return &queries.UserView{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Email:     entity.Email().String(),
		CreatedAt: entity.CreatedAt(),
	}
}
