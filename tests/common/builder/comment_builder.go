//go:build unit || e2e

package builder

import (
	"time"

	reqdto "lendloop/internal/handler/dto/request"
	"lendloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Text       string
	Created    time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		AuthorID:   uuid.New(),
		AuthorName: "Booker",
		Text:       "Worked great, thanks!",
		Created:    time.Now().Truncate(time.Second),
	}
}

func (b *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(b)
	return b
}

func (b *CommentBuilder) BuildCreateRequestDTO() reqdto.CreateCommentRequest {
	return reqdto.CreateCommentRequest{
		Text: b.Text,
	}
}

func (b *CommentBuilder) BuildViewQuery() *queries.CommentView {
	return &queries.CommentView{
		ID:         b.ID,
		Text:       b.Text,
		AuthorName: b.AuthorName,
		Created:    b.Created,
	}
}

func (b *CommentBuilder) WithItemID(itemID uuid.UUID) *CommentBuilder {
	b.ItemID = itemID
	return b
}

func (b *CommentBuilder) WithAuthorID(authorID uuid.UUID) *CommentBuilder {
	b.AuthorID = authorID
	return b
}

func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.Text = text
	return b
}
