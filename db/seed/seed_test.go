package seed

import (
	"context"
	"errors"
	"testing"

	"bookstore-api/internal/domains/book/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createOnlyRepo struct {
	existing map[string]bool
	failOn   string
}

func (r *createOnlyRepo) ListAll(context.Context) ([]model.Book, error) { return nil, nil }
func (r *createOnlyRepo) GetByISBN(context.Context, string) (*model.Book, error) {
	return nil, model.ErrBookNotFound
}
func (r *createOnlyRepo) Update(context.Context, string, *model.Book) (*model.Book, error) {
	return nil, model.ErrBookNotFound
}
func (r *createOnlyRepo) Delete(context.Context, string) error { return model.ErrBookNotFound }

func (r *createOnlyRepo) Create(_ context.Context, b *model.Book) (*model.Book, error) {
	if b.ISBN == r.failOn {
		return nil, errors.New("connection reset")
	}
	if r.existing[b.ISBN] {
		return nil, model.ErrISBNAlreadyExists
	}
	r.existing[b.ISBN] = true
	return b, nil
}

func TestBooks_AreValidPayloads(t *testing.T) {
	books := Books()
	require.Len(t, books, 4)

	for _, b := range books {
		p := model.Payload{
			"isbn": b.ISBN, "amazon_url": b.AmazonURL, "author": b.Author, "language": b.Language,
			"pages": float64(b.Pages), "publisher": b.Publisher, "title": b.Title, "year": float64(b.Year),
		}
		got, err := model.ValidateCreate(p)
		require.NoError(t, err, b.ISBN)
		assert.Equal(t, b, got)
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent", func(t *testing.T) {
		repo := &createOnlyRepo{existing: map[string]bool{}}

		n, err := Run(ctx, repo)
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		n, err = Run(ctx, repo)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("store error stops seeding", func(t *testing.T) {
		repo := &createOnlyRepo{existing: map[string]bool{}, failOn: "0399226907"}

		n, err := Run(ctx, repo)
		require.Error(t, err)
		assert.Equal(t, 2, n)
		assert.Contains(t, err.Error(), "0399226907")
	})
}
