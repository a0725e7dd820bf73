// Package seed chứa bộ sample books dùng cho demo và integration tests.
package seed

import (
	"context"
	"errors"
	"fmt"

	"bookstore-api/internal/domains/book/model"
	"bookstore-api/internal/domains/book/repository"

	"github.com/rs/zerolog/log"
)

// Books trả về bản copy mới của 4 sample books mỗi lần gọi
func Books() []model.Book {
	return []model.Book{
		{
			ISBN:      "0691161518",
			AmazonURL: "http://a.co/eobPtX2",
			Author:    "Matthew Lane",
			Language:  "english",
			Pages:     264,
			Publisher: "Princeton University Press",
			Title:     "Power-Up: Unlocking the Hidden Mathematics in Video Games",
			Year:      2017,
		},
		{
			ISBN:      "0060256656",
			AmazonURL: "http://a.co/d/givingtree",
			Author:    "Shel Silverstein",
			Language:  "english",
			Pages:     64,
			Publisher: "Harper & Row",
			Title:     "The Giving Tree",
			Year:      1964,
		},
		{
			ISBN:      "0399226907",
			AmazonURL: "http://a.co/d/hungrycaterpillar",
			Author:    "Eric Carle",
			Language:  "english",
			Pages:     32,
			Publisher: "Philomel Books",
			Title:     "The Very Hungry Caterpillar",
			Year:      1969,
		},
		{
			ISBN:      "0316236446",
			AmazonURL: "http://a.co/d/alligatorpurse",
			Author:    "Nadine Bernard Westcott",
			Language:  "english",
			Pages:     32,
			Publisher: "Little, Brown Books for Young Readers",
			Title:     "The Lady with the Alligator Purse",
			Year:      1988,
		},
	}
}

// Run insert sample books qua repository.
// ISBN đã tồn tại thì bỏ qua, nên chạy lại nhiều lần vẫn an toàn.
func Run(ctx context.Context, repo repository.RepositoryInterface) (int, error) {
	inserted := 0
	for _, book := range Books() {
		b := book
		if _, err := repo.Create(ctx, &b); err != nil {
			if errors.Is(err, model.ErrISBNAlreadyExists) {
				log.Debug().Str("isbn", b.ISBN).Msg("Sample book already exists, skipping")
				continue
			}
			return inserted, fmt.Errorf("failed to seed book %s: %w", b.ISBN, err)
		}
		inserted++
	}
	return inserted, nil
}
