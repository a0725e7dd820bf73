package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"bookstore-api/db/seed"
	"bookstore-api/internal/domains/book/model"
	"bookstore-api/internal/domains/book/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo là repository in-memory, đủ để chạy handler qua service thật
type memoryRepo struct {
	mu    sync.Mutex
	books map[string]model.Book
	err   error
}

func newMemoryRepo(books ...model.Book) *memoryRepo {
	r := &memoryRepo{books: make(map[string]model.Book)}
	for _, b := range books {
		r.books[b.ISBN] = b
	}
	return r
}

func (r *memoryRepo) ListAll(context.Context) ([]model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	books := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}

func (r *memoryRepo) GetByISBN(_ context.Context, isbn string) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	b, ok := r.books[isbn]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &b, nil
}

func (r *memoryRepo) Create(_ context.Context, book *model.Book) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	if _, ok := r.books[book.ISBN]; ok {
		return nil, model.ErrISBNAlreadyExists
	}
	r.books[book.ISBN] = *book
	b := *book
	return &b, nil
}

func (r *memoryRepo) Update(_ context.Context, isbn string, book *model.Book) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	if _, ok := r.books[isbn]; !ok {
		return nil, model.ErrBookNotFound
	}
	r.books[isbn] = *book
	b := *book
	return &b, nil
}

func (r *memoryRepo) Delete(_ context.Context, isbn string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}

	if _, ok := r.books[isbn]; !ok {
		return model.ErrBookNotFound
	}
	delete(r.books, isbn)
	return nil
}

var seedBooks = seed.Books()

func setupRouter(repo *memoryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(service.NewService(repo))

	r := gin.New()
	r.GET("/books", h.ListBooks)
	r.GET("/books/:isbn", h.GetBook)
	r.POST("/books", h.CreateBook)
	r.PUT("/books/:isbn", h.UpdateBook)
	r.DELETE("/books/:isbn", h.DeleteBook)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const newBookJSON = `{
	"isbn": "0123456789",
	"amazon_url": "http://a.co/d/newbook",
	"author": "Test Author",
	"language": "english",
	"pages": 100,
	"publisher": "Test Publisher",
	"title": "Test Title",
	"year": 2023
}`

func TestListBooks(t *testing.T) {
	r := setupRouter(newMemoryRepo(seedBooks...))

	w := do(t, r, http.MethodGet, "/books", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body model.ListBooksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Books, 4)
}

func TestListBooks_Empty(t *testing.T) {
	r := setupRouter(newMemoryRepo())

	w := do(t, r, http.MethodGet, "/books", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"books":[]}`, w.Body.String())
}

func TestGetBook(t *testing.T) {
	r := setupRouter(newMemoryRepo(seedBooks...))

	t.Run("found", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/books/0691161518", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body model.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Book)
		assert.Equal(t, "0691161518", body.Book.ISBN)
	})

	t.Run("not found", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/books/1234567890", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"BOOK_NOT_FOUND"`)
	})
}

func TestCreateBook(t *testing.T) {
	t.Run("created then readable", func(t *testing.T) {
		r := setupRouter(newMemoryRepo(seedBooks...))

		w := do(t, r, http.MethodPost, "/books", newBookJSON)
		require.Equal(t, http.StatusCreated, w.Code)

		var created model.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "0123456789", created.Book.ISBN)

		w = do(t, r, http.MethodGet, "/books/0123456789", "")
		require.Equal(t, http.StatusOK, w.Code)

		var fetched model.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, *created.Book, *fetched.Book)
	})

	t.Run("missing language and publisher", func(t *testing.T) {
		r := setupRouter(newMemoryRepo(seedBooks...))

		body := `{"isbn":"0123456789","amazon_url":"http://a.co/d/newbook","author":"Test Author",
			"pages":100,"title":"Test Title","year":2023}`

		w := do(t, r, http.MethodPost, "/books", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":["language is required","publisher is required"]}`, w.Body.String())
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		r := setupRouter(newMemoryRepo(seedBooks...))

		dup := strings.Replace(newBookJSON, "0123456789", "0691161518", 1)
		w := do(t, r, http.MethodPost, "/books", dup)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"ISBN_ALREADY_EXISTS"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		r := setupRouter(newMemoryRepo())

		for _, body := range []string{`{"isbn":`, `[1,2,3]`, `"book"`} {
			w := do(t, r, http.MethodPost, "/books", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.JSONEq(t, `{"errors":["request body must be a JSON object"]}`, w.Body.String(), body)
		}
	})

	t.Run("null body", func(t *testing.T) {
		r := setupRouter(newMemoryRepo())

		w := do(t, r, http.MethodPost, "/books", `null`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":["request body must be a JSON object"]}`, w.Body.String())
	})
}

func TestUpdateBook(t *testing.T) {
	t.Run("replaces record", func(t *testing.T) {
		r := setupRouter(newMemoryRepo(seedBooks...))

		body := `{"isbn":"0691161518","amazon_url":"http://a.co/eobPtX2","author":"Matthew Lane",
			"language":"english","pages":264,"publisher":"Princeton University Press",
			"title":"Updated Title","year":2024}`

		w := do(t, r, http.MethodPut, "/books/0691161518", body)
		require.Equal(t, http.StatusOK, w.Code)

		var updated model.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "Updated Title", updated.Book.Title)
		assert.Equal(t, 2024, updated.Book.Year)
	})

	t.Run("unknown isbn", func(t *testing.T) {
		r := setupRouter(newMemoryRepo(seedBooks...))

		body := strings.Replace(newBookJSON, "0123456789", "1234567890", 1)
		w := do(t, r, http.MethodPut, "/books/1234567890", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("isbn mismatch", func(t *testing.T) {
		r := setupRouter(newMemoryRepo(seedBooks...))

		w := do(t, r, http.MethodPut, "/books/0691161518", newBookJSON)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":["isbn must match the isbn in the path"]}`, w.Body.String())
	})

	t.Run("invalid payload", func(t *testing.T) {
		r := setupRouter(newMemoryRepo(seedBooks...))

		w := do(t, r, http.MethodPut, "/books/0691161518", `{"isbn":"0691161518","title":"Only Title"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "pages is required")
	})
}

func TestDeleteBook(t *testing.T) {
	r := setupRouter(newMemoryRepo(seedBooks...))

	w := do(t, r, http.MethodDelete, "/books/0691161518", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Book deleted"}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/books/0691161518", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/books", "")
	var body model.ListBooksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Books, 3)
}

func TestStoreFailure(t *testing.T) {
	repo := newMemoryRepo(seedBooks...)
	repo.err = errors.New("connection refused")
	r := setupRouter(repo)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/books", ""},
		{http.MethodGet, "/books/0691161518", ""},
		{http.MethodPost, "/books", newBookJSON},
		{http.MethodDelete, "/books/0691161518", ""},
	} {
		w := do(t, r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, tc.method+" "+tc.path)
		assert.Contains(t, w.Body.String(), `"code":"INTERNAL_SERVER_ERROR"`)
		assert.NotContains(t, w.Body.String(), "connection refused")
	}

	// Process vẫn phục vụ sau khi store hồi phục
	repo.mu.Lock()
	repo.err = nil
	repo.mu.Unlock()

	w := do(t, r, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
