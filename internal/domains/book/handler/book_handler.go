package handler

import (
	"net/http"

	"bookstore-api/internal/domains/book/model"
	service "bookstore-api/internal/domains/book/service"
	"bookstore-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Handler - HTTP Handler (single file)
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  Trả về toàn bộ books, sort theo title
// @Tags         books
// @Produce      json
// @Success      200  {object}  model.ListBooksResponse
// @Failure      500  {object}  response.Response
// @Router       /books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.ListBooksResponse{Books: books})
}

// GetBook godoc
// @Summary      Get book by ISBN
// @Tags         books
// @Produce      json
// @Param        isbn  path      string  true  "Book ISBN"
// @Success      200   {object}  model.BookResponse
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /books/{isbn} [get]
func (h *Handler) GetBook(c *gin.Context) {
	book, err := h.service.GetBook(c.Request.Context(), c.Param("isbn"))
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.BookResponse{Book: book})
}

// CreateBook godoc
// @Summary      Create book
// @Description  Body phải có đủ 8 field, không chấp nhận field lạ
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        book  body      model.Book  true  "Book"
// @Success      201   {object}  model.BookResponse
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /books [post]
func (h *Handler) CreateBook(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), payload)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusCreated, model.BookResponse{Book: book})
}

// UpdateBook godoc
// @Summary      Replace book
// @Description  Whole-record replacement; isbn trong body phải trùng path
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        isbn  path      string      true  "Book ISBN"
// @Param        book  body      model.Book  true  "Book"
// @Success      200   {object}  model.BookResponse
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /books/{isbn} [put]
func (h *Handler) UpdateBook(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), c.Param("isbn"), payload)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.BookResponse{Book: book})
}

// DeleteBook godoc
// @Summary      Delete book
// @Tags         books
// @Produce      json
// @Param        isbn  path      string  true  "Book ISBN"
// @Success      200   {object}  model.MessageResponse
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /books/{isbn} [delete]
func (h *Handler) DeleteBook(c *gin.Context) {
	if model.HandleBookError(c, h.service.DeleteBook(c.Request.Context(), c.Param("isbn"))) {
		return
	}

	response.Message(c, http.StatusOK, "Book deleted")
}

// bindPayload decode body thành model.Payload, chưa kiểm tra kiểu.
// Body không phải JSON object => 400 ngay tại handler.
func bindPayload(c *gin.Context) (model.Payload, bool) {
	var payload model.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Invalid book request body")
		response.ValidationFailed(c, []string{"request body must be a JSON object"})
		return nil, false
	}
	return payload, true
}
