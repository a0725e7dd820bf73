package model

// Book là entity duy nhất của service, map 1-1 với một row trong bảng books.
// ISBN là primary key do client cung cấp và không đổi sau khi tạo.
type Book struct {
	ISBN      string `json:"isbn" db:"isbn"`
	AmazonURL string `json:"amazon_url" db:"amazon_url"`
	Author    string `json:"author" db:"author"`
	Language  string `json:"language" db:"language"`
	Pages     int    `json:"pages" db:"pages"`
	Publisher string `json:"publisher" db:"publisher"`
	Title     string `json:"title" db:"title"`
	Year      int    `json:"year" db:"year"`
}

// Payload là request body đã decode nhưng chưa kiểm tra kiểu.
// Validator chuyển Payload thành Book hoặc ValidationError.
type Payload map[string]interface{}

// Wire field names, dùng chung cho validator và error messages.
const (
	FieldISBN      = "isbn"
	FieldAmazonURL = "amazon_url"
	FieldAuthor    = "author"
	FieldLanguage  = "language"
	FieldPages     = "pages"
	FieldPublisher = "publisher"
	FieldTitle     = "title"
	FieldYear      = "year"
)

// ListBooksResponse - GET /books
type ListBooksResponse struct {
	Books []Book `json:"books"`
}

// BookResponse - GET/POST/PUT single book
type BookResponse struct {
	Book *Book `json:"book"`
}

// MessageResponse - DELETE /books/:isbn
type MessageResponse struct {
	Message string `json:"message"`
}
