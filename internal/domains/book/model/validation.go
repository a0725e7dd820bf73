package model

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// RULES
// ========================================

var (
	errMustBeString   = validation.NewError("validation_is_string", "must be a string")
	errMustBeInteger  = validation.NewError("validation_is_integer", "must be an integer")
	errMustBePositive = validation.NewError("validation_is_positive", "must be a positive integer")
	errISBNMismatch   = validation.NewError("validation_isbn_mismatch", "must match the isbn in the path")
)

var (
	required = validation.NotNil.Error("is required")
	notBlank = validation.Required.Error("must not be blank")

	isString = validation.By(func(value interface{}) error {
		if _, ok := value.(string); !ok {
			return errMustBeString
		}
		return nil
	})

	isInteger = validation.By(func(value interface{}) error {
		if _, ok := toInt(value); !ok {
			return errMustBeInteger
		}
		return nil
	})

	isPositive = validation.By(func(value interface{}) error {
		if n, ok := toInt(value); ok && n <= 0 {
			return errMustBePositive
		}
		return nil
	})
)

// bookSchema: 8 keys bắt buộc, không chấp nhận key lạ.
// isbnRules bổ sung rule cho isbn (update path).
func bookSchema(isbnRules ...validation.Rule) validation.MapRule {
	isbn := append([]validation.Rule{required, isString, notBlank}, isbnRules...)

	return validation.Map(
		validation.Key(FieldISBN, isbn...),
		validation.Key(FieldAmazonURL, required, isString, notBlank),
		validation.Key(FieldAuthor, required, isString, notBlank),
		validation.Key(FieldLanguage, required, isString, notBlank),
		validation.Key(FieldPages, required, isInteger, isPositive),
		validation.Key(FieldPublisher, required, isString, notBlank),
		validation.Key(FieldTitle, required, isString, notBlank),
		validation.Key(FieldYear, required, isInteger),
	)
}

// ========================================
// ENTRY POINTS
// ========================================

// ValidateCreate kiểm tra payload của POST /books.
// Trả về Book đã typed hoặc *ValidationError.
func ValidateCreate(p Payload) (Book, error) {
	if p == nil {
		return Book{}, NewValidationError("request body must be a JSON object")
	}

	if err := validation.Validate(map[string]interface{}(p), bookSchema()); err != nil {
		return Book{}, toValidationError(err)
	}

	return p.toBook(), nil
}

// ValidateUpdate kiểm tra payload của PUT /books/:isbn.
// Update là whole-record replacement nên yêu cầu full shape như create;
// isbn trong body phải trùng với isbn trên path.
func ValidateUpdate(isbn string, p Payload) (Book, error) {
	if p == nil {
		return Book{}, NewValidationError("request body must be a JSON object")
	}

	if err := validation.Validate(map[string]interface{}(p), bookSchema(matches(isbn))); err != nil {
		return Book{}, toValidationError(err)
	}

	book := p.toBook()
	book.ISBN = isbn
	return book, nil
}

func matches(isbn string) validation.Rule {
	return validation.By(func(value interface{}) error {
		if s, _ := value.(string); s != isbn {
			return errISBNMismatch
		}
		return nil
	})
}

// ========================================
// HELPERS
// ========================================

// toValidationError flatten validation.Errors thành list message đã sort,
// dạng "<field> <message>".
func toValidationError(err error) error {
	errs, ok := err.(validation.Errors)
	if !ok {
		return NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(errs))
	for field, fieldErr := range errs {
		messages = append(messages, fmt.Sprintf("%s %s", field, describe(fieldErr)))
	}
	sort.Strings(messages)

	return NewValidationError(messages...)
}

func describe(err error) string {
	if vErr, ok := err.(validation.Error); ok {
		switch vErr.Code() {
		case validation.ErrKeyMissing.Code():
			return "is required"
		case validation.ErrKeyUnexpected.Code():
			return "is not allowed"
		}
	}
	return err.Error()
}

// toInt chấp nhận số JSON không có phần thập phân
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) {
			return 0, false
		}
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int(v), true
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return 0, false
		}
		n, err := v.Int64()
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// toBook chỉ gọi sau khi payload đã pass bookSchema
func (p Payload) toBook() Book {
	str := func(key string) string {
		s, _ := p[key].(string)
		return s
	}
	num := func(key string) int {
		n, _ := toInt(p[key])
		return n
	}

	return Book{
		ISBN:      str(FieldISBN),
		AmazonURL: str(FieldAmazonURL),
		Author:    str(FieldAuthor),
		Language:  str(FieldLanguage),
		Pages:     num(FieldPages),
		Publisher: str(FieldPublisher),
		Title:     str(FieldTitle),
		Year:      num(FieldYear),
	}
}
