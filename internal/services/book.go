package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/msokolov/bookshelf/internal/logger"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrBookNotFound = errors.New("book not found")
	ErrNotOwner     = errors.New("not authorized to modify this book")
	ErrInvalidGenre = errors.New("invalid genre id")
	ErrInvalidSort  = errors.New("invalid sort column or direction")
)

// DefaultPageSize is used when a listing request does not specify a limit.
const DefaultPageSize = 10

// BookReader defines read operations for books.
type BookReader interface {
	List(ctx context.Context, f models.BookFilter) ([]models.BookDB, int64, error)
	GetByID(ctx context.Context, id int64) (*models.BookDB, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Save(ctx context.Context, userID int64, in models.BookInput) (int64, error)
	Update(ctx context.Context, id int64, in models.BookInput) error
	Delete(ctx context.Context, id int64) error
}

// GenreChecker resolves genre references at write time.
type GenreChecker interface {
	GetByID(ctx context.Context, id int64) (*models.GenreDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BookService handles the book catalog and publishes change events.
type BookService struct {
	reader      BookReader
	writer      BookWriter
	genres      GenreChecker
	kafkaWriter KafkaWriter
}

// NewBookService creates a new BookService. kafkaWriter may be nil, in which
// case change events are not published.
func NewBookService(reader BookReader, writer BookWriter, genres GenreChecker, kafkaWriter KafkaWriter) *BookService {
	return &BookService{
		reader:      reader,
		writer:      writer,
		genres:      genres,
		kafkaWriter: kafkaWriter,
	}
}

// List validates and defaults the filter, then returns one page of books plus
// the total matching row count.
func (s *BookService) List(ctx context.Context, f models.BookFilter) ([]models.BookDB, int64, error) {
	if f.SortBy == "" {
		f.SortBy = "title"
	} else if !repositories.ValidSortColumn(f.SortBy) {
		return nil, 0, ErrInvalidSort
	}
	if f.SortOrder == "" {
		f.SortOrder = "asc"
	} else if !repositories.ValidSortOrder(f.SortOrder) {
		return nil, 0, ErrInvalidSort
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}

	return s.reader.List(ctx, f)
}

// Get returns a single book joined with its genre name and owner handle.
func (s *BookService) Get(ctx context.Context, id int64) (*models.BookDB, error) {
	book, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// Create inserts a book owned by userID after resolving its genre.
func (s *BookService) Create(ctx context.Context, userID int64, in models.BookInput) (*models.BookDB, error) {
	genre, err := s.genres.GetByID(ctx, in.GenreID)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, ErrInvalidGenre
	}

	id, err := s.writer.Save(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	book, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "created", id, userID)
	return book, nil
}

// Update replaces a book's fields. Only the owner may update; the stored
// cover is kept when the input carries none.
func (s *BookService) Update(ctx context.Context, userID, id int64, in models.BookInput) (*models.BookDB, error) {
	book, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if book.UserID != userID {
		return nil, ErrNotOwner
	}

	genre, err := s.genres.GetByID(ctx, in.GenreID)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, ErrInvalidGenre
	}

	if err := s.writer.Update(ctx, id, in); err != nil {
		return nil, err
	}

	updated, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "updated", id, userID)
	return updated, nil
}

// Delete removes a book. Only the owner may delete.
func (s *BookService) Delete(ctx context.Context, userID, id int64) error {
	book, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}
	if book.UserID != userID {
		return ErrNotOwner
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, "deleted", id, userID)
	return nil
}

// publishEvent publishes a book change event to Kafka, best-effort.
func (s *BookService) publishEvent(ctx context.Context, operation string, bookID, userID int64) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.BookEvent{
		EventID:   uuid.NewString(),
		Operation: operation,
		BookID:    bookID,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal book event", "event_id", event.EventID, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(bookID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish book event", "event_id", event.EventID, "operation", operation, "err", err)
	}
}
