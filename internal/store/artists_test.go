package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateArtist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO artists (id, name, grammy, hidden)
		VALUES ($1, $2, $3, $4)
	`)).
		WithArgs(sqlmock.AnyArg(), "Nina Simone", 4, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := s.CreateArtist(context.Background(), "Nina Simone", 4, false)
	if err != nil {
		t.Fatalf("CreateArtist error: %v", err)
	}
	if !IsID(id) {
		t.Fatalf("expected generated id, got %q", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestArtistByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, grammy, hidden
		FROM artists
		WHERE id = $1
	`)).
		WithArgs("507f1f77bcf86cd799439011").
		WillReturnError(sql.ErrNoRows)

	_, err = s.ArtistByID(context.Background(), "507f1f77bcf86cd799439011")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestArtistsWithFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM artists WHERE grammy = $1 AND hidden = $2 LIMIT $3 OFFSET $4`)).
		WithArgs(2, false, 5, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "grammy", "hidden"}).
			AddRow("507f1f77bcf86cd799439011", "Nina Simone", 2, false))

	grammy := 2
	hidden := false
	artists, err := s.Artists(context.Background(), ArtistFilter{Grammy: &grammy, Hidden: &hidden}, 5, 0)
	if err != nil {
		t.Fatalf("Artists error: %v", err)
	}
	if len(artists) != 1 || artists[0].Name != "Nina Simone" {
		t.Fatalf("unexpected artists: %#v", artists)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestArtistsNoFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM artists LIMIT $1 OFFSET $2`)).
		WithArgs(3, 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "grammy", "hidden"}))

	artists, err := s.Artists(context.Background(), ArtistFilter{}, 3, 6)
	if err != nil {
		t.Fatalf("Artists error: %v", err)
	}
	if len(artists) != 0 {
		t.Fatalf("expected no artists, got %#v", artists)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateArtistPartial(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE artists SET name = $2, updated_at = NOW() WHERE id = $1`)).
		WithArgs("507f1f77bcf86cd799439011", "Dr. Nina Simone").
		WillReturnResult(sqlmock.NewResult(0, 1))

	name := "Dr. Nina Simone"
	if err := s.UpdateArtist(context.Background(), "507f1f77bcf86cd799439011", ArtistUpdate{Name: &name}); err != nil {
		t.Fatalf("UpdateArtist error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateArtistNoFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	// No SET clause means no statement at all.
	if err := s.UpdateArtist(context.Background(), "507f1f77bcf86cd799439011", ArtistUpdate{}); err != nil {
		t.Fatalf("UpdateArtist error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteArtist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM artists
		WHERE id = $1
	`)).
		WithArgs("507f1f77bcf86cd799439011").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.DeleteArtist(context.Background(), "507f1f77bcf86cd799439011"); err != nil {
		t.Fatalf("DeleteArtist error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
