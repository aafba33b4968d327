package users

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"soundcrate/internal/app"
	"soundcrate/internal/auth"
	"soundcrate/internal/store"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	tokens, err := auth.NewManager("0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("auth.NewManager: %v", err)
	}
	return New(store.New(db), tokens, bcrypt.MinCost), mock, func() { db.Close() }
}

func requireStatus(t *testing.T, err error, status int, message string) {
	t.Helper()

	apiErr, ok := app.AsError(err)
	if !ok {
		t.Fatalf("expected *app.Error, got %v", err)
	}
	if apiErr.Status != status || apiErr.Message != message {
		t.Fatalf("expected %d %q, got %d %q", status, message, apiErr.Status, apiErr.Message)
	}
}

func TestSignupFirstAccountBecomesAdmin(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs("admin@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(sqlmock.AnyArg(), "admin@example.com", sqlmock.AnyArg(), "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Signup(context.Background(), "admin@example.com", "hunter2"); err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSignupRejectedOnceAnyAccountExists(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs("second@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.Signup(context.Background(), "second@example.com", "hunter2")
	requireStatus(t, err, 409, "Admin already exists.")

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role"}).
			AddRow("507f1f77bcf86cd799439011", "admin@example.com", "hash", "admin"))

	err := svc.Signup(context.Background(), "admin@example.com", "hunter2")
	requireStatus(t, err, 409, "Email already exists.")
}

func TestSignupMissingFields(t *testing.T) {
	svc, _, done := newTestService(t)
	defer done()

	err := svc.Signup(context.Background(), "", "hunter2")
	requireStatus(t, err, 400, "Bad Request, Reason:Email")

	err = svc.Signup(context.Background(), "admin@example.com", "")
	requireStatus(t, err, 400, "Bad Request, Reason:Password")
}

func TestLogin(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	hash, err := auth.HashPassword("hunter2", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs("viewer@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role"}).
			AddRow("507f1f77bcf86cd799439011", "viewer@example.com", hash, "viewer"))

	token, err := svc.Login(context.Background(), "viewer@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Login(context.Background(), "ghost@example.com", "hunter2")
	requireStatus(t, err, 404, "User not found")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	hash, err := auth.HashPassword("hunter2", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs("viewer@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role"}).
			AddRow("507f1f77bcf86cd799439011", "viewer@example.com", hash, "viewer"))

	_, err = svc.Login(context.Background(), "viewer@example.com", "wrong")
	requireStatus(t, err, 401, "Incorrect Password")
}

func TestAddRejectsAdminRole(t *testing.T) {
	svc, _, done := newTestService(t)
	defer done()

	err := svc.Add(context.Background(), "new@example.com", "hunter2", auth.RoleAdmin)
	requireStatus(t, err, 400, app.MsgBadRequest)

	err = svc.Add(context.Background(), "new@example.com", "hunter2", auth.Role("superuser"))
	requireStatus(t, err, 400, app.MsgBadRequest)
}

func TestDeleteRefusesAdmin(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs("507f1f77bcf86cd799439011").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role"}).
			AddRow("507f1f77bcf86cd799439011", "admin@example.com", "hash", "admin"))

	err := svc.Delete(context.Background(), "507f1f77bcf86cd799439011")
	requireStatus(t, err, 403, app.MsgForbidden)
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	svc, _, done := newTestService(t)
	defer done()

	err := svc.Delete(context.Background(), "not-an-id")
	requireStatus(t, err, 400, app.MsgBadRequest)
}

func TestListRoleFilter(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	// "Editor" narrows to editors; any other non-empty value means viewers.
	mock.ExpectQuery(regexp.QuoteMeta(`AND role = $1`)).
		WithArgs("editor", 5, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}))

	if _, err := svc.List(context.Background(), "Editor", app.Page{Limit: 5}); err != nil {
		t.Fatalf("List error: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`AND role = $1`)).
		WithArgs("viewer", 5, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}))

	if _, err := svc.List(context.Background(), "anything", app.Page{Limit: 5}); err != nil {
		t.Fatalf("List error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	hash, err := auth.HashPassword("current", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs("507f1f77bcf86cd799439011").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role"}).
			AddRow("507f1f77bcf86cd799439011", "editor@example.com", hash, "editor"))

	err = svc.UpdatePassword(context.Background(), "507f1f77bcf86cd799439011", "wrong", "next")
	requireStatus(t, err, 401, app.MsgUnauthorized)
}
