package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/application"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var applicationRowColumns = []string{"id", "full_name", "email", "phone", "address", "position", "department",
	"experience", "education", "skills", "cover_letter", "expected_salary", "status", "applied_date",
	"reviewed_by", "review_date", "notes", "created_at", "updated_at",
	"reviewer_id", "reviewer_username", "reviewer_email"}

func applicationRow(rows *pgxmock.Rows, id, status string, now time.Time) *pgxmock.Rows {
	return rows.AddRow(id, "Jane Candidate", "jane@example.com", "+1-555-0199", "12 Elm St", "Frontend Developer",
		"Engineering", "3 years React", "BSc Computer Science", "React, TypeScript", "Hello", "80000", status, now,
		nil, nil, "", now, now, nil, nil, nil)
}

func TestApplicationRepository_List(t *testing.T) {
	mock, db := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewApplicationRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM applications a WHERE a.status = $1 AND (a.full_name ILIKE $2 OR a.email ILIKE $2 OR a.position ILIKE $2)`)).
		WithArgs("pending", `%100\%%`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN users u ON u.id = a.reviewed_by WHERE a.status = $1`)).
		WithArgs("pending", `%100\%%`, 10, 0).
		WillReturnRows(applicationRow(pgxmock.NewRows(applicationRowColumns), "app-1", "pending", now))

	apps, total, err := repo.List(context.Background(), application.ApplicationFilter{
		Pagination: query.NewPagination(1, 10),
		Status:     "pending",
		Search:     "100%",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, apps, 1)
	assert.Equal(t, application.StatusPending, apps[0].Status)
	assert.Equal(t, department.Engineering, apps[0].Department)
	assert.Nil(t, apps[0].Reviewer)
	assert.Nil(t, apps[0].ReviewedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_List_Ordering(t *testing.T) {
	mock, db := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewApplicationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM applications a`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY a.applied_date DESC, a.seq ASC LIMIT $1 OFFSET $2`)).
		WithArgs(100, 100).
		WillReturnRows(pgxmock.NewRows(applicationRowColumns))

	apps, _, err := repo.List(context.Background(), application.ApplicationFilter{
		Pagination: query.NewPagination(2, 500),
	})

	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_GetByID_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.id = $1`)).
		WithArgs("not-a-uuid").
		WillReturnError(&pgconn.PgError{Code: database.InvalidTextCode})

	_, err := repo.GetByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Create(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewApplicationRepository(db)

	now := time.Now().UTC()
	args := make([]interface{}, 14)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	args[11] = "pending"
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO applications`)).
		WithArgs(args...).
		WillReturnRows(applicationRow(pgxmock.NewRows(applicationRowColumns), "app-1", "pending", now))

	created, err := repo.Create(context.Background(), application.Application{
		FullName:    "Jane Candidate",
		Email:       "jane@example.com",
		Department:  department.Engineering,
		Status:      application.StatusPending,
		AppliedDate: now,
	})

	require.NoError(t, err)
	assert.Equal(t, "app-1", created.ID)
	require.True(t, created.ExpectedSalary.Valid)
	assert.Equal(t, "80000", created.ExpectedSalary.Decimal.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Create_CheckViolation(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewApplicationRepository(db)

	args := make([]interface{}, 14)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO applications`)).
		WithArgs(args...).
		WillReturnError(&pgconn.PgError{Code: database.CheckViolationCode, ConstraintName: "applications_department_check"})

	_, err := repo.Create(context.Background(), application.Application{Department: "Legal"})

	var ce *database.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"department is invalid"}, ce.Messages)
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewApplicationRepository(db)

	now := time.Now().UTC()
	notes := "Strong portfolio"
	mock.ExpectQuery(regexp.QuoteMeta(`notes = COALESCE($2::text, notes), reviewed_by = $3, review_date = $4`)).
		WithArgs("reviewing", &notes, "user-1", now, "app-1").
		WillReturnRows(applicationRow(pgxmock.NewRows(applicationRowColumns), "app-1", "reviewing", now))

	updated, err := repo.UpdateStatus(context.Background(), "app-1", application.Review{
		Status:     application.StatusReviewing,
		Notes:      &notes,
		ReviewedBy: "user-1",
		ReviewDate: now,
	})

	require.NoError(t, err)
	assert.Equal(t, application.StatusReviewing, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_UpdateStatus_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE applications`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), "missing", application.Review{Status: application.StatusRejected})

	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanApplication_Reviewer(t *testing.T) {
	reviewerID := "user-1"
	username := "hr_manager"
	email := "hr@company.com"
	reviewed := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	app, err := scanApplication(stubRow{scanFn: func(dest ...interface{}) error {
		require.Len(t, dest, 22)
		*(dest[12].(*string)) = "accepted"
		*(dest[14].(**string)) = &reviewerID
		*(dest[15].(**time.Time)) = &reviewed
		*(dest[19].(**string)) = &reviewerID
		*(dest[20].(**string)) = &username
		*(dest[21].(**string)) = &email
		return nil
	}})

	require.NoError(t, err)
	assert.Equal(t, application.StatusAccepted, app.Status)
	require.NotNil(t, app.Reviewer)
	assert.Equal(t, "user-1", app.Reviewer.ID)
	assert.Equal(t, "hr_manager", app.Reviewer.Username)
	assert.Equal(t, "hr@company.com", app.Reviewer.Email)
	require.NotNil(t, app.ReviewDate)
	assert.True(t, app.ReviewDate.Equal(reviewed))
}
