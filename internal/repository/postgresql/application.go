package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/application"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/query"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// applicationColumns are qualified with "a" and followed by the reviewer
// columns of the LEFT JOIN on users "u".
const applicationColumns = `a.id, a.full_name, a.email, a.phone, a.address, a.position, a.department,
	a.experience, a.education, a.skills, a.cover_letter, a.expected_salary, a.status, a.applied_date,
	a.reviewed_by, a.review_date, a.notes, a.created_at, a.updated_at,
	u.id, u.username, u.email`

var applicationConstraintFields = map[string]string{
	"applications_department_check":      "department",
	"applications_status_check":          "status",
	"applications_expected_salary_check": "expectedSalary",
}

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var (
		app                                         application.Application
		dept, status                                string
		reviewerID, reviewerUsername, reviewerEmail *string
	)
	err := row.Scan(
		&app.ID, &app.FullName, &app.Email, &app.Phone, &app.Address, &app.Position, &dept,
		&app.Experience, &app.Education, &app.Skills, &app.CoverLetter, &app.ExpectedSalary, &status,
		&app.AppliedDate, &app.ReviewedBy, &app.ReviewDate, &app.Notes, &app.CreatedAt, &app.UpdatedAt,
		&reviewerID, &reviewerUsername, &reviewerEmail,
	)
	if err != nil {
		return application.Application{}, err
	}
	app.Department = department.Department(dept)
	app.Status = application.Status(status)

	if reviewerID != nil {
		app.Reviewer = &user.Summary{ID: *reviewerID}
		if reviewerUsername != nil {
			app.Reviewer.Username = *reviewerUsername
		}
		if reviewerEmail != nil {
			app.Reviewer.Email = *reviewerEmail
		}
	}
	return app, nil
}

// List implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) List(ctx context.Context, filter application.ApplicationFilter) ([]application.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	builder := query.NewBuilder().
		Eq("a.status", filter.Status).
		Eq("a.department", filter.Department).
		Search(filter.Search, "a.full_name", "a.email", "a.position")
	where := builder.Where()
	page, pageArgs := builder.Page(filter.Pagination)

	var (
		applications []application.Application
		total        int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		countQuery := `SELECT COUNT(*) FROM applications a ` + where
		if err := q.QueryRow(gCtx, countQuery, builder.Args()...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count applications: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		listQuery := fmt.Sprintf(`SELECT %s FROM applications a LEFT JOIN users u ON u.id = a.reviewed_by %s %s %s`,
			applicationColumns, where, query.OrderBy(query.Desc("a.applied_date"), query.Asc("a.seq")), page)

		rows, err := q.Query(gCtx, listQuery, pageArgs...)
		if err != nil {
			return fmt.Errorf("failed to list applications: %w", err)
		}
		defer rows.Close()

		result := make([]application.Application, 0, filter.Pagination.Limit)
		for rows.Next() {
			app, err := scanApplication(rows)
			if err != nil {
				return fmt.Errorf("failed to scan application: %w", err)
			}
			result = append(result, app)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate applications: %w", err)
		}
		applications = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

// GetByID implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + `
		FROM applications a
		LEFT JOIN users u ON u.id = a.reviewed_by
		WHERE a.id = $1`

	app, err := scanApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if isNotFound(err) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, fmt.Errorf("failed to get application by id: %w", err)
	}
	return app, nil
}

// Create implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, newApplication application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH a AS (
			INSERT INTO applications (full_name, email, phone, address, position, department, experience,
				education, skills, cover_letter, expected_salary, status, applied_date, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING *
		)
		SELECT ` + applicationColumns + `
		FROM a
		LEFT JOIN users u ON u.id = a.reviewed_by`

	created, err := scanApplication(q.QueryRow(ctx, query,
		newApplication.FullName,
		newApplication.Email,
		newApplication.Phone,
		newApplication.Address,
		newApplication.Position,
		string(newApplication.Department),
		newApplication.Experience,
		newApplication.Education,
		newApplication.Skills,
		newApplication.CoverLetter,
		newApplication.ExpectedSalary,
		string(newApplication.Status),
		newApplication.AppliedDate,
		newApplication.Notes,
	))
	if err != nil {
		return application.Application{}, database.TranslateError(err, applicationConstraintFields)
	}
	return created, nil
}

// UpdateStatus implements application.ApplicationRepository. Notes are kept
// when review.Notes is nil.
func (r *applicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, review application.Review) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH a AS (
			UPDATE applications
			SET status = $1, notes = COALESCE($2::text, notes), reviewed_by = $3, review_date = $4,
				updated_at = NOW()
			WHERE id = $5
			RETURNING *
		)
		SELECT ` + applicationColumns + `
		FROM a
		LEFT JOIN users u ON u.id = a.reviewed_by`

	updated, err := scanApplication(q.QueryRow(ctx, query,
		string(review.Status),
		review.Notes,
		review.ReviewedBy,
		review.ReviewDate,
		id,
	))
	if err != nil {
		if isNotFound(err) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, database.TranslateError(err, applicationConstraintFields)
	}
	return updated, nil
}
