package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/models"
)

// employeeRepository is the PostgreSQL-backed implementation of
// [EmployeeRepository] over the read-only HRIS information database.
//
// Every query runs against the flat "hris_trad" table; the nested tree shapes
// are produced later by the structure service, never in SQL.
type employeeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

// ListEmployees returns every employee row with its org unit names attached.
func (r *employeeRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listEmployees)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.ListEmployees").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.NPK, &e.Name, &e.Email, &e.Role, &e.Directorate, &e.Division, &e.Department); err != nil {
			log.Err(err).Str("func", "*employeeRepository.ListEmployees").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return employees, nil
}

// FindEmployeeByNPK retrieves a single employee row by its NPK identifier.
//
// Returns [ErrEmployeeNotFound] when no row matches.
func (r *employeeRepository) FindEmployeeByNPK(ctx context.Context, npk int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	var e models.Employee
	row := r.db.QueryRowContext(ctx, findEmployeeByNPK, npk)
	if err := row.Scan(&e.NPK, &e.Name, &e.Email, &e.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeeRepository.FindEmployeeByNPK").Msg("error: scanning error")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return e, nil
}

// FindEmployeeByUsername retrieves a single employee row by directory
// account name.
//
// Returns [ErrEmployeeNotFound] when no row matches.
func (r *employeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	var e models.Employee
	row := r.db.QueryRowContext(ctx, findEmployeeByUsername, username)
	if err := row.Scan(&e.NPK, &e.Username, &e.Name, &e.Email, &e.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeeRepository.FindEmployeeByUsername").Msg("error: scanning error")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return e, nil
}

// StructureRows selects the distinct flat rows feeding the generic level
// tree. The selected column prefix and the scan destinations both follow the
// level's depth; Location is always the final column.
func (r *employeeRepository) StructureRows(ctx context.Context, level models.StructureLevel, filter models.StructureFilter) ([]models.StructureRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStructureQuery(level, filter)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.StructureRows").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.StructureRows").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	structureRows := make([]models.StructureRow, 0)
	for rows.Next() {
		var sr models.StructureRow

		dest := []any{&sr.DirCode, &sr.DirName}
		if level.Depth >= 2 {
			dest = append(dest, &sr.DivCode, &sr.DivName)
		}
		if level.Depth >= 3 {
			dest = append(dest, &sr.DeptCode, &sr.DeptName)
		}
		if level.Depth >= 4 {
			dest = append(dest, &sr.Section)
		}
		if level.Depth >= 5 {
			dest = append(dest, &sr.Subsection)
		}
		dest = append(dest, &sr.Location)

		if err := rows.Scan(dest...); err != nil {
			log.Err(err).Str("func", "*employeeRepository.StructureRows").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		structureRows = append(structureRows, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return structureRows, nil
}

// HeadRowsByDirectorate selects every person row of one directorate for the
// directorate-scoped head-extraction tree.
func (r *employeeRepository) HeadRowsByDirectorate(ctx context.Context, dirCode string) ([]models.HeadRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, headRowsByDirectorate, dirCode)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.HeadRowsByDirectorate").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	headRows := make([]models.HeadRow, 0)
	for rows.Next() {
		var hr models.HeadRow
		if err := rows.Scan(&hr.DirCode, &hr.DirName, &hr.DivCode, &hr.DivName, &hr.DeptCode, &hr.DeptName, &hr.NPK, &hr.Name, &hr.Email, &hr.Role); err != nil {
			log.Err(err).Str("func", "*employeeRepository.HeadRowsByDirectorate").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		headRows = append(headRows, hr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return headRows, nil
}

// HeadRowsByDivision selects every person row of one division for the
// division-scoped head-extraction tree. Directorate columns are not selected;
// the resulting rows carry empty directorate fields.
func (r *employeeRepository) HeadRowsByDivision(ctx context.Context, divCode string) ([]models.HeadRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, headRowsByDivision, divCode)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.HeadRowsByDivision").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	headRows := make([]models.HeadRow, 0)
	for rows.Next() {
		var hr models.HeadRow
		if err := rows.Scan(&hr.DivCode, &hr.DivName, &hr.DeptCode, &hr.DeptName, &hr.NPK, &hr.Name, &hr.Email, &hr.Role); err != nil {
			log.Err(err).Str("func", "*employeeRepository.HeadRowsByDivision").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		headRows = append(headRows, hr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return headRows, nil
}
