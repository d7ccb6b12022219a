package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/dpramesti/hris-directory/models"
)

const (
	createUser = `INSERT INTO i_user (username, password)
    VALUES ($1, $2)
    RETURNING user_id, username, password, created_at;`

	findUserByUsername = `SELECT user_id, username, password, created_at
    FROM i_user
    WHERE username = $1;`

	listEmployees = `SELECT npk, name, email, jabatan, dir_name, div_name, dept_name
		FROM hris_trad;`

	findEmployeeByNPK = `SELECT npk, name, email, jabatan
		FROM hris_trad
		WHERE npk = $1;`

	findEmployeeByUsername = `SELECT npk, username, name, email, jabatan
		FROM hris_trad
		WHERE username = $1;`

	headRowsByDirectorate = `SELECT dir, dir_name, div, div_name, dept, dept_name, npk, name, email, jabatan
		FROM hris_trad
		WHERE dir = $1;`

	headRowsByDivision = `SELECT div, div_name, dept, dept_name, npk, name, email, jabatan
		FROM hris_trad
		WHERE div = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildStructureQuery assembles the dynamic SELECT DISTINCT for the generic
// level tree: the column prefix comes from the level table, and each
// non-empty filter field contributes an equality condition.
func buildStructureQuery(level models.StructureLevel, filter models.StructureFilter) (string, []any, error) {
	builder := psql.
		Select(level.Columns...).
		Distinct().
		From("hris_trad")

	if filter.DirName != "" {
		builder = builder.Where(sq.Eq{"dir": filter.DirName})
	}
	if filter.DivName != "" {
		builder = builder.Where(sq.Eq{"div_name": filter.DivName})
	}
	if filter.DeptName != "" {
		builder = builder.Where(sq.Eq{"dept_name": filter.DeptName})
	}

	return builder.ToSql()
}
