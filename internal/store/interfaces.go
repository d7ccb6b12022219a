package store

import (
	"context"

	"github.com/dpramesti/hris-directory/models"
)

// UserRepository is the data-access contract for credential records in the
// authentication database.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// EmployeeRepository is the data-access contract for the read-only HRIS
// information database: employee lookups plus the flat org structure rows
// consumed by the aggregation service.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	FindEmployeeByNPK(ctx context.Context, npk int64) (models.Employee, error)
	FindEmployeeByUsername(ctx context.Context, username string) (models.Employee, error)

	StructureRows(ctx context.Context, level models.StructureLevel, filter models.StructureFilter) ([]models.StructureRow, error)
	HeadRowsByDirectorate(ctx context.Context, dirCode string) ([]models.HeadRow, error)
	HeadRowsByDivision(ctx context.Context, divCode string) ([]models.HeadRow, error)
}
