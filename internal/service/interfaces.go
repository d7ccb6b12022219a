package service

import (
	"context"

	"github.com/dpramesti/hris-directory/models"
)

// AuthService manages the credential and token lifecycle: registration,
// login verification, token issuance, and stateless token validation.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DirectoryService exposes employee lookups from the information database.
type DirectoryService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	EmployeeByNPK(ctx context.Context, npk int64) (models.Employee, error)
	EmployeeByUsername(ctx context.Context, username string) (models.Employee, error)
}

// StructureService reshapes flat hierarchy rows into nested organizational
// trees.
type StructureService interface {
	// LevelTree builds the generic level tree for the given level query
	// parameter. An unknown parameter fails with ErrUnknownLevel before any
	// database access.
	LevelTree(ctx context.Context, levelParam string, filter models.StructureFilter) ([]map[string]any, error)

	// DirectorateTree builds the directorate-scoped head-extraction tree.
	DirectorateTree(ctx context.Context, dirCode string) ([]models.Directorate, error)

	// DivisionTree builds the division-scoped head-extraction tree.
	DivisionTree(ctx context.Context, divCode string) ([]models.Division, error)
}
