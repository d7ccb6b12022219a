package service

import (
	"context"
	"fmt"

	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/store"
	"github.com/dpramesti/hris-directory/models"
)

// directoryService is the concrete implementation of DirectoryService.
// It is a thin validation-and-logging layer over the employee repository;
// the information database is read-only to this application.
type directoryService struct {
	employeeRepository store.EmployeeRepository
	logger             *logger.Logger
}

// NewDirectoryService constructs a DirectoryService over the given
// employee repository.
func NewDirectoryService(employeeRepository store.EmployeeRepository, logger *logger.Logger) DirectoryService {
	return &directoryService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

// ListEmployees returns the full directory listing.
func (d *directoryService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	employees, err := d.employeeRepository.ListEmployees(ctx)
	if err != nil {
		log.Err(err).Msg("employee listing failed")
		return nil, fmt.Errorf("employee listing failed: %w", err)
	}

	return employees, nil
}

// EmployeeByNPK looks up a single employee by NPK.
//
// Returns ErrInvalidDataProvided for non-positive identifiers; a not-found
// lookup surfaces the repository's store.ErrEmployeeNotFound.
func (d *directoryService) EmployeeByNPK(ctx context.Context, npk int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if npk <= 0 {
		return models.Employee{}, ErrInvalidDataProvided
	}

	employee, err := d.employeeRepository.FindEmployeeByNPK(ctx, npk)
	if err != nil {
		log.Err(err).Int64("npk", npk).Msg("employee search by npk failed")
		return models.Employee{}, fmt.Errorf("employee search by npk failed: %w", err)
	}

	return employee, nil
}

// EmployeeByUsername looks up a single employee by directory account name.
func (d *directoryService) EmployeeByUsername(ctx context.Context, username string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.Employee{}, ErrInvalidDataProvided
	}

	employee, err := d.employeeRepository.FindEmployeeByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("employee search by username failed")
		return models.Employee{}, fmt.Errorf("employee search by username failed: %w", err)
	}

	return employee, nil
}
