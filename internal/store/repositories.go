package store

import (
	"github.com/dpramesti/hris-directory/internal/logger"
)

// Repositories bundles the data-access layers of both databases for
// injection into the service layer.
type Repositories struct {
	Users     UserRepository
	Employees EmployeeRepository
}

// NewRepositories constructs the repository set over the two established
// database pools.
func NewRepositories(authDB, infoDB *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(authDB, logger),
		Employees: NewEmployeeRepository(infoDB, logger),
	}
}
