package master

import (
	"context"

	"github.com/sahelretail/hr-backend-go/internal/domain/branch"
	"github.com/sahelretail/hr-backend-go/internal/domain/employee"
)

// MasterService serves the master data the report screens filter on.
type MasterService interface {
	ListBranches(ctx context.Context) ([]branch.BranchResponse, error)
	ListEmployees(ctx context.Context, branchID *int64) ([]employee.EmployeeResponse, error)
}

type masterServiceImpl struct {
	branchRepo   branch.BranchRepository
	employeeRepo employee.EmployeeRepository
}

func NewMasterService(branchRepo branch.BranchRepository, employeeRepo employee.EmployeeRepository) MasterService {
	return &masterServiceImpl{
		branchRepo:   branchRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *masterServiceImpl) ListBranches(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		result = append(result, branch.NewBranchResponse(b))
	}

	return result, nil
}

func (s *masterServiceImpl) ListEmployees(ctx context.Context, branchID *int64) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx, branchID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.NewEmployeeResponse(e))
	}

	return result, nil
}
