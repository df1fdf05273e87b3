package queries

//go:generate mockgen -source=companies.go -destination=../../../tests/mock/queries/companies.go -package=queriesmock

import (
	"context"
	"slices"
	"strings"

	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase/readmodel"
	"waste-dashboard/internal/usecase/shared"
)

type CompanyQueries interface {
	ListCompanies(ctx context.Context) ([]readmodel.CompanyRM, error)
}

type companyQueriesImpl struct {
	directory shared.CompanyDirectory
}

func NewCompanyQueries(directory shared.CompanyDirectory) CompanyQueries {
	return &companyQueriesImpl{directory: directory}
}

func (q *companyQueriesImpl) ListCompanies(ctx context.Context) ([]readmodel.CompanyRM, error) {
	companies, err := q.directory.ListCompanies(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamUnavailable)
	}
	slices.SortStableFunc(companies, func(a, b readmodel.CompanyRM) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return companies, nil
}
