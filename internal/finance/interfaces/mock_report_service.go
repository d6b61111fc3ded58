package interfaces

import (
	"context"

	"github.com/finflowhq/finflow/internal/finance/application"
	"github.com/finflowhq/finflow/internal/finance/domain"
)

type MockReportService struct {
	Report       *application.MonthlyReport
	Transactions []domain.Transaction
	Err          error
}

func (m *MockReportService) GenerateMonthlyReport(ctx context.Context, userID string, month, year int) (*application.MonthlyReport, []domain.Transaction, error) {
	if m.Err != nil {
		return nil, nil, m.Err
	}
	return m.Report, m.Transactions, nil
}
