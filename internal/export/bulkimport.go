package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

// ImportedAccount is one row of the bulk-import template.
type ImportedAccount struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Outstanding  decimal.Decimal  `json:"outstanding"`
	MinPayment   decimal.Decimal  `json:"minPayment"`
	InterestRate float64          `json:"interestRate"`
	DueDate      string           `json:"dueDate"`
	CreditLimit  *decimal.Decimal `json:"creditLimit,omitempty"`
}

// BulkImport is the bulk-import JSON template.
type BulkImport struct {
	Accounts []ImportedAccount `json:"accounts"`
}

// ParseBulkImport validates a bulk-import template and converts it to
// accounts with freshly assigned IDs. A single invalid row rejects the
// whole file; no partial imports.
func ParseBulkImport(data []byte) ([]models.Account, error) {
	var imp BulkImport
	if err := json.Unmarshal(data, &imp); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(imp.Accounts) == 0 {
		return nil, models.Invalid("accounts", "import file has no accounts")
	}

	accounts := make([]models.Account, 0, len(imp.Accounts))
	for i, row := range imp.Accounts {
		if row.Name == "" {
			return nil, models.Invalid("name", fmt.Sprintf("account %d has no name", i+1))
		}
		kind := models.AccountKind(row.Type)
		if !kind.Valid() {
			return nil, models.Invalid("type", fmt.Sprintf("account %q has unknown type %q", row.Name, row.Type))
		}
		if row.Outstanding.IsNegative() {
			return nil, models.Invalid("outstanding", fmt.Sprintf("account %q has negative outstanding", row.Name))
		}
		due, err := time.Parse(dateLayout, row.DueDate)
		if err != nil {
			return nil, models.Invalid("dueDate", fmt.Sprintf("account %q: want YYYY-MM-DD, got %q", row.Name, row.DueDate))
		}
		accounts = append(accounts, models.Account{
			ID:                        uuid.NewString(),
			Name:                      row.Name,
			Kind:                      kind,
			Outstanding:               row.Outstanding,
			MinPayment:                row.MinPayment,
			InterestRateAnnualPercent: row.InterestRate,
			DueDate:                   due,
			CreditLimit:               row.CreditLimit,
		})
	}
	return accounts, nil
}
