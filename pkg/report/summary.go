package report

import (
	"sort"
	"time"

	"tron-wallet-monitor/pkg/types"
)

// Summarize folds a run's wallet reports into totals and per-company
// subtotals. Failed balance fetches are excluded from sums, never treated as
// zero. Reports are emitted sorted by company, then wallet id.
func Summarize(reports []types.WalletReport, loc *time.Location) *types.RunSummary {
	sorted := make([]types.WalletReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Company != sorted[j].Company {
			return sorted[i].Company < sorted[j].Company
		}
		return sorted[i].ID < sorted[j].ID
	})

	summary := &types.RunSummary{
		GeneratedAt:  time.Now().In(loc).Format("2006-01-02 15:04"),
		TotalWallets: len(sorted),
		Companies:    make(map[string]*types.CompanySummary),
		Reports:      sorted,
	}

	for _, r := range sorted {
		company := summary.Companies[r.Company]
		if company == nil {
			company = &types.CompanySummary{}
			summary.Companies[r.Company] = company
		}
		company.WalletCount++
		company.WalletIDs = append(company.WalletIDs, r.ID)

		if r.Balance.OK {
			summary.Successful++
			summary.TotalBalance = summary.TotalBalance.Add(r.Balance.Balance)
			company.TotalBalance = company.TotalBalance.Add(r.Balance.Balance)
			if r.Balance.Balance.IsPositive() {
				summary.WalletsWithBalance++
			}
		} else {
			summary.Failed++
		}

		if r.Activity.TransfersOK {
			summary.TotalTransfersIn += r.Activity.TransfersIn
			summary.TotalTransfersOut += r.Activity.TransfersOut
			company.TotalTransfers += r.Activity.TransfersIn + r.Activity.TransfersOut
		}
	}
	return summary
}
