package monitor

import (
	"time"

	"tron-wallet-monitor/pkg/config"
	"tron-wallet-monitor/pkg/tronscan"
	"tron-wallet-monitor/pkg/types"
	"tron-wallet-monitor/pkg/wallet"
)

// Classify derives the wallet status. Rules apply in order, first match
// wins: a failed balance fetch is api-failed no matter what else was seen.
func Classify(balance types.BalanceResult, activity types.ActivitySnapshot) types.Status {
	switch {
	case !balance.OK:
		return types.StatusAPIFailed
	case balance.Balance.IsPositive():
		return types.StatusHasBalance
	case activity.TRXBalance.IsPositive() || activity.TotalTxCount > 0:
		return types.StatusActiveNoBalance
	default:
		return types.StatusEmpty
	}
}

// Analyzer produces one WalletReport per address book entry.
type Analyzer struct {
	balances *BalanceService
	activity *ActivityService
	delay    time.Duration
	loc      *time.Location
}

func NewAnalyzer(cfg *config.Config) *Analyzer {
	client := tronscan.NewClient(tronscan.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	loc := cfg.ReportLocation()
	return &Analyzer{
		balances: NewBalanceService(client, cfg.RequestDelay),
		activity: NewActivityService(client, cfg.TxPageSize, cfg.TransferPageSize, loc),
		delay:    cfg.RequestDelay,
		loc:      loc,
	}
}

// AnalyzeWallet fetches balance and activity for one wallet and classifies
// it. Failures never propagate past the wallet boundary. A malformed address
// is rejected before any network call, activity endpoints included.
func (a *Analyzer) AnalyzeWallet(rec types.WalletRecord) types.WalletReport {
	if !wallet.ValidateAddress(rec.Address) {
		balance := types.BalanceResult{Address: rec.Address, Err: "invalid TRC20 address"}
		activity := types.ActivitySnapshot{CreationDate: "Unknown"}
		return types.WalletReport{
			WalletRecord: rec,
			Balance:      balance,
			Activity:     activity,
			Status:       Classify(balance, activity),
			CheckTime:    time.Now().In(a.loc).Format("2006-01-02 15:04"),
		}
	}

	balance := a.balances.Fetch(rec.Address)
	activity := a.activity.Snapshot(rec.Address)

	return types.WalletReport{
		WalletRecord: rec,
		Balance:      balance,
		Activity:     activity,
		Status:       Classify(balance, activity),
		CheckTime:    time.Now().In(a.loc).Format("2006-01-02 15:04"),
	}
}

// AnalyzeAll processes wallets one at a time, in order, with a fixed pause
// between wallets.
func (a *Analyzer) AnalyzeAll(records []types.WalletRecord) []types.WalletReport {
	reports := make([]types.WalletReport, 0, len(records))
	for i, rec := range records {
		if i > 0 && a.delay > 0 {
			time.Sleep(a.delay)
		}
		logger.Infow("analyzing wallet", "wallet", rec.ID, "address", rec.Address,
			"progress", i+1, "total", len(records))
		report := a.AnalyzeWallet(rec)
		reports = append(reports, report)

		if report.Balance.OK {
			logger.Infow("wallet analyzed", "wallet", rec.ID, "usdt", report.Balance.Balance,
				"status", report.Status,
				"transfersIn", report.Activity.TransfersIn, "transfersOut", report.Activity.TransfersOut)
		} else {
			logger.Warnw("wallet analysis incomplete", "wallet", rec.ID, "err", report.Balance.Err)
		}
	}
	return reports
}
