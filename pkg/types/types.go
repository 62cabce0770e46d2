package types

import (
	"github.com/shopspring/decimal"

	"tron-wallet-monitor/pkg/tronscan"
)

// Status classifies a wallet after a run. First matching rule wins:
// api-failed, has-balance, active-no-balance, empty.
type Status string

const (
	StatusAPIFailed       Status = "api-failed"
	StatusHasBalance      Status = "has-balance"
	StatusActiveNoBalance Status = "active-no-balance"
	StatusEmpty           Status = "empty"
)

// WalletRecord is one address book entry, immutable for the run.
type WalletRecord struct {
	ID          string `json:"wallet_id"`
	Address     string `json:"address"`
	Company     string `json:"company"`
	DisplayName string `json:"wallet_name"`
}

// BalanceResult is the outcome of one USDT balance fetch. OK=false means the
// balance is absent, which must never be conflated with a zero balance.
type BalanceResult struct {
	Address string                  `json:"address"`
	Balance decimal.Decimal         `json:"usdt_balance"`
	Tokens  []tronscan.TokenBalance `json:"raw_tokens,omitempty"`
	OK      bool                    `json:"api_success"`
	Err     string                  `json:"error,omitempty"`
}

// ActivitySnapshot holds the account-level figures for one wallet. Each of
// the three upstream calls fails independently; the OK flags mark which
// fields are actually backed by data.
type ActivitySnapshot struct {
	TRXBalance   decimal.Decimal `json:"trx_balance"`
	TotalTxCount int64           `json:"total_transactions"`
	TxInCount    int64           `json:"transactions_in"`
	TxOutCount   int64           `json:"transactions_out"`
	TransfersIn  int             `json:"trc20_transfers_in"`
	TransfersOut int             `json:"trc20_transfers_out"`
	CreationDate string          `json:"creation_date"`

	AccountOK   bool `json:"account_api_success"`
	HistoryOK   bool `json:"transaction_history_api_success"`
	TransfersOK bool `json:"trc20_transfers_api_success"`
}

// WalletReport is the unit of output: one wallet's record, fetch results and
// derived status for a single run.
type WalletReport struct {
	WalletRecord
	Balance   BalanceResult    `json:"balance"`
	Activity  ActivitySnapshot `json:"activity"`
	Status    Status           `json:"status"`
	CheckTime string           `json:"check_time"`
}

// CompanySummary is the per-company subtotal within a run.
type CompanySummary struct {
	WalletCount    int             `json:"wallet_count"`
	TotalBalance   decimal.Decimal `json:"total_usdt"`
	TotalTransfers int             `json:"total_trc20_transfers"`
	WalletIDs      []string        `json:"wallets"`
}

// RunSummary aggregates all wallet reports of one execution. It is derived,
// read-only and discarded after the run.
type RunSummary struct {
	GeneratedAt        string                     `json:"generated_at"`
	TotalWallets       int                        `json:"total_wallets"`
	Successful         int                        `json:"successful_balance_checks"`
	Failed             int                        `json:"failed_balance_checks"`
	WalletsWithBalance int                        `json:"wallets_with_usdt"`
	TotalBalance       decimal.Decimal            `json:"total_usdt_balance"`
	TotalTransfersIn   int                        `json:"total_trc20_transfers_in"`
	TotalTransfersOut  int                        `json:"total_trc20_transfers_out"`
	Companies          map[string]*CompanySummary `json:"companies"`
	Reports            []WalletReport             `json:"wallet_reports"`
}
