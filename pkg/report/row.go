package report

import (
	"strings"

	"tron-wallet-monitor/pkg/types"
)

// WalletRow is one line of the tabular report. USDTBalance is left empty
// when the balance fetch failed: an absent balance is not a zero balance.
type WalletRow struct {
	WalletID            string `csv:"wallet_id"`
	Company             string `csv:"company"`
	WalletName          string `csv:"wallet_name"`
	Address             string `csv:"address"`
	USDTBalance         string `csv:"usdt_balance"`
	TRXBalance          string `csv:"trx_balance"`
	TotalTransactions   int64  `csv:"total_transactions"`
	TransactionsIn      int64  `csv:"transactions_in"`
	TransactionsOut     int64  `csv:"transactions_out"`
	TransfersIn         int    `csv:"trc20_transfers_in"`
	TransfersOut        int    `csv:"trc20_transfers_out"`
	TotalTransfers      int    `csv:"total_trc20_transfers"`
	CreationDate        string `csv:"creation_date"`
	Status              string `csv:"wallet_status"`
	BalanceAPISuccess   string `csv:"usdt_api_success"`
	AccountAPISuccess   string `csv:"account_api_success"`
	HistoryAPISuccess   string `csv:"transaction_history_api_success"`
	TransfersAPISuccess string `csv:"trc20_transfers_api_success"`
	CheckTime           string `csv:"check_time"`
	Notes               string `csv:"analysis_notes"`
}

func NewWalletRow(r types.WalletReport) WalletRow {
	row := WalletRow{
		WalletID:            r.ID,
		Company:             r.Company,
		WalletName:          r.DisplayName,
		Address:             r.Address,
		TRXBalance:          r.Activity.TRXBalance.String(),
		TotalTransactions:   r.Activity.TotalTxCount,
		TransactionsIn:      r.Activity.TxInCount,
		TransactionsOut:     r.Activity.TxOutCount,
		TransfersIn:         r.Activity.TransfersIn,
		TransfersOut:        r.Activity.TransfersOut,
		TotalTransfers:      r.Activity.TransfersIn + r.Activity.TransfersOut,
		CreationDate:        r.Activity.CreationDate,
		Status:              string(r.Status),
		BalanceAPISuccess:   yesNo(r.Balance.OK),
		AccountAPISuccess:   yesNo(r.Activity.AccountOK),
		HistoryAPISuccess:   yesNo(r.Activity.HistoryOK),
		TransfersAPISuccess: yesNo(r.Activity.TransfersOK),
		CheckTime:           r.CheckTime,
		Notes:               rowNotes(r),
	}
	if r.Balance.OK {
		row.USDTBalance = r.Balance.Balance.String()
	}
	return row
}

// BalanceRow is the tabular output of the balance-only workflow.
type BalanceRow struct {
	WalletID    string `csv:"wallet_id"`
	Company     string `csv:"company"`
	WalletName  string `csv:"wallet_name"`
	Address     string `csv:"address"`
	USDTBalance string `csv:"usdt_balance"`
	APISuccess  string `csv:"api_success"`
	HasBalance  string `csv:"has_balance"`
	CheckTime   string `csv:"check_time"`
}

func NewBalanceRow(rec types.WalletRecord, res types.BalanceResult, checkTime string) BalanceRow {
	row := BalanceRow{
		WalletID:   rec.ID,
		Company:    rec.Company,
		WalletName: rec.DisplayName,
		Address:    rec.Address,
		APISuccess: yesNo(res.OK),
		HasBalance: yesNo(res.OK && res.Balance.IsPositive()),
		CheckTime:  checkTime,
	}
	if res.OK {
		row.USDTBalance = res.Balance.String()
	}
	return row
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func rowNotes(r types.WalletReport) string {
	var notes []string
	if !r.Balance.OK {
		notes = append(notes, "USDT balance check failed")
	}
	if r.Activity.CreationDate == "Unknown" {
		notes = append(notes, "Could not determine wallet creation date")
	}
	if r.Status == types.StatusEmpty {
		notes = append(notes, "Wallet appears empty")
	}
	if len(notes) == 0 {
		return "All data retrieved successfully"
	}
	return strings.Join(notes, "; ")
}
