package monitor

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tron-wallet-monitor/pkg/tronscan"
	"tron-wallet-monitor/pkg/types"
)

// ActivityService fetches account counters, transaction history and TRC20
// transfer history for a wallet. Each call fails independently: an error
// leaves that field group unavailable and processing continues.
type ActivityService struct {
	client        *tronscan.Client
	txLimit       int
	transferLimit int
	loc           *time.Location
}

func NewActivityService(client *tronscan.Client, txLimit, transferLimit int, loc *time.Location) *ActivityService {
	return &ActivityService{
		client:        client,
		txLimit:       txLimit,
		transferLimit: transferLimit,
		loc:           loc,
	}
}

// Snapshot issues the three activity calls for one address.
func (s *ActivityService) Snapshot(address string) types.ActivitySnapshot {
	snap := types.ActivitySnapshot{
		TRXBalance:   decimal.Zero,
		CreationDate: "Unknown",
	}

	if acc, err := s.client.GetAccount(address); err != nil {
		logger.Errorw("account info failed", "address", address, "err", err)
	} else {
		snap.AccountOK = true
		snap.TRXBalance = decimal.NewFromInt(acc.Balance).Shift(-sunDecimals)
		snap.TotalTxCount = acc.TotalTransactionCount
		snap.TxInCount = acc.TransactionsIn
		snap.TxOutCount = acc.TransactionsOut
	}

	if txs, err := s.client.GetTransactions(address, s.txLimit); err != nil {
		logger.Errorw("transaction history failed", "address", address, "err", err)
	} else {
		snap.HistoryOK = true
		if date, ok := s.creationDate(txs.Data); ok {
			snap.CreationDate = date
		}
	}

	if transfers, err := s.client.GetTRC20Transfers(address, USDTContract, s.transferLimit); err != nil {
		logger.Errorw("trc20 transfers failed", "address", address, "err", err)
	} else {
		snap.TransfersOK = true
		snap.TransfersIn, snap.TransfersOut = CountTransfers(transfers.Transfers(), address)
	}

	return snap
}

// CountTransfers splits transfers into incoming and outgoing relative to the
// wallet, comparing counterparty addresses case-insensitively. Entries
// matching neither side are ignored.
func CountTransfers(transfers []tronscan.TRC20Transfer, address string) (in, out int) {
	own := strings.ToLower(address)
	for _, t := range transfers {
		switch {
		case strings.ToLower(t.To()) == own:
			in++
		case strings.ToLower(t.From()) == own:
			out++
		}
	}
	return in, out
}

// creationDate derives the wallet creation date from the earliest timestamp
// in the returned history, rendered in the report timezone.
func (s *ActivityService) creationDate(txs []tronscan.Transaction) (string, bool) {
	var oldest int64
	for _, tx := range txs {
		if tx.Timestamp == 0 {
			continue
		}
		if oldest == 0 || tx.Timestamp < oldest {
			oldest = tx.Timestamp
		}
	}
	if oldest == 0 {
		return "", false
	}
	return time.UnixMilli(oldest).In(s.loc).Format("2006-01-02"), true
}
