package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tron-wallet-monitor/pkg/types"
)

var utc = time.UTC

func reportFor(id, company string, balance string, balanceOK bool, txCount int64) types.WalletReport {
	b := types.BalanceResult{OK: balanceOK}
	if balanceOK {
		b.Balance = decimal.RequireFromString(balance)
	}
	activity := types.ActivitySnapshot{TotalTxCount: txCount, CreationDate: "Unknown"}

	status := types.StatusEmpty
	switch {
	case !balanceOK:
		status = types.StatusAPIFailed
	case b.Balance.IsPositive():
		status = types.StatusHasBalance
	case txCount > 0:
		status = types.StatusActiveNoBalance
	}
	return types.WalletReport{
		WalletRecord: types.WalletRecord{ID: id, Company: company},
		Balance:      b,
		Activity:     activity,
		Status:       status,
	}
}

func TestSummarizeTwoWalletScenario(t *testing.T) {
	reports := []types.WalletReport{
		reportFor("w2", "B", "0", true, 3),
		reportFor("w1", "A", "10.0", true, 0),
	}

	s := Summarize(reports, utc)

	assert.Equal(t, 2, s.TotalWallets)
	assert.Equal(t, 2, s.Successful)
	assert.Equal(t, 0, s.Failed)
	assert.Equal(t, 1, s.WalletsWithBalance)
	assert.True(t, s.TotalBalance.Equal(decimal.NewFromInt(10)), "total %s", s.TotalBalance)

	var hasBalance, activeNoBalance int
	for _, r := range s.Reports {
		switch r.Status {
		case types.StatusHasBalance:
			hasBalance++
		case types.StatusActiveNoBalance:
			activeNoBalance++
		}
	}
	assert.Equal(t, 1, hasBalance)
	assert.Equal(t, 1, activeNoBalance)

	require.Contains(t, s.Companies, "A")
	require.Contains(t, s.Companies, "B")
	assert.True(t, s.Companies["A"].TotalBalance.Equal(decimal.NewFromInt(10)))
	assert.True(t, s.Companies["B"].TotalBalance.IsZero())

	// sorted by company then wallet id
	assert.Equal(t, "w1", s.Reports[0].ID)
	assert.Equal(t, "w2", s.Reports[1].ID)
}

func TestSummarizeExcludesFailuresFromTotals(t *testing.T) {
	reports := []types.WalletReport{
		reportFor("ok", "A", "2.5", true, 0),
		reportFor("down", "A", "", false, 0),
	}

	s := Summarize(reports, utc)

	assert.Equal(t, 1, s.Successful)
	assert.Equal(t, 1, s.Failed)
	// A failed fetch contributes nothing; it is not a zero.
	assert.True(t, s.TotalBalance.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, s.Companies["A"].TotalBalance.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, 2, s.Companies["A"].WalletCount)
}

func TestSummarizeExactDecimalSum(t *testing.T) {
	// Many six-decimal-place amounts must sum without drift.
	var reports []types.WalletReport
	for i := 0; i < 1000; i++ {
		reports = append(reports, reportFor("w", "A", "0.000001", true, 0))
	}

	s := Summarize(reports, utc)
	assert.True(t, s.TotalBalance.Equal(decimal.RequireFromString("0.001")), "total %s", s.TotalBalance)
}

func TestSummarizeTransferTotals(t *testing.T) {
	r1 := reportFor("w1", "A", "1", true, 0)
	r1.Activity.TransfersOK = true
	r1.Activity.TransfersIn = 4
	r1.Activity.TransfersOut = 2

	r2 := reportFor("w2", "A", "", false, 0)
	r2.Activity.TransfersIn = 9 // not counted: transfers call failed

	s := Summarize([]types.WalletReport{r1, r2}, utc)
	assert.Equal(t, 4, s.TotalTransfersIn)
	assert.Equal(t, 2, s.TotalTransfersOut)
	assert.Equal(t, 6, s.Companies["A"].TotalTransfers)
}
