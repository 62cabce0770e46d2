package monitor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tron-wallet-monitor/pkg/tronscan"
	"tron-wallet-monitor/pkg/types"
)

const (
	addrA = "TAbcdefghijklmnopqrstuvwxyz1234567"
	addrB = "TZyxwvutsrqponmlkjihgfedcba7654321"
)

func tokensServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
}

func balanceService(url string) *BalanceService {
	return NewBalanceService(tronscan.NewClient(tronscan.Config{BaseURL: url}), 0)
}

func TestFetchConvertsSunToUSDT(t *testing.T) {
	srv := tokensServer(t, `{"data":[{"tokenId":"TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t","balance":"1500000"}]}`)
	defer srv.Close()

	result := balanceService(srv.URL).Fetch(addrA)
	require.True(t, result.OK)
	assert.True(t, result.Balance.Equal(decimal.RequireFromString("1.5")), "got %s", result.Balance)
}

func TestFetchAssetAbsentIsZeroNotFailure(t *testing.T) {
	srv := tokensServer(t, `{"data":[{"tokenId":"_","tokenName":"trx","balance":"999"}]}`)
	defer srv.Close()

	result := balanceService(srv.URL).Fetch(addrA)
	require.True(t, result.OK)
	assert.True(t, result.Balance.IsZero())
	assert.Empty(t, result.Err)
}

func TestFetchEmptyTokenListIsZero(t *testing.T) {
	srv := tokensServer(t, `{"data":[]}`)
	defer srv.Close()

	result := balanceService(srv.URL).Fetch(addrA)
	require.True(t, result.OK)
	assert.True(t, result.Balance.IsZero())
}

func TestFetchUnparsableAmountIsZero(t *testing.T) {
	srv := tokensServer(t, `{"data":[{"tokenId":"TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t","balance":"n/a"}]}`)
	defer srv.Close()

	result := balanceService(srv.URL).Fetch(addrA)
	require.True(t, result.OK)
	assert.True(t, result.Balance.IsZero())
}

func TestFetchUpstreamErrorIsNotZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	result := balanceService(srv.URL).Fetch(addrA)
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Err)
}

func TestFetchRejectsInvalidAddressBeforeNetwork(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	result := balanceService(srv.URL).Fetch("not-an-address")
	assert.False(t, result.OK)
	assert.False(t, called)
}

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("address") == addrA {
			fmt.Fprint(w, `{"data":[{"tokenId":"TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t","balance":"10000000"}]}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	records := []types.WalletRecord{
		{ID: "w1", Address: addrA, Company: "Acme"},
		{ID: "w2", Address: addrB, Company: "Beta"},
	}
	results := balanceService(srv.URL).FetchAll(records)
	require.Len(t, results, 2)
	assert.True(t, results["w1"].OK)
	assert.True(t, results["w1"].Balance.Equal(decimal.NewFromInt(10)))
	assert.False(t, results["w2"].OK)
}
