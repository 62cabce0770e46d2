package monitor

import (
	"time"

	"github.com/shopspring/decimal"

	"tron-wallet-monitor/pkg/tronscan"
	"tron-wallet-monitor/pkg/types"
	"tron-wallet-monitor/pkg/wallet"
)

// USDTContract is the official USDT TRC20 contract on mainnet.
const USDTContract = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

// sunDecimals is the number of decimal places of the tracked asset:
// 1,000,000 sun per USDT.
const sunDecimals = 6

// BalanceService fetches USDT TRC20 balances through the Tronscan API.
type BalanceService struct {
	client *tronscan.Client
	delay  time.Duration
}

func NewBalanceService(client *tronscan.Client, delay time.Duration) *BalanceService {
	return &BalanceService{client: client, delay: delay}
}

// Fetch retrieves the USDT balance of one address. A response without the
// USDT token is a successful zero balance; only transport and parse failures
// yield OK=false. Invalid addresses are rejected before any network call.
func (s *BalanceService) Fetch(address string) types.BalanceResult {
	result := types.BalanceResult{Address: address}

	if !wallet.ValidateAddress(address) {
		result.Err = "invalid TRC20 address"
		logger.Errorw("invalid address", "address", address)
		return result
	}

	tokens, err := s.client.GetAccountTokens(address)
	if err != nil {
		result.Err = err.Error()
		logger.Errorw("balance fetch failed", "address", address, "err", err)
		return result
	}

	result.OK = true
	result.Tokens = tokens
	result.Balance = decimal.Zero

	for _, token := range tokens {
		if token.TokenID != USDTContract {
			continue
		}
		raw, err := decimal.NewFromString(token.Balance)
		if err != nil {
			// The call itself succeeded; an unparsable amount counts as zero.
			logger.Errorw("unparsable balance", "address", address, "raw", token.Balance)
			return result
		}
		result.Balance = raw.Shift(-sunDecimals)
		return result
	}
	return result
}

// FetchAll fetches balances for every record sequentially, keyed by wallet
// id, pausing between wallets to avoid bursting the upstream API.
func (s *BalanceService) FetchAll(records []types.WalletRecord) map[string]types.BalanceResult {
	results := make(map[string]types.BalanceResult, len(records))
	for i, rec := range records {
		if i > 0 && s.delay > 0 {
			time.Sleep(s.delay)
		}
		result := s.Fetch(rec.Address)
		results[rec.ID] = result
		if result.OK {
			logger.Infow("fetched balance", "wallet", rec.ID, "usdt", result.Balance)
		} else {
			logger.Warnw("balance unavailable", "wallet", rec.ID, "err", result.Err)
		}
	}
	return results
}
