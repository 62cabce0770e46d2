package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"tron-wallet-monitor/pkg/config"
	"tron-wallet-monitor/pkg/monitor"
	"tron-wallet-monitor/pkg/tronscan"
	"tron-wallet-monitor/pkg/wallet"
)

// Probes every endpoint for a single address and dumps what came back, for
// investigating wallets whose figures look wrong in the reports.
func main() {
	address := flag.String("address", "", "TRON address to diagnose")
	flag.Parse()

	if *address == "" {
		fmt.Fprintln(os.Stderr, "usage: diagnose_wallet -address <Txxx...>")
		os.Exit(2)
	}

	fmt.Printf("=== DIAGNOSING %s ===\n", *address)
	fmt.Printf("address valid: %v\n", wallet.ValidateAddress(*address))
	if !wallet.ValidateAddress(*address) {
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	client := tronscan.NewClient(tronscan.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})

	balances := monitor.NewBalanceService(client, 0)
	result := balances.Fetch(*address)
	fmt.Printf("\n--- account/tokens ---\n")
	fmt.Printf("success: %v\n", result.OK)
	if result.OK {
		fmt.Printf("usdt balance: %s\n", result.Balance)
		fmt.Printf("tokens held: %d\n", len(result.Tokens))
		dump(result.Tokens)
	} else {
		fmt.Printf("error: %s\n", result.Err)
	}

	fmt.Printf("\n--- account ---\n")
	if acc, err := client.GetAccount(*address); err != nil {
		fmt.Printf("error: %v\n", err)
	} else {
		dump(acc)
	}

	fmt.Printf("\n--- transaction (limit %d) ---\n", cfg.TxPageSize)
	if txs, err := client.GetTransactions(*address, cfg.TxPageSize); err != nil {
		fmt.Printf("error: %v\n", err)
	} else {
		fmt.Printf("total: %d, returned: %d\n", txs.Total, len(txs.Data))
	}

	fmt.Printf("\n--- token_trc20/transfers (limit %d) ---\n", cfg.TransferPageSize)
	if transfers, err := client.GetTRC20Transfers(*address, monitor.USDTContract, cfg.TransferPageSize); err != nil {
		fmt.Printf("error: %v\n", err)
	} else {
		list := transfers.Transfers()
		in, out := monitor.CountTransfers(list, *address)
		fmt.Printf("returned: %d, in: %d, out: %d, unrelated: %d\n",
			len(list), in, out, len(list)-in-out)
		for i, t := range list {
			if i >= 5 {
				fmt.Printf("  ... %d more\n", len(list)-5)
				break
			}
			fmt.Printf("  %s -> %s quant %s\n", t.From(), t.To(), t.Quant)
		}
	}
}

func dump(v interface{}) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("marshal error: %v\n", err)
		return
	}
	fmt.Println(string(raw))
}
