package main

import (
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tron-wallet-monitor/pkg/config"
	"tron-wallet-monitor/pkg/monitor"
	"tron-wallet-monitor/pkg/report"
	"tron-wallet-monitor/pkg/tronscan"
	"tron-wallet-monitor/pkg/types"
	"tron-wallet-monitor/pkg/wallet"
)

type checkResults struct {
	CheckTime          string                         `json:"check_time"`
	TotalWallets       int                            `json:"total_wallets"`
	Successful         int                            `json:"successful_checks"`
	Failed             int                            `json:"failed_checks"`
	WalletsWithBalance int                            `json:"wallets_with_balance"`
	TotalBalance       decimal.Decimal                `json:"total_usdt_balance"`
	Balances           map[string]types.BalanceResult `json:"wallet_results"`
}

func main() {
	bookPath := flag.String("wallets", "wallets.json", "address book file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	records, err := wallet.LoadBook(*bookPath)
	if err != nil {
		panic(err)
	}

	client := tronscan.NewClient(tronscan.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	balances := monitor.NewBalanceService(client, cfg.RequestDelay)

	fmt.Printf("checking %d wallets (USDT contract %s)\n", len(records), monitor.USDTContract)
	results := balances.FetchAll(records)

	checkTime := time.Now().In(cfg.ReportLocation()).Format("2006-01-02 15:04")
	out := checkResults{
		CheckTime:    checkTime,
		TotalWallets: len(records),
		Balances:     results,
	}
	rows := make([]*report.BalanceRow, 0, len(records))
	for _, rec := range records {
		res := results[rec.ID]
		row := report.NewBalanceRow(rec, res, checkTime)
		rows = append(rows, &row)

		if res.OK {
			out.Successful++
			out.TotalBalance = out.TotalBalance.Add(res.Balance)
			if res.Balance.IsPositive() {
				out.WalletsWithBalance++
			}
		} else {
			out.Failed++
		}
	}

	printSummary(records, results, out)

	writer, err := report.NewWriter(cfg.OutputDir)
	if err != nil {
		panic(err)
	}
	csvPath, err := writer.WriteBalanceCSV(rows)
	if err != nil {
		panic(err)
	}
	jsonPath, err := writer.WriteJSON("balance_check", out)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\ncsv:  %s\njson: %s\n", csvPath, jsonPath)
}

func printSummary(records []types.WalletRecord, results map[string]types.BalanceResult, out checkResults) {
	fmt.Println("\n=== WALLET BALANCE CHECK SUMMARY ===")
	fmt.Printf("Time:                %s\n", out.CheckTime)
	fmt.Printf("Total Wallets:       %d\n", out.TotalWallets)
	fmt.Printf("Successful Checks:   %d\n", out.Successful)
	fmt.Printf("Failed Checks:       %d\n", out.Failed)
	fmt.Printf("Wallets with USDT:   %d\n", out.WalletsWithBalance)
	fmt.Printf("Total USDT Balance:  %s\n", out.TotalBalance)

	type companyStat struct {
		count int
		total decimal.Decimal
	}
	companies := make(map[string]*companyStat)
	for _, rec := range records {
		stat := companies[rec.Company]
		if stat == nil {
			stat = &companyStat{}
			companies[rec.Company] = stat
		}
		stat.count++
		if res := results[rec.ID]; res.OK {
			stat.total = stat.total.Add(res.Balance)
		}
	}
	names := make([]string, 0, len(companies))
	for name := range companies {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nBY COMPANY:")
	for _, name := range names {
		fmt.Printf("  %s: %d wallets, %s USDT\n", name, companies[name].count, companies[name].total)
	}

	fmt.Println("\nINDIVIDUAL BALANCES:")
	for _, rec := range records {
		if res := results[rec.ID]; res.OK {
			fmt.Printf("  %s: %s USDT\n", rec.ID, res.Balance)
		} else {
			fmt.Printf("  %s: FAILED (%s)\n", rec.ID, res.Err)
		}
	}
}
