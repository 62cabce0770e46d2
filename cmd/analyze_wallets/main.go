package main

import (
	"flag"
	"fmt"
	"sort"

	"tron-wallet-monitor/pkg/config"
	"tron-wallet-monitor/pkg/monitor"
	"tron-wallet-monitor/pkg/report"
	"tron-wallet-monitor/pkg/types"
	"tron-wallet-monitor/pkg/wallet"
)

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
	fmt.Printf("loaded %d wallets from %s\n", len(records), *bookPath)

	analyzer := monitor.NewAnalyzer(cfg)
	reports := analyzer.AnalyzeAll(records)

	summary := report.Summarize(reports, cfg.ReportLocation())

	writer, err := report.NewWriter(cfg.OutputDir)
	if err != nil {
		panic(err)
	}
	for _, r := range summary.Reports {
		if err := writer.WriteWalletJSON(r); err != nil {
			panic(err)
		}
	}
	jsonPath, err := writer.WriteSummaryJSON(summary)
	if err != nil {
		panic(err)
	}
	csvPath, err := writer.WriteCSV(summary)
	if err != nil {
		panic(err)
	}

	printOverview(summary)
	fmt.Printf("\nsummary: %s\ncsv:     %s\n", jsonPath, csvPath)
}

func printOverview(s *types.RunSummary) {
	fmt.Println("\n=== WALLET ANALYSIS OVERVIEW ===")
	fmt.Printf("Time:                %s\n", s.GeneratedAt)
	fmt.Printf("Total Wallets:       %d\n", s.TotalWallets)
	fmt.Printf("Successful Checks:   %d\n", s.Successful)
	fmt.Printf("Failed Checks:       %d\n", s.Failed)
	fmt.Printf("Wallets with USDT:   %d\n", s.WalletsWithBalance)
	fmt.Printf("Total USDT Balance:  %s\n", s.TotalBalance)
	fmt.Printf("TRC20 Transfers In:  %d\n", s.TotalTransfersIn)
	fmt.Printf("TRC20 Transfers Out: %d\n", s.TotalTransfersOut)

	companies := make([]string, 0, len(s.Companies))
	for name := range s.Companies {
		companies = append(companies, name)
	}
	sort.Strings(companies)

	fmt.Println("\nBY COMPANY:")
	for _, name := range companies {
		c := s.Companies[name]
		fmt.Printf("  %s: %d wallets, %s USDT, %d TRC20 transfers\n",
			name, c.WalletCount, c.TotalBalance, c.TotalTransfers)
	}
}
