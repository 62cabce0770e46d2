package main

import (
	"flag"
	"fmt"
	"sort"

	"tron-wallet-monitor/pkg/config"
	"tron-wallet-monitor/pkg/report"
	"tron-wallet-monitor/pkg/types"
)

// Rebuilds the consolidated CSV (and an aggregate overview) from the
// per-wallet summary files a previous analyze_wallets run left behind.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	dir := flag.String("dir", cfg.OutputDir, "output directory of a previous run")
	flag.Parse()

	reports, err := report.ReadWalletJSONs(*dir)
	if err != nil {
		panic(err)
	}
	fmt.Printf("loaded %d wallet summaries from %s\n", len(reports), *dir)

	summary := report.Summarize(reports, cfg.ReportLocation())

	writer, err := report.NewWriter(*dir)
	if err != nil {
		panic(err)
	}
	csvPath, err := writer.WriteCSV(summary)
	if err != nil {
		panic(err)
	}

	printStats(summary)
	fmt.Printf("\nconsolidated csv: %s\n", csvPath)
}

func printStats(s *types.RunSummary) {
	fmt.Println("\n=== CSV CONSOLIDATION SUMMARY ===")
	fmt.Printf("Total Wallets:      %d\n", s.TotalWallets)
	fmt.Printf("Successful Checks:  %d\n", s.Successful)
	fmt.Printf("Total USDT Balance: %s\n", s.TotalBalance)

	statuses := make(map[types.Status]int)
	for _, r := range s.Reports {
		statuses[r.Status]++
	}
	fmt.Println("\nWALLET STATUS:")
	for _, st := range []types.Status{
		types.StatusHasBalance, types.StatusActiveNoBalance, types.StatusEmpty, types.StatusAPIFailed,
	} {
		if statuses[st] > 0 {
			fmt.Printf("  %s: %d wallets\n", st, statuses[st])
		}
	}

	companies := make([]string, 0, len(s.Companies))
	for name := range s.Companies {
		companies = append(companies, name)
	}
	sort.Strings(companies)
	fmt.Println("\nCOMPANIES:")
	for _, name := range companies {
		fmt.Printf("  %s: %d wallets\n", name, s.Companies[name].WalletCount)
	}

	var failed []string
	for _, r := range s.Reports {
		if r.Status == types.StatusAPIFailed {
			failed = append(failed, r.ID)
		}
	}
	if len(failed) > 0 {
		fmt.Println("\nWALLETS WITH FAILED BALANCE CHECKS:")
		for _, id := range failed {
			fmt.Printf("  %s\n", id)
		}
	}
}
