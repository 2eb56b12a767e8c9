// Command cli is the terminal front end of the tracker. It talks to the
// same local store as the API server through the same services, covering
// the day-to-day flows: listing, adding, deleting, summarizing, chart
// previews, and file export.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/export"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/services"
	"fintrack/internal/validation"
)

const usage = `usage: fintrack <command> [options]

commands:
  list      list transactions (-sort column, -desc)
  add       add a transaction (-type, -category, -amount, -date, -description)
  delete    delete a transaction (-id)
  summary   show the financial summary
  charts    show chart dataset previews (-period)
  export    write an export file (-format, -period, -summary, -transactions, -out)
`

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return err
	}
	if err := dbManager.RunMigrations(); err != nil {
		return err
	}

	db := dbManager.DB()
	transactionService := services.NewTransactionService(db)
	categoryService := services.NewCategoryService(db)

	command, args := os.Args[1], os.Args[2:]
	switch command {
	case "list":
		return cmdList(transactionService, args)
	case "add":
		return cmdAdd(transactionService, categoryService, args)
	case "delete":
		return cmdDelete(transactionService, args)
	case "summary":
		return cmdSummary(transactionService)
	case "charts":
		return cmdCharts(transactionService, args)
	case "export":
		return cmdExport(transactionService, cfg, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func cmdList(svc services.TransactionServicer, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	sortColumn := fs.String("sort", "", "sort column (id, date, type, category, amount, description)")
	descending := fs.Bool("desc", false, "sort in descending order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		transactions []models.Transaction
		err          error
	)
	if *sortColumn != "" {
		transactions, err = svc.GetAllSorted(*sortColumn, !*descending)
	} else {
		transactions, err = svc.GetAll()
	}
	if err != nil {
		return err
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions recorded.")
		return nil
	}

	fmt.Printf("%4s  %-16s  %-7s  %-15s  %14s  %s\n", "ID", "Date", "Type", "Category", "Amount", "Description")
	for _, tx := range transactions {
		amount := export.FormatCurrency(tx.Amount)
		if tx.Type == models.TransactionTypeExpense {
			amount = "-" + amount
		}
		fmt.Printf("%4d  %-16s  %-7s  %-15s  %14s  %s\n",
			tx.ID, validation.StorageToDisplay(tx.OccurredAt), tx.Type, tx.Category, amount, tx.Description)
	}
	return nil
}

func cmdAdd(svc services.TransactionServicer, categories services.CategoryServicer, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	typeText := fs.String("type", "", "transaction type (income or expense)")
	category := fs.String("category", "", "category name")
	amountText := fs.String("amount", "", `amount, "." or "," as decimal separator`)
	dateText := fs.String("date", "", "occurrence date as DD/MM/YYYY HH:MM (default: now)")
	description := fs.String("description", "", "optional description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	txType, err := validation.TransactionType(*typeText)
	if err != nil {
		return err
	}

	amount, err := validation.Amount(*amountText)
	if err != nil {
		return err
	}

	// Categories are enforced against the configured list here, the way
	// the interactive front end always did; the HTTP API leaves them
	// free-form.
	allowed, err := categories.Names(&txType)
	if err != nil {
		return err
	}
	if err := validation.Category(*category, allowed); err != nil {
		return err
	}

	occurredAt := time.Now().Format(validation.StorageLayout)
	if *dateText != "" {
		occurredAt, err = validation.DisplayToStorage(*dateText)
		if err != nil {
			return err
		}
	}

	transaction, err := svc.Create(txType, *category, amount, occurredAt, *description)
	if err != nil {
		return err
	}

	fmt.Printf("Added transaction #%d\n", transaction.ID)
	return nil
}

func cmdDelete(svc services.TransactionServicer, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Uint("id", 0, "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	if err := svc.Delete(uint(*id)); err != nil {
		return err
	}
	fmt.Printf("Deleted transaction #%d\n", *id)
	return nil
}

func cmdSummary(svc services.TransactionServicer) error {
	summary, err := svc.Summary()
	if err != nil {
		return err
	}

	fmt.Println("FINANCIAL SUMMARY")
	fmt.Printf("  Total income:   %14s\n", export.FormatCurrency(summary.TotalIncome))
	fmt.Printf("  Total expenses: %14s\n", export.FormatCurrency(summary.TotalExpenses))
	fmt.Printf("  Balance:        %14s\n", export.FormatCurrency(summary.Balance))
	fmt.Printf("  Transactions:   %14d\n", summary.TransactionCount)
	return nil
}

func cmdCharts(svc services.TransactionServicer, args []string) error {
	fs := flag.NewFlagSet("charts", flag.ExitOnError)
	periodText := fs.String("period", "all", "time window (all, 30days, this_month)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	window, err := reports.ParseWindow(*periodText)
	if err != nil {
		return err
	}

	transactions, err := svc.GetAll()
	if err != nil {
		return err
	}
	charts := reports.Charts(reports.Filter(transactions, window, time.Now()))

	fmt.Println("INCOME VS EXPENSES")
	if len(charts.Pie) == 0 {
		fmt.Println("  no data for this period")
	}
	for _, slice := range charts.Pie {
		fmt.Printf("  %-8s %14s\n", slice.Label, export.FormatCurrency(slice.Total))
	}

	fmt.Println("\nEXPENSES BY CATEGORY")
	if len(charts.Bar) == 0 {
		fmt.Println("  no expenses for this period")
	}
	for _, entry := range charts.Bar {
		fmt.Printf("  %-15s %14s\n", entry.Category, export.FormatCurrency(entry.Total))
	}

	fmt.Println("\nMONTHLY EVOLUTION")
	// The line chart needs at least two months to be worth drawing; that
	// threshold is a presentation choice, not an aggregation rule.
	if len(charts.Line) < 2 {
		fmt.Println("  insufficient data: need at least two months")
		return nil
	}
	for _, point := range charts.Line {
		fmt.Printf("  %s  revenue %14s  expense %14s\n",
			point.Month, export.FormatCurrency(point.Revenue), export.FormatCurrency(point.Expense))
	}
	return nil
}

func cmdExport(svc services.TransactionServicer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	formatText := fs.String("format", "csv", "export format (csv, json, text)")
	periodText := fs.String("period", "all", "time window (all, 30days, this_month)")
	includeSummary := fs.Bool("summary", true, "include the financial summary")
	includeTransactions := fs.Bool("transactions", true, "include the transaction list")
	outPath := fs.String("out", "", "output path (default: EXPORT_DIR with a timestamped name)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := export.ParseFormat(*formatText)
	if err != nil {
		return err
	}
	window, err := reports.ParseWindow(*periodText)
	if err != nil {
		return err
	}

	transactions, err := svc.GetAll()
	if err != nil {
		return err
	}

	now := time.Now()
	filtered := reports.Filter(transactions, window, now)
	summary := reports.Summarize(filtered)

	path := *outPath
	if path == "" {
		if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
			return err
		}
		path = filepath.Join(cfg.ExportDir, export.Filename(format, now))
	}

	opts := export.Options{
		Format:              format,
		IncludeSummary:      *includeSummary,
		IncludeTransactions: *includeTransactions,
	}
	if err := export.WriteFile(path, filtered, summary, opts); err != nil {
		return err
	}

	fmt.Printf("Exported %d transaction(s) to %s\n", len(filtered), path)
	return nil
}
