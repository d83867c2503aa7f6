package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"alafaq/internal/admin"
	"alafaq/internal/config"
	"alafaq/internal/database"
	"alafaq/internal/logging"
	"alafaq/internal/models"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return fmt.Errorf("missing command")
	}
	command := os.Args[1]

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logCloser.Close()

	db, err := database.New(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("open mirror database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	switch command {
	case "list":
		return runList(ctx, db, os.Args[2:])
	case "export":
		return runExport(ctx, db, cfg.Exports.Path, os.Args[2:])
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func runList(ctx context.Context, db *database.DB, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	from := fs.String("from", "", "start date (YYYY-MM-DD)")
	to := fs.String("to", "", "end date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := loadRecords(ctx, db, *from, *to)
	if err != nil {
		return err
	}

	if err := admin.RenderList(os.Stdout, records); err != nil {
		return err
	}

	counts, err := db.CountByKind(ctx)
	if err != nil {
		return err
	}
	if len(counts) > 0 {
		fmt.Printf("\nالإجمالي: تحاليل %d، مواعيد أطباء %d\n",
			counts[models.KindAnalysis], counts[models.KindDoctor])
	}
	return nil
}

func runExport(ctx context.Context, db *database.DB, exportDir string, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "output xlsx path (default: dated file under the exports directory)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := db.ListBookings(ctx)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		if path, err = admin.ExportToExcel(exportDir, records); err != nil {
			return err
		}
	} else if err = admin.ExportToFile(path, records); err != nil {
		return err
	}

	fmt.Printf("تم التصدير إلى %s\n", path)
	return nil
}

func loadRecords(ctx context.Context, db *database.DB, from, to string) ([]models.BookingRecord, error) {
	if from == "" && to == "" {
		return db.ListBookings(ctx)
	}

	start := time.Time{}
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	var err error
	if from != "" {
		if start, err = time.Parse(time.DateOnly, from); err != nil {
			return nil, fmt.Errorf("invalid --from date: %w", err)
		}
	}
	if to != "" {
		if end, err = time.Parse(time.DateOnly, to); err != nil {
			return nil, fmt.Errorf("invalid --to date: %w", err)
		}
	}

	return db.ListBookingsByDateRange(ctx, start, end)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: admin <command> [flags]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  list [--from YYYY-MM-DD] [--to YYYY-MM-DD]  print mirrored bookings")
	fmt.Fprintln(os.Stderr, "  export [--out file.xlsx]                    write bookings to xlsx")
}
