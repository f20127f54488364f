// Command move-calculator models selling an existing property and buying a
// new one: net proceeds, payoff, down-payment sufficiency, and the resulting
// monthly payment across a grid of price scenarios.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"move-calculator/config"
	"move-calculator/domain"
	httpLayer "move-calculator/http"
	"move-calculator/repository"
	"move-calculator/service"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "move-calculator",
	Short: "Real-estate transaction calculator",
	Long: `move-calculator estimates what selling your current home and buying
the next one actually costs: net proceeds, payoff, effective down payment,
and the monthly payment across a sale-price × purchase-price scenario grid.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")

		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger = newLogger(cfg.LogLevel)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.toml", "path to configuration file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(amortizeCmd)
}

// newLogger builds the structured JSON logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("move-calculator %s (%s)\n", version, commit)
	},
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP calculation API",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewCalculationRepositoryMemory()

		var cache repository.CacheRepository
		if cfg.Redis.Enabled {
			cache = repository.NewRedisCache(
				cfg.Redis.Addr,
				cfg.Redis.Password,
				cfg.Redis.DB,
				time.Duration(cfg.Redis.TTLSec)*time.Second,
			)
		} else {
			cache = repository.NewMockCache()
		}

		mortgageService := service.NewMortgageService(repo, cache, logger)
		mortgageHandler := httpLayer.NewMortgageHandler(mortgageService)
		scheduleHandler := httpLayer.NewScheduleHandler(mortgageService)

		server := httpLayer.NewServer(cfg, logger, mortgageHandler, scheduleHandler)
		return server.ListenAndServe()
	},
}

// --- Scenario Command ---

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Print the sale × purchase scenario matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, err := service.NewCalculator(cfg.Calculator, service.NewScenarioService())
		if err != nil {
			return err
		}

		// Flag values run through the same parsing path as UI input.
		for flag, apply := range map[string]func(string) error{
			"sale":     func(v string) error { return calc.SetMainSlider(service.SectionSale, v) },
			"payoff":   func(v string) error { return calc.SetMainSlider(service.SectionPayoff, v) },
			"purchase": func(v string) error { return calc.SetMainSlider(service.SectionPurchase, v) },
			"target":   func(v string) error { return calc.SetTargetPayment(v) },
		} {
			if cmd.Flags().Changed(flag) {
				v, _ := cmd.Flags().GetString(flag)
				if err := apply(v); err != nil {
					return err
				}
			}
		}
		if cmd.Flags().Changed("confidence") {
			label, _ := cmd.Flags().GetString("confidence")
			for _, section := range []service.Section{service.SectionSale, service.SectionPayoff, service.SectionPurchase} {
				if err := calc.SetConfidence(section, label); err != nil {
					return err
				}
			}
		}

		printScenarioMatrix(calc)
		return nil
	},
}

func init() {
	scenarioCmd.Flags().String("sale", "", "expected sale price")
	scenarioCmd.Flags().String("payoff", "", "total payoff amount")
	scenarioCmd.Flags().String("purchase", "", "expected purchase price")
	scenarioCmd.Flags().String("target", "", "target monthly payment")
	scenarioCmd.Flags().String("confidence", "", "confidence level (Certain, Confident, Likely, Possible, No Idea)")
}

func printScenarioMatrix(calc *service.Calculator) {
	results := calc.Results()
	current := results.Current

	fmt.Printf("Current scenario: sell at $%d, buy at $%d\n", current.SalePrice, current.PurchasePrice)
	fmt.Printf("  net proceeds:    $%.0f\n", current.NetProceeds)
	fmt.Printf("  net at closing:  $%.0f\n", current.NetAtClosing)
	fmt.Printf("  down payment:    $%.0f\n", current.EffectiveDownPayment)
	fmt.Printf("  loan amount:     $%.0f\n", current.LoanAmount)
	fmt.Printf("  monthly payment: $%.2f (%s vs target $%.0f)\n\n",
		current.TotalMonthlyPayment, results.CurrentStatus, calc.TargetPayment())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(w, "sell \\ buy")
	for _, pp := range results.Matrix.PurchasePrices {
		fmt.Fprintf(w, "\t$%d", pp)
	}
	fmt.Fprintln(w)

	for i, sp := range results.Matrix.SalePrices {
		fmt.Fprintf(w, "$%d", sp)
		for _, cell := range results.Matrix.Cells[i] {
			marker := ""
			switch service.ClassifyPayment(cell.TotalMonthlyPayment, calc.TargetPayment()) {
			case domain.PaymentWarning:
				marker = " ~"
			case domain.PaymentInsufficient:
				marker = " !"
			}
			fmt.Fprintf(w, "\t$%.0f%s", cell.TotalMonthlyPayment, marker)
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	fmt.Println("\n~ within 10% of target   ! over target")
}

// --- Amortize Command ---

var amortizeCmd = &cobra.Command{
	Use:   "amortize",
	Short: "Print one page of an amortization schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetFloat64("amount")
		rate, _ := cmd.Flags().GetFloat64("rate")
		term, _ := cmd.Flags().GetFloat64("term")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		mortgageService := service.NewMortgageService(
			repository.NewCalculationRepositoryMemory(),
			repository.NewMockCache(),
			logger,
		)

		result, err := mortgageService.Schedule(domain.ScheduleInput{
			MortgageInput: domain.MortgageInput{
				LoanAmount:   domain.NumberOf(amount),
				InterestRate: domain.NumberOf(rate),
				LoanTerm:     domain.NumberOf(term),
			},
			Page:     domain.NumberOf(float64(page)),
			PageSize: domain.NumberOf(float64(pageSize)),
		})
		if err != nil {
			return err
		}

		s := result.Summary
		fmt.Printf("$%.2f/month over %d months, total $%.2f ($%.2f interest)\n\n",
			s.MonthlyPayment, s.TotalMonths, s.TotalPayment, s.TotalInterest)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "month\tpayment\tprincipal\tinterest\tbalance")
		for _, e := range result.Schedule {
			fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
				e.Month, e.Payment, e.Principal, e.Interest, e.Balance)
		}
		w.Flush()

		fmt.Printf("\npage %d of %d\n", s.CurrentPage, s.TotalPages)
		return nil
	},
}

func init() {
	amortizeCmd.Flags().Float64("amount", 480000, "loan amount")
	amortizeCmd.Flags().Float64("rate", 6.5, "annual interest rate percent")
	amortizeCmd.Flags().Float64("term", 30, "loan term in years")
	amortizeCmd.Flags().Int("page", 1, "schedule page")
	amortizeCmd.Flags().Int("page-size", 12, "months per page")
}
