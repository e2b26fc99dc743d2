package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"petcare-hub/internal/config"
	"petcare-hub/internal/domain/vaccinations"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
)

var (
	flagAdministered string
	flagDose         int
	flagAgeMonths    int
	flagToday        string
	flagJSON         bool
)

var vaccineDueCmd = &cobra.Command{
	Use:   "vaccine-due",
	Short: "Compute the next due date for a vaccine dose",
	Long: `Calcula la próxima fecha de una vacuna sin tocar el storage.

Cachorros (< 12 meses) en serie primaria: +21 días. Resto: +1 año.

Example:
  petcare vaccine-due --administered 2025-03-15 --dose 1 --age-months 3`,
	Args: cobra.NoArgs,
	RunE: runVaccineDue,
}

func init() {
	vaccineDueCmd.Flags().StringVar(&flagAdministered, "administered", "", "administration date YYYY-MM-DD (required)")
	vaccineDueCmd.Flags().IntVar(&flagDose, "dose", 0, "dose number, 1-based (required)")
	vaccineDueCmd.Flags().IntVar(&flagAgeMonths, "age-months", 0, "pet age in months at administration (required)")
	vaccineDueCmd.Flags().StringVar(&flagToday, "today", "", "reference date for status YYYY-MM-DD (default: today in health.timezone)")
	vaccineDueCmd.Flags().BoolVar(&flagJSON, "json", false, "output as JSON")

	_ = vaccineDueCmd.MarkFlagRequired("administered")
	_ = vaccineDueCmd.MarkFlagRequired("dose")
	_ = vaccineDueCmd.MarkFlagRequired("age-months")
}

type vaccineDueOutput struct {
	Administered civil.Date          `json:"administered_on"`
	Dose         int                 `json:"dose"`
	TotalDoses   int                 `json:"total_doses"`
	AgeMonths    int                 `json:"age_months"`
	NextDue      civil.Date          `json:"next_due"`
	Status       vaccinations.Status `json:"status"`
	DaysUntilDue int                 `json:"days_until_due"`
}

func runVaccineDue(cmd *cobra.Command, _ []string) error {
	administered, err := civil.ParseDate(strings.TrimSpace(flagAdministered))
	if err != nil {
		return fmt.Errorf("--administered must be YYYY-MM-DD: %w", err)
	}

	// Misma zona y ventana de "próxima" que el servidor.
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	today := civil.DateOf(time.Now().In(loc))
	if strings.TrimSpace(flagToday) != "" {
		today, err = civil.ParseDate(strings.TrimSpace(flagToday))
		if err != nil {
			return fmt.Errorf("--today must be YYYY-MM-DD: %w", err)
		}
	}

	next, err := vaccinations.NextDue(administered, flagDose, flagAgeMonths)
	if err != nil {
		return err
	}

	total := vaccinations.TotalDosesFor(flagAgeMonths)
	if total < flagDose {
		total = flagDose
	}

	out := vaccineDueOutput{
		Administered: administered,
		Dose:         flagDose,
		TotalDoses:   total,
		AgeMonths:    flagAgeMonths,
		NextDue:      next,
		Status:       vaccinations.StatusOf(next, today, cfg.Health.UpcomingDays),
		DaysUntilDue: next.DaysSince(today),
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "next due: %s (dose %d of %d, %s, %d days)\n",
		out.NextDue, out.Dose, out.TotalDoses, out.Status, out.DaysUntilDue)
	return nil
}
