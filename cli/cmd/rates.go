package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rates "github.com/malusev998/exchange-rates"
)

const (
	outputJSON  = "json"
	outputTable = "table"
)

var (
	ErrTooManyDays     = fmt.Errorf("number of days exceeds maximum (%d)", rates.MaxDays)
	ErrNotEnoughDays   = errors.New("number of days must be at least 1")
	ErrInvalidOutput   = errors.New("output must be json or table")
	ErrNoInputPrompt   = errors.New("no input to read from")
	ErrNoCurrencyGiven = errors.New("at least one currency is required")
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
}

func (p *prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInputPrompt
		}

		return "", err
	}

	return strings.TrimSpace(line), nil
}

func validateDays(days int) error {
	if days > rates.MaxDays {
		return ErrTooManyDays
	}

	if days < 1 {
		return ErrNotEnoughDays
	}

	return nil
}

// splitCurrencies accepts repeated flags as well as comma or space separated lists.
func splitCurrencies(values []string) []string {
	result := make([]string, 0, len(values))

	for _, value := range values {
		for _, part := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' }) {
			result = append(result, part)
		}
	}

	return result
}

func parseCurrencies(values []string) ([]rates.Currency, error) {
	values = splitCurrencies(values)
	if len(values) == 0 {
		return nil, ErrNoCurrencyGiven
	}

	currencies, err := rates.ConvertToCurrenciesFromStringSlice(values)
	if err != nil {
		return nil, fmt.Errorf("%w, supported currencies: %s", err, rates.SupportedCurrenciesString())
	}

	return currencies, nil
}

// resolveDays prompts only when days came from none of flag, environment or
// config file. A provided value is validated as is.
func resolveDays(v *viper.Viper, p *prompter) (int, error) {
	if v.IsSet("days") {
		value := v.Get("days")

		days, err := cast.ToIntE(value)
		if err != nil {
			return 0, fmt.Errorf("number of days %q is not a number", fmt.Sprint(value))
		}

		return days, validateDays(days)
	}

	answer, err := p.ask(fmt.Sprintf("Enter number of days (max %d): ", rates.MaxDays))
	if err != nil {
		return 0, err
	}

	days, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("number of days %q is not a number", answer)
	}

	return days, validateDays(days)
}

func resolveCurrencies(v *viper.Viper, p *prompter) ([]rates.Currency, error) {
	values := v.GetStringSlice("currencies")

	if len(splitCurrencies(values)) == 0 {
		answer, err := p.ask("Enter currency (e.g. USD): ")
		if err != nil {
			return nil, err
		}

		values = []string{answer}
	}

	return parseCurrencies(values)
}

func writeJSON(out io.Writer, report rates.Report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(report)
}

func writeTable(out io.Writer, report rates.Report, currencies []rates.Currency) error {
	lines := make([]string, 0, len(report)*len(currencies)+1)
	lines = append(lines, "Date | Currency | Sale | Purchase")

	for _, day := range report {
		for _, c := range currencies {
			pair, ok := day.Rates[c]
			if !ok {
				continue
			}

			lines = append(lines, fmt.Sprintf("%s | %s | %s | %s", day.Date, c, pair.Sale, pair.Purchase))
		}
	}

	_, err := fmt.Fprintln(out, columnize.SimpleFormat(lines))

	return err
}

func uniqueCurrencies(currencies []rates.Currency) []rates.Currency {
	seen := make(map[rates.Currency]struct{}, len(currencies))
	result := make([]rates.Currency, 0, len(currencies))

	for _, c := range currencies {
		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		result = append(result, c)
	}

	return result
}

func ratesCobraCommand(config *Config, v *viper.Viper, output *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if *output != outputJSON && *output != outputTable {
			return ErrInvalidOutput
		}

		p := newPrompter(cmd)

		days, err := resolveDays(v, p)
		if err != nil {
			return err
		}

		currencies, err := resolveCurrencies(v, p)
		if err != nil {
			return err
		}

		currencies = uniqueCurrencies(currencies)

		report, err := config.Analyzer.Analyze(cmd.Context(), days, currencies)
		if err != nil {
			return err
		}

		config.logger.Debug().Int("days", days).Int("entries", len(report)).Msg("exchange rates ready")

		if *output == outputTable {
			return writeTable(cmd.OutOrStdout(), report, currencies)
		}

		return writeJSON(cmd.OutOrStdout(), report)
	}
}

func ratesCommand(config *Config, v *viper.Viper) *cobra.Command {
	var output string

	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Show sale and purchase rates of the chosen currencies for the last days",
		Args:  cobra.NoArgs,
	}

	ratesCmd.RunE = ratesCobraCommand(config, v, &output)
	ratesCmd.Flags().IntP("days", "n", 0, fmt.Sprintf("Number of days to look back, at most %d", rates.MaxDays))
	ratesCmd.Flags().StringSliceP("currency", "c", nil, "Currency to show, can be repeated (e.g. USD,EUR)")
	ratesCmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format: json or table")

	_ = v.BindPFlag("days", ratesCmd.Flags().Lookup("days"))
	_ = v.BindPFlag("currencies", ratesCmd.Flags().Lookup("currency"))

	return ratesCmd
}
