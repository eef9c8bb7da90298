package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	rates "github.com/malusev998/exchange-rates"
)

func convertCobraCommand(config *Config, amount, currency, date *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		value, err := decimal.NewFromString(*amount)
		if err != nil {
			return fmt.Errorf("amount %q is not a number: %w", *amount, err)
		}

		c, err := rates.ConvertToCurrencyFromString(*currency)
		if err != nil {
			return fmt.Errorf("%w, supported currencies: %s", err, rates.SupportedCurrenciesString())
		}

		var day time.Time

		if *date == "" {
			day = config.now()
		} else if day, err = rates.ParseDate(*date); err != nil {
			return fmt.Errorf("date %q must be formatted as dd.mm.yyyy: %w", *date, err)
		}

		conversion, err := config.Converter.Convert(cmd.Context(), value, c, day)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(
			cmd.OutOrStdout(),
			"%s %s on %s: bank buys for %s UAH, sells for %s UAH\n",
			conversion.Amount,
			conversion.Currency,
			conversion.Date,
			conversion.Bought,
			conversion.Sold,
		)

		return err
	}
}

func convertCommand(config *Config) *cobra.Command {
	var amount, currency, date string

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount of foreign currency to UAH with the national bank rate",
		Args:  cobra.NoArgs,
	}

	convertCmd.RunE = convertCobraCommand(config, &amount, &currency, &date)
	convertCmd.Flags().StringVarP(&amount, "amount", "a", "1", "Amount to convert")
	convertCmd.Flags().StringVarP(&currency, "currency", "c", string(rates.USD), "Currency of the amount")
	convertCmd.Flags().StringVarP(&date, "date", "d", "", "Day of the rate as dd.mm.yyyy, today when empty")

	return convertCmd
}
