package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// NewAvailabilitiesCommand creates the availabilities command.
func NewAvailabilitiesCommand() *cobra.Command {
	var (
		providerID int
		serviceID  int
		date       string
	)

	cmd := &cobra.Command{
		Use:     "availabilities",
		Aliases: []string{"availability", "slots"},
		Short:   "Show open time slots for a provider",
		Long:    "Query the open time slots of a provider for a service on a given date",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			availability, err := client.Availabilities().Get(context.Background(), &easyappointments.AvailabilityQuery{
				ProviderID: providerID,
				ServiceID:  serviceID,
				Date:       date,
			})
			if err != nil {
				return fmt.Errorf("failed to get availability: %w", err)
			}

			return outputAvailability(availability)
		},
	}

	cmd.Flags().IntVarP(&providerID, "provider", "p", 0, "provider id (required)")
	cmd.Flags().IntVarP(&serviceID, "service", "s", 0, "service id (defaults to 1)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date in YYYY-MM-DD format (defaults to today)")

	_ = cmd.MarkFlagRequired("provider")

	return cmd
}

func outputAvailability(availability *easyappointments.Availability) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(availability)
	case OutputFormatYAML:
		return StandardYAMLRenderer(availability)
	default:
		return renderAvailabilityTable(availability)
	}
}

func renderAvailabilityTable(availability *easyappointments.Availability) error {
	if availability.IsEmpty() {
		_, _ = os.Stdout.WriteString("No open slots\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Start", "End")

	for _, slot := range availability.Available {
		_ = table.Append(slot.Start, slot.End)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\n%d open slots\n", len(availability.Available))

	return nil
}
