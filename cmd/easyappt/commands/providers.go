package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voctra-ai/easy-appointments-client/internal/constants"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// NewProvidersCommand creates the providers command group.
func NewProvidersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"provider"},
		Short:   "Manage service providers",
		Long:    "List, create, update, and delete service providers",
	}

	cmd.AddCommand(newProvidersListCommand())
	cmd.AddCommand(newProvidersGetCommand())
	cmd.AddCommand(newProvidersCreateCommand())
	cmd.AddCommand(newProvidersUpdateCommand())
	cmd.AddCommand(newProvidersDeleteCommand())

	return cmd
}

func newProvidersListCommand() *cobra.Command {
	var (
		page   int
		length int
		sort   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Providers().List(context.Background(), &easyappointments.ListOptions{
				Page:   page,
				Length: length,
				Sort:   sort,
			})
			if err != nil {
				return fmt.Errorf("failed to list providers: %w", err)
			}

			return outputProviders(result)
		},
	}

	cmd.Flags().IntVar(&page, "page", easyappointments.DefaultPage, "page number")
	cmd.Flags().IntVar(&length, "length", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&sort, "sort", easyappointments.DefaultSort, "sort field, prefix with - for descending")

	return cmd
}

func newProvidersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			provider, err := client.Providers().Get(context.Background(), providerID)
			if err != nil {
				return fmt.Errorf("failed to get provider: %w", err)
			}

			return outputRecord(provider, renderProviderDetail)
		},
	}
}

func newProvidersCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create [json]",
		Short: "Create a provider",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := loadRecord[easyappointments.Provider](fromFile, args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			created, err := client.Providers().Create(context.Background(), provider)
			if err != nil {
				return fmt.Errorf("failed to create provider: %w", err)
			}

			fmt.Printf("Created provider %d\n", created.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "file containing the provider record")

	return cmd
}

func newProvidersUpdateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "update <id> [json]",
		Short: "Update a provider",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerID, err := parseID(args[0])
			if err != nil {
				return err
			}

			provider, err := loadRecord[easyappointments.Provider](fromFile, args[1:])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			updated, err := client.Providers().Update(context.Background(), providerID, provider)
			if err != nil {
				return fmt.Errorf("failed to update provider: %w", err)
			}

			fmt.Printf("Updated provider %d\n", updated.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "file containing the provider record")

	return cmd
}

func newProvidersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			err = client.Providers().Delete(context.Background(), providerID)
			if err != nil {
				return fmt.Errorf("failed to delete provider: %w", err)
			}

			fmt.Printf("Deleted provider %d\n", providerID)

			return nil
		},
	}
}

func outputProviders(page *easyappointments.Page[easyappointments.Provider]) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(page)
	case OutputFormatYAML:
		return StandardYAMLRenderer(page)
	default:
		return renderProviderTable(page)
	}
}

func renderProviderTable(page *easyappointments.Page[easyappointments.Provider]) error {
	if len(page.Items) == 0 {
		_, _ = os.Stdout.WriteString("No providers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Services")

	for _, provider := range page.Items {
		_ = table.Append(
			fmt.Sprintf("%d", provider.ID),
			fullName(provider.First, provider.Last),
			valueOrNA(provider.Email),
			formatServiceIDs(provider.Services),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d\n", page.Total)

	return nil
}

func renderProviderDetail(provider *easyappointments.Provider) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", fmt.Sprintf("%d", provider.ID))
	_ = table.Append("Name", fullName(provider.First, provider.Last))
	_ = table.Append("Email", valueOrNA(provider.Email))
	_ = table.Append("Phone", valueOrNA(provider.Phone))
	_ = table.Append("Timezone", valueOrNA(provider.Timezone))
	_ = table.Append("Services", formatServiceIDs(provider.Services))

	if provider.Settings != nil {
		_ = table.Append("Username", valueOrNA(provider.Settings.Username))

		if provider.Settings.WorkingPlan != nil {
			_ = table.Append("Working plan", formatWorkingPlan(provider.Settings.WorkingPlan))
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func formatServiceIDs(services []int) string {
	if len(services) == 0 {
		return NotAvailable
	}

	parts := make([]string, 0, len(services))
	for _, id := range services {
		parts = append(parts, fmt.Sprintf("%d", id))
	}

	return strings.Join(parts, ", ")
}

func formatWorkingPlan(plan *easyappointments.WorkingPlan) string {
	days := []struct {
		name string
		day  *easyappointments.WorkingDay
	}{
		{"Mon", plan.Monday}, {"Tue", plan.Tuesday}, {"Wed", plan.Wednesday},
		{"Thu", plan.Thursday}, {"Fri", plan.Friday},
		{"Sat", plan.Saturday}, {"Sun", plan.Sunday},
	}

	parts := make([]string, 0, len(days))

	for _, entry := range days {
		if entry.day == nil || entry.day.Start == "" {
			continue
		}

		parts = append(parts, fmt.Sprintf("%s %s-%s", entry.name, entry.day.Start, entry.day.End))
	}

	if len(parts) == 0 {
		return NotAvailable
	}

	return strings.Join(parts, ", ")
}
