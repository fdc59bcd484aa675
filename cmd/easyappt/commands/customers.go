package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voctra-ai/easy-appointments-client/internal/constants"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List, create, update, and delete customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		page   int
		length int
		sort   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Customers().List(context.Background(), &easyappointments.ListOptions{
				Page:   page,
				Length: length,
				Sort:   sort,
			})
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return outputCustomers(result)
		},
	}

	cmd.Flags().IntVar(&page, "page", easyappointments.DefaultPage, "page number")
	cmd.Flags().IntVar(&length, "length", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&sort, "sort", easyappointments.DefaultSort, "sort field, prefix with - for descending")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			customer, err := client.Customers().Get(context.Background(), customerID)
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return outputRecord(customer, renderCustomerDetail)
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create [json]",
		Short: "Create a customer",
		Long:  "Create a customer from a JSON/YAML file or an inline JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, err := loadRecord[easyappointments.Customer](fromFile, args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			created, err := client.Customers().Create(context.Background(), customer)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			fmt.Printf("Created customer %d\n", created.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "file containing the customer record")

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "update <id> [json]",
		Short: "Update a customer",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(args[0])
			if err != nil {
				return err
			}

			customer, err := loadRecord[easyappointments.Customer](fromFile, args[1:])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			updated, err := client.Customers().Update(context.Background(), customerID, customer)
			if err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}

			fmt.Printf("Updated customer %d\n", updated.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "file containing the customer record")

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			err = client.Customers().Delete(context.Background(), customerID)
			if err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			fmt.Printf("Deleted customer %d\n", customerID)

			return nil
		},
	}
}

func outputCustomers(page *easyappointments.Page[easyappointments.Customer]) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(page)
	case OutputFormatYAML:
		return StandardYAMLRenderer(page)
	default:
		return renderCustomerTable(page)
	}
}

func renderCustomerTable(page *easyappointments.Page[easyappointments.Customer]) error {
	if len(page.Items) == 0 {
		_, _ = os.Stdout.WriteString("No customers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Phone", "City")

	for _, customer := range page.Items {
		_ = table.Append(
			fmt.Sprintf("%d", customer.ID),
			fullName(customer.First, customer.Last),
			valueOrNA(customer.Email),
			valueOrNA(customer.Phone),
			valueOrNA(customer.City),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d\n", page.Total)

	return nil
}

func renderCustomerDetail(customer *easyappointments.Customer) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", fmt.Sprintf("%d", customer.ID))
	_ = table.Append("Name", fullName(customer.First, customer.Last))
	_ = table.Append("Email", valueOrNA(customer.Email))
	_ = table.Append("Phone", valueOrNA(customer.Phone))
	_ = table.Append("Mobile", valueOrNA(customer.Mobile))
	_ = table.Append("Address", valueOrNA(customer.Address))
	_ = table.Append("City", valueOrNA(customer.City))
	_ = table.Append("Zip", valueOrNA(customer.Zip))
	_ = table.Append("Timezone", valueOrNA(customer.Timezone))
	_ = table.Append("Notes", valueOrNA(customer.Notes))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// outputRecord renders a single record with the configured output format,
// falling back to the given table renderer.
func outputRecord[T any](record *T, renderTable func(*T) error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(record)
	case OutputFormatYAML:
		return StandardYAMLRenderer(record)
	default:
		return renderTable(record)
	}
}
