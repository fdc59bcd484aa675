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

// NewAdminsCommand creates the admins command group.
func NewAdminsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "admins",
		Aliases: []string{"admin"},
		Short:   "Manage administrators",
		Long:    "List, create, update, and delete administrator accounts",
	}

	cmd.AddCommand(newAdminsListCommand())
	cmd.AddCommand(newAdminsGetCommand())
	cmd.AddCommand(newAdminsCreateCommand())
	cmd.AddCommand(newAdminsUpdateCommand())
	cmd.AddCommand(newAdminsDeleteCommand())

	return cmd
}

func newAdminsListCommand() *cobra.Command {
	var (
		page   int
		length int
		sort   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List administrators",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Admins().List(context.Background(), &easyappointments.ListOptions{
				Page:   page,
				Length: length,
				Sort:   sort,
			})
			if err != nil {
				return fmt.Errorf("failed to list admins: %w", err)
			}

			return outputAdmins(result)
		},
	}

	cmd.Flags().IntVar(&page, "page", easyappointments.DefaultPage, "page number")
	cmd.Flags().IntVar(&length, "length", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&sort, "sort", easyappointments.DefaultSort, "sort field, prefix with - for descending")

	return cmd
}

func newAdminsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an administrator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adminID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			admin, err := client.Admins().Get(context.Background(), adminID)
			if err != nil {
				return fmt.Errorf("failed to get admin: %w", err)
			}

			return outputRecord(admin, renderAdminDetail)
		},
	}
}

func newAdminsCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create [json]",
		Short: "Create an administrator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := loadRecord[easyappointments.Admin](fromFile, args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			created, err := client.Admins().Create(context.Background(), admin)
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			fmt.Printf("Created admin %d\n", created.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "file containing the admin record")

	return cmd
}

func newAdminsUpdateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "update <id> [json]",
		Short: "Update an administrator",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			adminID, err := parseID(args[0])
			if err != nil {
				return err
			}

			admin, err := loadRecord[easyappointments.Admin](fromFile, args[1:])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			updated, err := client.Admins().Update(context.Background(), adminID, admin)
			if err != nil {
				return fmt.Errorf("failed to update admin: %w", err)
			}

			fmt.Printf("Updated admin %d\n", updated.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "file containing the admin record")

	return cmd
}

func newAdminsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an administrator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adminID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			err = client.Admins().Delete(context.Background(), adminID)
			if err != nil {
				return fmt.Errorf("failed to delete admin: %w", err)
			}

			fmt.Printf("Deleted admin %d\n", adminID)

			return nil
		},
	}
}

func outputAdmins(page *easyappointments.Page[easyappointments.Admin]) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(page)
	case OutputFormatYAML:
		return StandardYAMLRenderer(page)
	default:
		return renderAdminTable(page)
	}
}

func renderAdminTable(page *easyappointments.Page[easyappointments.Admin]) error {
	if len(page.Items) == 0 {
		_, _ = os.Stdout.WriteString("No admins found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Phone")

	for _, admin := range page.Items {
		_ = table.Append(
			fmt.Sprintf("%d", admin.ID),
			fullName(admin.First, admin.Last),
			valueOrNA(admin.Email),
			valueOrNA(admin.Phone),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d\n", page.Total)

	return nil
}

func renderAdminDetail(admin *easyappointments.Admin) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", fmt.Sprintf("%d", admin.ID))
	_ = table.Append("Name", fullName(admin.First, admin.Last))
	_ = table.Append("Email", valueOrNA(admin.Email))
	_ = table.Append("Mobile", valueOrNA(admin.Mobile))
	_ = table.Append("Phone", valueOrNA(admin.Phone))
	_ = table.Append("Timezone", valueOrNA(admin.Timezone))
	_ = table.Append("Language", valueOrNA(admin.Language))

	if admin.Settings != nil {
		_ = table.Append("Username", valueOrNA(admin.Settings.Username))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
