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

// NewAppointmentsCommand creates the appointments command group.
func NewAppointmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appointment", "appt"},
		Short:   "Manage appointments",
		Long:    "List, create, update, cancel, and delete appointments",
	}

	cmd.AddCommand(newAppointmentsListCommand())
	cmd.AddCommand(newAppointmentsGetCommand())
	cmd.AddCommand(newAppointmentsCreateCommand())
	cmd.AddCommand(newAppointmentsUpdateCommand())
	cmd.AddCommand(newAppointmentsCancelCommand())
	cmd.AddCommand(newAppointmentsDeleteCommand())

	return cmd
}

func newAppointmentsListCommand() *cobra.Command {
	var (
		page   int
		length int
		sort   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Appointments().List(context.Background(), &easyappointments.ListOptions{
				Page:   page,
				Length: length,
				Sort:   sort,
			})
			if err != nil {
				return fmt.Errorf("failed to list appointments: %w", err)
			}

			return outputAppointments(result)
		},
	}

	cmd.Flags().IntVar(&page, "page", easyappointments.DefaultPage, "page number")
	cmd.Flags().IntVar(&length, "length", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&sort, "sort", easyappointments.DefaultSort, "sort field, prefix with - for descending")

	return cmd
}

func newAppointmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointmentID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			appointment, err := client.Appointments().Get(context.Background(), appointmentID)
			if err != nil {
				return fmt.Errorf("failed to get appointment: %w", err)
			}

			if appointment == nil {
				_, _ = os.Stdout.WriteString("Appointment not found\n")

				return nil
			}

			return outputRecord(appointment, renderAppointmentDetail)
		},
	}
}

func newAppointmentsCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create [json]",
		Short: "Create an appointment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointment, err := loadRecord[easyappointments.Appointment](fromFile, args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			created, err := client.Appointments().Create(context.Background(), appointment)
			if err != nil {
				return fmt.Errorf("failed to create appointment: %w", err)
			}

			fmt.Printf("Created appointment %d\n", created.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "file containing the appointment record")

	return cmd
}

func newAppointmentsUpdateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "update <id> [json]",
		Short: "Update an appointment",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointmentID, err := parseID(args[0])
			if err != nil {
				return err
			}

			appointment, err := loadRecord[easyappointments.Appointment](fromFile, args[1:])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			updated, err := client.Appointments().Update(context.Background(), appointmentID, appointment)
			if err != nil {
				return fmt.Errorf("failed to update appointment: %w", err)
			}

			fmt.Printf("Updated appointment %d\n", updated.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "file containing the appointment record")

	return cmd
}

func newAppointmentsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an appointment",
		Long:  "Set an appointment's status to Cancelled without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointmentID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			ctx := context.Background()

			appointment, err := client.Appointments().Get(ctx, appointmentID)
			if err != nil {
				return fmt.Errorf("failed to get appointment: %w", err)
			}

			if appointment == nil {
				return fmt.Errorf("appointment %d: %w", appointmentID, ErrAppointmentNotFound)
			}

			appointment.Status = easyappointments.StatusCancelled

			_, err = client.Appointments().Update(ctx, appointmentID, appointment)
			if err != nil {
				return fmt.Errorf("failed to cancel appointment: %w", err)
			}

			fmt.Printf("Cancelled appointment %d\n", appointmentID)

			return nil
		},
	}
}

func newAppointmentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointmentID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}
			defer client.Close()

			err = client.Appointments().Delete(context.Background(), appointmentID)
			if err != nil {
				return fmt.Errorf("failed to delete appointment: %w", err)
			}

			fmt.Printf("Deleted appointment %d\n", appointmentID)

			return nil
		},
	}
}

func outputAppointments(page *easyappointments.Page[easyappointments.Appointment]) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(page)
	case OutputFormatYAML:
		return StandardYAMLRenderer(page)
	default:
		return renderAppointmentTable(page)
	}
}

func renderAppointmentTable(page *easyappointments.Page[easyappointments.Appointment]) error {
	if len(page.Items) == 0 {
		_, _ = os.Stdout.WriteString("No appointments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Start", "End", "Customer", "Provider", "Service", "Status")

	for _, appointment := range page.Items {
		_ = table.Append(
			fmt.Sprintf("%d", appointment.ID),
			appointment.Start,
			appointment.End,
			fmt.Sprintf("%d", appointment.CustomerID),
			fmt.Sprintf("%d", appointment.ProviderID),
			fmt.Sprintf("%d", appointment.ServiceID),
			string(appointment.Status),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d\n", page.Total)

	return nil
}

func renderAppointmentDetail(appointment *easyappointments.Appointment) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", fmt.Sprintf("%d", appointment.ID))
	_ = table.Append("Start", appointment.Start)
	_ = table.Append("End", appointment.End)
	_ = table.Append("Customer", fmt.Sprintf("%d", appointment.CustomerID))
	_ = table.Append("Provider", fmt.Sprintf("%d", appointment.ProviderID))
	_ = table.Append("Service", fmt.Sprintf("%d", appointment.ServiceID))
	_ = table.Append("Status", string(appointment.Status))
	_ = table.Append("Location", valueOrNA(appointment.Location))
	_ = table.Append("Notes", valueOrNA(appointment.Notes))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
