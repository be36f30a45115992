package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/recordemit/internal/domain"
)

func phoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone [number]",
		Short: "Check that a phone number carries at least 10 digits",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			number := domain.DefaultPhone
			if len(args) == 1 {
				number = args[0]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Phone valid: %t\n", domain.ValidPhone(number))
		},
	}
}
