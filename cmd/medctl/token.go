package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token <clinic-id>",
		Short: "Issue an access token for an existing clinic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withComponents(cmd.Context(), root, func(c *components) error {
				clinic, err := c.Clinics.GetClinic(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				token, err := c.Tokens.GenerateClinicToken(clinic.ID)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.ErrOrStderr(), "Token for %q valid for %s\n", clinic.Name, c.Tokens.TokenDuration())
				fmt.Fprintln(cmd.OutOrStdout(), token)

				return nil
			})
		},
	}
}
