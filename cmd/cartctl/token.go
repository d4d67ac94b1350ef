package main

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	"storefront/internal/util"

	"github.com/spf13/cobra"
)

type tokenReport struct {
	Identity *entity.SessionIdentity `json:"identity"`
	Expired  bool                    `json:"expired"`
	Expires  string                  `json:"expires"`
	Status   entity.SessionStatus    `json:"status"`
}

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Work with session tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "inspect <token>",
		Short: "Decode a token payload without verifying its signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := auth.NewTokenDecoder().Decode(args[0])
			if err != nil {
				return err
			}

			now := time.Now()
			report := tokenReport{
				Identity: identity,
				Expired:  identity.IsExpired(now),
				Expires:  util.FormatExpiry(identity.ExpiresAt, now),
				Status:   entity.SessionLoggedOut,
			}
			switch {
			case report.Expired:
			case identity.Role.IsOwner():
				report.Status = entity.SessionOwner
			case identity.Role.IsCustomer():
				report.Status = entity.SessionCustomer
			}

			return printJSON(cmd.OutOrStdout(), report)
		},
	})

	return cmd
}
