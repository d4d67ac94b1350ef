package main

import (
	"fmt"
	"os"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/qrcode"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newQRCmd() *cobra.Command {
	var (
		shopID string
		amount string
		out    string
		payee  string
		size   int
		level  string
	)

	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Render a payment QR code as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return errors.Wrap(err, "amount must be a decimal number")
			}

			png, err := qrcode.NewQRCodeService(size, level, payee).GeneratePaymentQR(entity.ID(shopID), value)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(png)

				return errors.WithStack(err)
			}

			if err := os.WriteFile(out, png, 0o644); err != nil {
				return errors.Wrap(err, "failed to write QR code")
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s, sha256 %s)\n", out, util.FormatBytes(int64(len(png))), util.Checksum(png))

			return nil
		},
	}

	cmd.Flags().StringVar(&shopID, "shop", "", "shop id")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to pay")
	cmd.Flags().StringVar(&out, "out", "payment.png", "output file, - for stdout")
	cmd.Flags().StringVar(&payee, "payee", "", "payee printed in the payload")
	cmd.Flags().IntVar(&size, "size", 256, "image size in pixels")
	cmd.Flags().StringVar(&level, "level", "M", "error correction level (L, M, Q, H)")
	_ = cmd.MarkFlagRequired("shop")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
