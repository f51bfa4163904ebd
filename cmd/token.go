package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jekabolt/affiliate-dashboard/internal/auth/jwt"
)

var (
	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Mint a dashboard access token",
		Long:  "Mint a signed token for a publisher (--publisher) or for the platform admin (--admin).",
		RunE:  mintToken,
	}

	tokenPublisher int64
	tokenAdmin     bool
	tokenTTL       time.Duration
)

func init() {
	tokenCmd.Flags().Int64Var(&tokenPublisher, "publisher", 0, "publisher id the token is issued to")
	tokenCmd.Flags().BoolVar(&tokenAdmin, "admin", false, "issue an admin token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to auth.jwt_ttl)")
	tokenCmd.MarkFlagsMutuallyExclusive("publisher", "admin")
}

func mintToken(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ja, err := jwt.New(&cfg.Auth)
	if err != nil {
		return err
	}
	ttl := tokenTTL
	if ttl <= 0 {
		ttl = cfg.Auth.JWTTTL
	}

	var tok string
	if tokenAdmin {
		tok, err = jwt.NewToken(ja, ttl, jwt.Claims{Subject: "admin", Role: jwt.RoleAdmin})
	} else {
		if tokenPublisher <= 0 {
			return fmt.Errorf("either --admin or a positive --publisher is required")
		}
		tok, err = jwt.NewPublisherToken(ja, ttl, tokenPublisher)
	}
	if err != nil {
		return fmt.Errorf("can't sign token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
