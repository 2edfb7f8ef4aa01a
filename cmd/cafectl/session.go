package main

import (
	"fmt"
	"time"

	"boum-cafe/session"

	"github.com/spf13/cobra"
)

func sessionCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage admin sessions",
	}
	cmd.AddCommand(sessionIssueCmd(e))
	return cmd
}

func sessionIssueCmd(e *env) *cobra.Command {
	var ttl time.Duration
	var subject string

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Store a new admin session token and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive, got %s", ttl)
			}
			client := e.redis()
			defer client.Close()

			token, err := session.NewRedisStore(client).Issue(cmd.Context(), subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "how long the session stays valid")
	cmd.Flags().StringVar(&subject, "subject", "cafectl", "who the session is issued to")
	return cmd
}
