package cli

import (
	"github.com/spf13/cobra"
)

func newCreateUserCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create-user <username>",
		Short: "Create and store a keypair for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.userStore()
			if err != nil {
				return err
			}
			keypair, err := users.Create(args[0])
			if err != nil {
				return err
			}
			path, err := users.PathFor(args[0])
			if err != nil {
				return err
			}
			a.printf("Created user %s, keypair saved to %s\n", args[0], path)
			a.printf("Public key: %s\n", keypair.Address())
			return nil
		},
	}
}

func newListUsersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List stored users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.userStore()
			if err != nil {
				return err
			}
			usernames, err := users.List()
			if err != nil {
				return err
			}
			if len(usernames) == 0 {
				a.printf("No users found in %s\n", users.Dir())
				return nil
			}
			for _, username := range usernames {
				keypair, err := users.Load(username)
				if err != nil {
					a.logger.Warn().Err(err).Str("user", username).Msg("skipping unreadable keypair")
					continue
				}
				a.printf("%s %s\n", username, keypair.Address())
			}
			return nil
		},
	}
}
