package cmd

import (
	"fmt"

	"github.com/theirongolddev/goaltrack/internal/config"
	"github.com/theirongolddev/goaltrack/internal/session"
	"github.com/theirongolddev/goaltrack/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagLoginUser int
	flagLoginName string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the user whose goals to track",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored user",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().IntVarP(&flagLoginUser, "user", "u", 0, "User id")
	loginCmd.Flags().StringVar(&flagLoginName, "name", "", "Display name")
	_ = loginCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

// openSessionStore opens only the local store; login and logout never
// talk to the Goal Service.
func openSessionStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.Open(config.DBPath(cfg))
}

func runLogin(cmd *cobra.Command, _ []string) error {
	st, err := openSessionStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	u := session.User{ID: flagLoginUser, Name: flagLoginName}
	if err := session.Save(cmd.Context(), st, u); err != nil {
		return err
	}

	if u.Name != "" {
		fmt.Printf("  Logged in as %s (user %d)\n", u.Name, u.ID)
	} else {
		fmt.Printf("  Logged in as user %d\n", u.ID)
	}
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	st, err := openSessionStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := session.Clear(cmd.Context(), st); err != nil {
		return err
	}
	fmt.Println("  Logged out.")
	return nil
}
