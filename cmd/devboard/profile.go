package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")

		run(func(a *app) error {
			p := a.profile.Profile()
			if cmd.Flags().Changed("username") || cmd.Flags().Changed("email") {
				if cmd.Flags().Changed("username") {
					p.Username = username
				}
				if cmd.Flags().Changed("email") {
					p.Email = email
				}
				if err := a.profile.Update(p); err != nil {
					return err
				}
				p = a.profile.Profile()
				fmt.Println("Profile updated.")
			}
			fmt.Printf("Username: %s\n", p.Username)
			fmt.Printf("Email:    %s\n", p.Email)
			return nil
		})
	},
}

func init() {
	profileCmd.Flags().String("username", "", "Display name")
	profileCmd.Flags().String("email", "", "Email address")
}
