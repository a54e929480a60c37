package cmd

import (
	"log"

	"github.com/AshutoshKD/MonkeyChat/internal/crypto"
	"github.com/AshutoshKD/MonkeyChat/internal/dal"
	"github.com/AshutoshKD/MonkeyChat/internal/db"
	"github.com/spf13/cobra"
)

// inviteCmd represents the create-invite command.
var inviteCmd = &cobra.Command{
	Use:   "create-invite",
	Short: "Generate an invite code for one new user registration",
	Args:  cobra.MaximumNArgs(0),
	Run:   generateInvite,
}

func init() {
	rootCmd.AddCommand(inviteCmd)
}

func generateInvite(_ *cobra.Command, _ []string) {
	inviteCode := crypto.GenerateInviteCode()
	db := db.GetDB()
	if err := dal.AddInviteCode(db, inviteCode); err != nil {
		log.Fatalf("error creating invite code: %v", err)
	}
	log.Printf("Generated Invite Code: %s", inviteCode)
}
