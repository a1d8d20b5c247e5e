package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

// Secretaries have no staff record, so their identities are provisioned
// out-of-band with this tool.
func main() {
	username := flag.String("username", "", "login username")
	password := flag.String("password", "", "initial password")
	email := flag.String("email", "", "contact email (optional)")
	role := flag.String("role", string(models.RoleSecretary), "account role")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Println("Usage: add_user -username <name> -password <secret> [-email <addr>] [-role <role>]")
		os.Exit(1)
	}
	if !models.Role(*role).Valid() {
		fmt.Printf("Invalid role %q\n", *role)
		os.Exit(1)
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Username: *username,
		Password: *password,
		Email:    *email,
		Role:     models.Role(*role),
	}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("User created successfully: %s (%s)\n", user.Username, user.Role)
}
