package main

import (
	"log"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
)

func main() {
	log.Println("Running schema migrations...")

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migrations completed successfully")
}
