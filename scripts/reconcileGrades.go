package main

import (
	"log"

	"lms/config"
	"lms/database"
	"lms/grading"
)

// Recomputes every stored grade from its retained submission and corrects
// drifted scores. Safe to re-run; a second pass corrects nothing.
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	log.Println("Starting grade reconciliation...")

	svc := grading.NewService(database.Database.Db)
	report, err := svc.ReconcileAll()
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	log.Printf("Records inspected: %d", report.Inspected)
	log.Printf("Records corrected: %d", report.Corrected)
	log.Printf("Records unchanged: %d", report.Unchanged)
	log.Printf("Records errored:   %d", report.Errored)
}
