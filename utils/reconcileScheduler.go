package utils

import (
	"log"

	"lms/config"
	"lms/database"
	"lms/grading"

	"github.com/robfig/cron/v3"
)

// InitializeReconcileScheduler sets up the nightly grade reconciliation job
func InitializeReconcileScheduler() {
	log.Println("[RECONCILE-SCHEDULER] Initializing grade reconciliation scheduler...")

	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.ReconcileCron, func() {
		log.Println("[RECONCILE-SCHEDULER] Running grade reconciliation...")
		svc := grading.NewService(database.Database.Db)
		report, err := svc.ReconcileAll()
		if err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Reconciliation failed: %v", err)
			return
		}
		log.Printf("[RECONCILE-SCHEDULER] Done: inspected=%d corrected=%d unchanged=%d errored=%d",
			report.Inspected, report.Corrected, report.Unchanged, report.Errored)
	})
	if err != nil {
		log.Printf("[RECONCILE-SCHEDULER] Invalid cron expression %q: %v", config.AppConfig.ReconcileCron, err)
		return
	}

	c.Start()
	log.Printf("[RECONCILE-SCHEDULER] Scheduler started with schedule %q", config.AppConfig.ReconcileCron)
}
