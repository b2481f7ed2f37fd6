// Package jobs provides scheduled background tasks for the order store.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with seconds
// precision.
//
// # Available Jobs
//
// AutosaveJob exports the whole store on a schedule (every thirty seconds
// by default) and writes the bundle to AUTOSAVE_PATH. The file is replaced
// through a temporary file and a rename, so a crash mid-write leaves the
// previous save intact. On startup the composition root imports that file
// back into an empty store.
//
// # Usage
//
//	autosave := jobs.NewAutosaveJob(exportHandler, cfg.AutosavePath, cfg.AutosaveSchedule, logger)
//	jobManager := jobs.NewJobManager(autosave, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. StopAll performs one
// final save after the scheduler has drained.
package jobs
