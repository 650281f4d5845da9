package cronjobs

import (
	"context"
	"errors"
	"log"

	"github.com/robfig/cron/v3"

	"go-sentinel/processor"
)

// InitCronJobs schedules the periodic feed refresh. spec is a standard
// five-field cron expression.
func InitCronJobs(spec string, pipeline *processor.Pipeline) (*cron.Cron, error) {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		log.Println("CronJob: Feed refresh running")
		if err := pipeline.Run(context.Background()); err != nil {
			if errors.Is(err, processor.ErrBatchInProgress) {
				log.Println("CronJob: previous batch still running, skipping")
				return
			}
			log.Printf("CronJob: feed refresh failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
