package main

import (
	"log"
	"os"

	"portfoliosim/cmd"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/scheduler"
)

func main() {
	lg := logger.New()
	lg.Infow("starting api", "commitHash", os.Getenv("commit_hash"))

	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	if schedule := deps.Secrets.Simulation.Schedule; schedule != "" {
		s := scheduler.New(lg)
		err = s.AddJob(schedule, scheduler.NewDailySimulationJob(deps.SimulationService))
		if err != nil {
			log.Fatal(err)
		}
		s.Start()
		defer s.Stop()
	}

	err = deps.ApiHandler.StartApi(deps.Secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
