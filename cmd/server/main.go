package main

import (
	"flag"
	"log"

	openaiagent "armbridge/internal/adapter/agent/openai"
	camerafile "armbridge/internal/adapter/camera/file"
	httpadapter "armbridge/internal/adapter/http"
	metricsinmem "armbridge/internal/adapter/metrics/inmemory"
	gormrepo "armbridge/internal/adapter/repo/gorm"
	"armbridge/internal/adapter/repo/memory"
	"armbridge/internal/adapter/transport/tcp"
	"armbridge/internal/app/command"
	"armbridge/internal/app/correlate"
	"armbridge/internal/app/orchestrate"
	"armbridge/internal/app/ports"
	"armbridge/internal/config"
	"armbridge/internal/domain/robot"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	records := buildRecordRepo(cfg)
	link := connectRobot(cfg)
	taskAgent, validator, vision := buildAgents(cfg)

	poses := robot.NewPoseTracker()
	orchestrateUC := orchestrate.UseCase{
		Main:       taskAgent,
		Validator:  validator,
		Validation: cfg.Validation,
	}
	orchestrateUC.ConfigureAgents()

	commandUC := command.UseCase{
		Link:   link,
		Vision: vision,
		Poses:  poses,
	}
	if cfg.Camera.FramePath != "" {
		commandUC.Frames = camerafile.Source{Path: cfg.Camera.FramePath}
	}

	h := httpadapter.Handler{
		OrchestrateUC: orchestrateUC,
		CommandUC:     commandUC,
		Correlator:    correlate.NewTracker(records),
		Records:       records,
		Poses:         poses,
		KPI:           metricsinmem.NewRecorder(),
	}

	s := server.Default(server.WithHostPorts(cfg.ListenAddr))
	h.RegisterRoutes(s)

	log.Printf("armbridge server listening on %s", cfg.ListenAddr)
	s.Spin()
}

func buildRecordRepo(cfg config.Config) ports.ActivityRecordRepository {
	if cfg.Database.DSN == "" {
		log.Println("no database DSN configured, keeping activity records in memory")
		return memory.NewActivityRecordRepo(memory.NewStore())
	}
	db, err := gormrepo.OpenPostgres(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	return gormrepo.NewActivityRecordRepo(db)
}

// connectRobot degrades to a nil link when the controller is disabled or
// unreachable; command dispatch then runs in local-only mode.
func connectRobot(cfg config.Config) ports.RobotLink {
	if !cfg.Robot.Enabled {
		log.Println("robot link disabled by configuration")
		return nil
	}
	session, err := tcp.Connect(cfg.Robot.Host, cfg.Robot.Port)
	if err != nil {
		log.Printf("robot controller unreachable, continuing without hardware: %v", err)
		return nil
	}
	return session
}

func buildAgents(cfg config.Config) (ports.ConversationalAgent, ports.ConversationalAgent, ports.VisionProvider) {
	if cfg.OpenAI.APIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	base := openaiagent.Config{
		APIKey:    cfg.OpenAI.APIKey,
		BaseURL:   cfg.OpenAI.BaseURL,
		Model:     cfg.OpenAI.Model,
		JSONReply: true,
	}

	taskAgent, err := openaiagent.NewAgent(base)
	if err != nil {
		log.Fatalf("build task agent: %v", err)
	}
	validator, err := openaiagent.NewAgent(base)
	if err != nil {
		log.Fatalf("build validation agent: %v", err)
	}
	vision, err := openaiagent.NewVision(base)
	if err != nil {
		log.Fatalf("build vision provider: %v", err)
	}
	return taskAgent, validator, vision
}
