package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/schedcore/courseload-engine/internal/engine"
	"github.com/schedcore/courseload-engine/internal/models"
	"github.com/schedcore/courseload-engine/internal/service"
	"github.com/schedcore/courseload-engine/internal/snapshot"
	"github.com/schedcore/courseload-engine/pkg/config"
	"github.com/schedcore/courseload-engine/pkg/logger"
	"github.com/schedcore/courseload-engine/pkg/metrics"
)

func main() {
	var (
		facultyID   = flag.String("faculty-id", "", "faculty id of the candidate assignment")
		facultyName = flag.String("faculty-name", "", "faculty display name of the candidate assignment")
		term        = flag.String("term", "1st", "term label (1st, 2nd, Sem)")
		schoolYear  = flag.String("school-year", "", "school year, e.g. 2025-2026")
		day         = flag.String("day", "", "day spec, e.g. MWF or TTH")
		timeSpec    = flag.String("time", "", "time spec, e.g. 8-9AM")
		section     = flag.String("section", "", "section/block label")
		courseCode  = flag.String("course-code", "", "course code")
		courseTitle = flag.String("course-title", "", "course title")
		program     = flag.String("program", "", "program code")
		department  = flag.String("department", "", "department")
		excludeID   = flag.String("exclude-id", "", "record id under edit, excluded from conflicts")
		rankOnly    = flag.Bool("rank-only", false, "skip the conflict check and only rank faculty")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	delim := ','
	if cfg.Snapshot.Delimiter != "" {
		delim = rune(cfg.Snapshot.Delimiter[0])
	}
	loader, err := snapshot.Load(snapshot.Files{
		Schedules:  cfg.Snapshot.ScheduleFile,
		Faculty:    cfg.Snapshot.FacultyFile,
		Attendance: cfg.Snapshot.AttendanceFile,
		Grades:     cfg.Snapshot.GradesFile,
		Delimiter:  delim,
	})
	if err != nil {
		log.Fatal("failed to load snapshot files", zap.Error(err))
	}

	m := metrics.New()
	if err := m.Register(prometheus.NewRegistry()); err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	evaluator, err := service.NewAssignmentEvaluatorService(
		loader, loader, loader, loader,
		scoringConfig(cfg.Engine),
		nil, log, m,
	)
	if err != nil {
		log.Fatal("failed to build evaluator", zap.Error(err))
	}

	candidate := models.CandidateAssignment{
		FacultyID:   *facultyID,
		FacultyName: *facultyName,
		Term:        *term,
		SchoolYear:  *schoolYear,
		Day:         *day,
		Time:        *timeSpec,
		Section:     *section,
		CourseCode:  *courseCode,
		CourseTitle: *courseTitle,
		Program:     *program,
		Department:  *department,
		ExcludeID:   *excludeID,
	}

	ctx := context.Background()
	req := service.RankRequest{
		Candidate:         candidate,
		IncludeAttendance: cfg.Snapshot.AttendanceFile != "",
		IncludeGrades:     cfg.Snapshot.GradesFile != "",
	}

	if *rankOnly {
		scores, err := evaluator.RankFaculty(ctx, req)
		if err != nil {
			log.Fatal("ranking failed", zap.Error(err))
		}
		printJSON(service.EvaluationResult{Scores: scores})
		return
	}

	result, err := evaluator.Evaluate(ctx, req)
	if err != nil {
		log.Fatal("evaluation failed", zap.Error(err))
	}
	printJSON(result)
}

// scoringConfig overlays the operator tuning on the engine defaults.
func scoringConfig(overrides config.EngineConfig) engine.ScoringConfig {
	cfg := engine.DefaultScoringConfig()
	if overrides.LoadBaseline > 0 {
		cfg.LoadBaseline = overrides.LoadBaseline
	}
	if overrides.DeptRecencyDecay > 0 {
		cfg.DeptRecencyDecay = overrides.DeptRecencyDecay
	}
	if overrides.TermRecencyDecay > 0 {
		cfg.TermRecencyDecay = overrides.TermRecencyDecay
	}
	if overrides.LogisticCenter > 0 {
		cfg.LogisticCenter = overrides.LogisticCenter
	}
	if overrides.LogisticSlope > 0 {
		cfg.LogisticSlope = overrides.LogisticSlope
	}
	if overrides.SigmaFloorMinutes > 0 {
		cfg.SigmaFloorMinutes = overrides.SigmaFloorMinutes
	}
	if overrides.KernelBandwidthMinutes > 0 {
		cfg.KernelBandwidthMinutes = overrides.KernelBandwidthMinutes
	}
	if overrides.NearestSlotDecayMinutes > 0 {
		cfg.NearestSlotDecayMinutes = overrides.NearestSlotDecayMinutes
	}
	if overrides.WeakMatchThreshold > 0 {
		cfg.WeakMatchThreshold = overrides.WeakMatchThreshold
	}
	if overrides.OverloadForgivenessUnits > 0 {
		cfg.OverloadForgivenessUnits = overrides.OverloadForgivenessUnits
	}
	return cfg
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
