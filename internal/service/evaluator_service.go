package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/schedcore/courseload-engine/internal/engine"
	"github.com/schedcore/courseload-engine/internal/models"
	appErrors "github.com/schedcore/courseload-engine/pkg/errors"
	"github.com/schedcore/courseload-engine/pkg/metrics"
)

type scheduleSnapshotProvider interface {
	// ListByPeriod scopes the snapshot to one school-year/term, the
	// corpus the conflict detector compares against.
	ListByPeriod(ctx context.Context, schoolYear, term string) ([]models.ScheduleRecord, error)
	// ListHistory returns the whole snapshot across periods, which the
	// scorer's recency-weighted factors need.
	ListHistory(ctx context.Context) ([]models.ScheduleRecord, error)
}

type facultyDirectory interface {
	List(ctx context.Context) ([]models.FacultyProfile, error)
}

type attendanceAggregator interface {
	SummaryByFaculty(ctx context.Context, schoolYear, term string) (map[string]models.AttendanceSummary, error)
}

type gradeAggregator interface {
	TimelinessByFaculty(ctx context.Context, schoolYear, term string) (map[string]models.GradeTimelinessSummary, error)
}

// ConflictCheckRequest asks whether a candidate assignment collides
// with the existing snapshot. A candidate needs a term, a time and at
// least one faculty identifier before the engine will look at it.
type ConflictCheckRequest struct {
	Candidate models.CandidateAssignment `json:"candidate" validate:"required"`
}

// RankRequest asks for a ranked faculty suitability list.
type RankRequest struct {
	Candidate         models.CandidateAssignment `json:"candidate" validate:"required"`
	IncludeAttendance bool                       `json:"includeAttendance"`
	IncludeGrades     bool                       `json:"includeGrades"`
}

// EvaluationResult bundles the outputs of a combined evaluation.
type EvaluationResult struct {
	Report *models.ConflictReport `json:"report"`
	Scores []models.FacultyScore  `json:"scores"`
}

// AssignmentEvaluatorService fronts the scoring and conflict engine.
// It owns snapshot fetching, candidate pre-validation, logging and
// metrics; the engine itself stays pure. Indexes and load stats are
// built once per request and shared across every faculty evaluated.
type AssignmentEvaluatorService struct {
	schedules  scheduleSnapshotProvider
	faculty    facultyDirectory
	attendance attendanceAggregator
	grades     gradeAggregator
	scorer     *engine.Scorer
	validator  *validator.Validate
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewAssignmentEvaluatorService wires the evaluator dependencies.
// Attendance and grade aggregators are optional; passing nil leaves
// the corresponding modifiers neutral.
func NewAssignmentEvaluatorService(
	schedules scheduleSnapshotProvider,
	faculty facultyDirectory,
	attendance attendanceAggregator,
	grades gradeAggregator,
	cfg engine.ScoringConfig,
	validate *validator.Validate,
	logger *zap.Logger,
	m *metrics.Metrics,
) (*AssignmentEvaluatorService, error) {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	scorer := engine.NewScorer(cfg)
	if err := scorer.Config().Validate(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidWeights.Code, appErrors.ErrInvalidWeights.Status, "invalid scoring configuration")
	}
	return &AssignmentEvaluatorService{
		schedules:  schedules,
		faculty:    faculty,
		attendance: attendance,
		grades:     grades,
		scorer:     scorer,
		validator:  validate,
		logger:     logger,
		metrics:    m,
	}, nil
}

// CheckConflict evaluates the candidate against the period snapshot.
func (s *AssignmentEvaluatorService) CheckConflict(ctx context.Context, req ConflictCheckRequest) (*models.ConflictReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid conflict check payload")
	}
	if err := s.validateCandidate(req.Candidate, true); err != nil {
		return nil, err
	}

	records, err := s.schedules.ListByPeriod(ctx, req.Candidate.SchoolYear, req.Candidate.Term)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule snapshot")
	}

	idx := engine.BuildScheduleIndex(records)
	report := engine.DetectConflicts(req.Candidate, idx)

	s.observeConflicts("conflict_check", report)
	s.logger.Debug("conflict check complete",
		zap.String("evaluation_id", uuid.NewString()),
		zap.Bool("conflict", report.Conflict),
		zap.Int("details", len(report.Details)),
		zap.Int("records", len(records)),
	)
	return &report, nil
}

// RankFaculty scores every faculty in the directory for the candidate
// and returns them best first.
func (s *AssignmentEvaluatorService) RankFaculty(ctx context.Context, req RankRequest) ([]models.FacultyScore, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid ranking payload")
	}
	if err := s.validateCandidate(req.Candidate, false); err != nil {
		return nil, err
	}

	input, err := s.buildRankInput(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	scores := s.scorer.Rank(*input)
	s.observeRanking(len(input.Faculty), time.Since(start))

	s.logger.Debug("faculty ranking complete",
		zap.String("evaluation_id", uuid.NewString()),
		zap.Int("faculty", len(scores)),
	)
	return scores, nil
}

// Evaluate runs the conflict check and the ranking off one shared
// index, the cheap path for UI flows that need both.
func (s *AssignmentEvaluatorService) Evaluate(ctx context.Context, req RankRequest) (*EvaluationResult, error) {
	if err := s.validateCandidate(req.Candidate, true); err != nil {
		return nil, err
	}

	input, err := s.buildRankInput(ctx, req)
	if err != nil {
		return nil, err
	}

	// Conflicts compare against the candidate's period only; the
	// ranking index spans all history, so the detector gets its own
	// period-scoped view.
	periodRecords, err := s.schedules.ListByPeriod(ctx, req.Candidate.SchoolYear, req.Candidate.Term)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule snapshot")
	}
	report := engine.DetectConflicts(req.Candidate, engine.BuildScheduleIndex(periodRecords))
	s.observeConflicts("evaluate", report)

	start := time.Now()
	scores := s.scorer.Rank(*input)
	s.observeRanking(len(input.Faculty), time.Since(start))

	return &EvaluationResult{Report: &report, Scores: scores}, nil
}

func (s *AssignmentEvaluatorService) buildRankInput(ctx context.Context, req RankRequest) (*engine.RankInput, error) {
	records, err := s.schedules.ListHistory(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule history")
	}
	faculty, err := s.faculty.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculty directory")
	}

	input := &engine.RankInput{
		Candidate: req.Candidate,
		Faculty:   faculty,
		Index:     engine.BuildScheduleIndex(records),
	}
	input.Stats = engine.ComputeLoadStats(faculty, input.Index, s.scorer.Config().LoadBaseline)

	if req.IncludeAttendance && s.attendance != nil {
		input.Attendance, err = s.attendance.SummaryByFaculty(ctx, req.Candidate.SchoolYear, req.Candidate.Term)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance summary")
		}
	}
	if req.IncludeGrades && s.grades != nil {
		input.Grades, err = s.grades.TimelinessByFaculty(ctx, req.Candidate.SchoolYear, req.Candidate.Term)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grade timeliness")
		}
	}
	return input, nil
}

// validateCandidate enforces the minimal completeness contract: a term
// always, and for conflict checks a time plus at least one faculty
// identifier. Unparseable times degrade inside the engine instead of
// erroring here.
func (s *AssignmentEvaluatorService) validateCandidate(cand models.CandidateAssignment, forConflict bool) error {
	if cand.Term == "" {
		return appErrors.Clone(appErrors.ErrValidation, "candidate term is required")
	}
	if forConflict {
		if cand.Time == "" {
			return appErrors.Clone(appErrors.ErrValidation, "candidate time is required for conflict checks")
		}
		if cand.FacultyID == "" && cand.FacultyName == "" {
			return appErrors.Clone(appErrors.ErrValidation, "candidate needs a faculty id or name for conflict checks")
		}
	}
	if cand.CourseCode == "" && cand.CourseTitle == "" {
		return appErrors.Clone(appErrors.ErrValidation, "candidate needs a course code or title")
	}
	return nil
}

func (s *AssignmentEvaluatorService) observeConflicts(operation string, report models.ConflictReport) {
	if s.metrics == nil {
		return
	}
	s.metrics.EvaluationsTotal.WithLabelValues(operation).Inc()
	for _, detail := range report.Details {
		s.metrics.ConflictsTotal.WithLabelValues(detail.Reason).Inc()
	}
}

func (s *AssignmentEvaluatorService) observeRanking(facultyCount int, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.EvaluationsTotal.WithLabelValues("rank").Inc()
	s.metrics.ScoringDuration.Observe(elapsed.Seconds())
	s.metrics.FacultiesPerRanking.Observe(float64(facultyCount))
}
