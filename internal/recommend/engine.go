package recommend

import (
	"errors"
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/random"
)

// DefaultLimit is how many drinks a recommendation returns at most
const DefaultLimit = 3

// Path names the filter a recommendation went through
type Path string

const (
	// PathMaxBAC means only the max BAC filter applied
	PathMaxBAC Path = "max_bac"

	// PathDriveTime means the drive-time filter applied on top of max BAC
	PathDriveTime Path = "drive_time"
)

// Config holds configuration for the engine
type Config struct {
	// Policy for the drive-time filter, defaults to DrivePolicySober
	Policy DrivePolicy

	// Limit caps the number of recommended drinks, defaults to DefaultLimit
	Limit int

	// Shuffler randomizes the order of qualifying drinks
	Shuffler random.Shuffler
}

// Engine turns candidate lists into short, shuffled recommendations
type Engine struct {
	policy   DrivePolicy
	limit    int
	shuffler random.Shuffler
}

// New creates a new recommendation engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Shuffler == nil {
		return nil, errors.New("shuffler cannot be nil")
	}

	policy, err := ParseDrivePolicy(string(cfg.Policy))
	if err != nil {
		return nil, err
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &Engine{
		policy:   policy,
		limit:    limit,
		shuffler: cfg.Shuffler,
	}, nil
}

// Policy returns the drive policy the engine applies
func (e *Engine) Policy() DrivePolicy {
	return e.policy
}

// RecommendInput contains parameters for a recommendation
type RecommendInput struct {
	Profile    *models.Profile
	Session    *models.Session
	CurrentBAC float64
	Catalog    []models.Drink
	Now        time.Time
}

// RecommendOutput contains the result of a recommendation
type RecommendOutput struct {
	// Drinks is at most Limit qualifying drinks in random order
	Drinks []models.Drink

	// Path is the filter that produced the candidates
	Path Path

	// Qualified is how many catalog entries passed the filters
	Qualified int
}

// Recommend filters the catalog for the session, shuffles the survivors and
// truncates them to the engine's limit. The drive-time filter is used only
// when the session has a drive time.
func (e *Engine) Recommend(input *RecommendInput) (*RecommendOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Session == nil {
		return nil, ErrNoSession
	}

	var (
		candidates []models.Drink
		path       Path
		err        error
	)
	if input.Session.HasDriveTime() {
		path = PathDriveTime
		candidates, err = CandidatesForDriveTime(input.Profile, input.Session, input.CurrentBAC, input.Catalog, input.Now, e.policy)
	} else {
		path = PathMaxBAC
		candidates, err = CandidatesUnderMaxBAC(input.Profile, input.Session, input.CurrentBAC, input.Catalog)
	}
	if err != nil {
		return nil, err
	}

	qualified := len(candidates)
	e.shuffler.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > e.limit {
		candidates = candidates[:e.limit]
	}

	return &RecommendOutput{
		Drinks:    candidates,
		Path:      path,
		Qualified: qualified,
	}, nil
}
