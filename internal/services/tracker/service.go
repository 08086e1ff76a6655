package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/bactrack/internal/bac"
	"github.com/KirkDiggler/bactrack/internal/common/clock"
	"github.com/KirkDiggler/bactrack/internal/common/log"
	"github.com/KirkDiggler/bactrack/internal/common/uuid"
	"github.com/KirkDiggler/bactrack/internal/metrics"
	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/recommend"
	catalogRepo "github.com/KirkDiggler/bactrack/internal/repositories/catalog"
	drinkLogRepo "github.com/KirkDiggler/bactrack/internal/repositories/drink_log"
	profileRepo "github.com/KirkDiggler/bactrack/internal/repositories/profile"
	readingRepo "github.com/KirkDiggler/bactrack/internal/repositories/reading"
	sessionRepo "github.com/KirkDiggler/bactrack/internal/repositories/session"
	"github.com/KirkDiggler/bactrack/internal/sessions"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// service implements the Service interface
type service struct {
	profileRepo   profileRepo.Repository
	sessionRepo   sessionRepo.Repository
	catalogRepo   catalogRepo.Repository
	readingRepo   readingRepo.Repository
	drinkLogRepo  drinkLogRepo.Repository
	engine        *recommend.Engine
	clock         clock.Clock
	uuidGenerator uuid.UUID
	passwordCost  int
	logger        zerolog.Logger
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.CatalogRepo == nil {
		return nil, ErrNilCatalogRepo
	}
	if cfg.ReadingRepo == nil {
		return nil, ErrNilReadingRepo
	}
	if cfg.DrinkLogRepo == nil {
		return nil, ErrNilDrinkLogRepo
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	cost := cfg.PasswordCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &service{
		profileRepo:   cfg.ProfileRepo,
		sessionRepo:   cfg.SessionRepo,
		catalogRepo:   cfg.CatalogRepo,
		readingRepo:   cfg.ReadingRepo,
		drinkLogRepo:  cfg.DrinkLogRepo,
		engine:        cfg.Engine,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		passwordCost:  cost,
		logger:        log.WithComponent("tracker"),
	}, nil
}

// Register creates a drinker profile
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrMissingUsername
	}

	sex, err := models.ParseSex(input.Sex)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Username:    username,
		DateOfBirth: input.DateOfBirth,
		Sex:         sex,
		WeightKg:    input.WeightKg,
		CreatedAt:   s.clock.Now(),
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.passwordCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		profile.PasswordHash = string(hash)
	}

	err = s.profileRepo.CreateProfile(ctx, &profileRepo.CreateProfileInput{
		Profile: profile,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileExists) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info().
		Str("username", username).
		Str("sex", string(sex)).
		Msg("profile registered")

	return &RegisterOutput{
		Profile: profile,
	}, nil
}

// Login checks a drinker's password against the stored hash
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	profile, err := s.getProfile(ctx, input.Username)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrMissingUsername) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if profile.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &LoginOutput{
		Profile: profile,
	}, nil
}

// UpdateProfile changes a drinker's sex or weight
func (s *service) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	profile, err := s.getProfile(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	if input.Sex != "" {
		sex, err := models.ParseSex(input.Sex)
		if err != nil {
			return nil, err
		}
		profile.Sex = sex
	}
	if input.WeightKg != 0 {
		profile.WeightKg = input.WeightKg
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{Profile: profile}); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &UpdateProfileOutput{
		Profile: profile,
	}, nil
}

// StartSession begins a drinking session for an existing profile
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	profile, err := s.getProfile(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	output, err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Username:  profile.Username,
		MaxBAC:    input.MaxBAC,
		StartTime: s.clock.Now(),
		DriveTime: input.DriveTime,
	})
	if err != nil {
		if errors.Is(err, models.ErrMissingMaxBAC) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	metrics.RecordSessionStarted(output.Session.HasDriveTime())
	s.logger.Info().
		Str("username", profile.Username).
		Str("session_id", output.Session.ID).
		Float64("max_bac", output.Session.MaxBAC).
		Bool("drive_time", output.Session.HasDriveTime()).
		Msg("session started")

	return &StartSessionOutput{
		Session: output.Session,
	}, nil
}

// GetCurrentSession returns the drinker's current session
func (s *service) GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrMissingUsername
	}

	session, err := s.currentSession(ctx, username)
	if err != nil {
		return nil, err
	}

	return &GetCurrentSessionOutput{
		Session: session,
	}, nil
}

// RecordReading stores a BAC reading against the current session
func (s *service) RecordReading(ctx context.Context, input *RecordReadingInput) (*RecordReadingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := models.ValidateBAC(input.BAC); err != nil {
		return nil, err
	}

	profile, err := s.getProfile(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	session, err := s.currentSession(ctx, profile.Username)
	if err != nil {
		return nil, err
	}

	source := input.Source
	if source == "" {
		source = models.ReadingSourceManual
	}

	rd := &models.Reading{
		ID:        s.uuidGenerator.NewUUID(),
		SessionID: session.ID,
		Username:  profile.Username,
		BAC:       input.BAC,
		Source:    source,
		TakenAt:   s.clock.Now(),
	}
	if err := s.readingRepo.AddReading(ctx, &readingRepo.AddReadingInput{Reading: rd}); err != nil {
		return nil, fmt.Errorf("failed to record reading: %w", err)
	}

	metrics.RecordReading(string(source))
	s.logger.Debug().
		Str("username", profile.Username).
		Str("session_id", session.ID).
		Float64("bac", rd.BAC).
		Str("source", string(source)).
		Msg("reading recorded")

	return &RecordReadingOutput{
		Reading: rd,
	}, nil
}

// LogDrink records a catalog drink against the current session
func (s *service) LogDrink(ctx context.Context, input *LogDrinkInput) (*LogDrinkOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	profile, err := s.getProfile(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	session, err := s.currentSession(ctx, profile.Username)
	if err != nil {
		return nil, err
	}

	drink, err := s.catalogRepo.GetDrink(ctx, &catalogRepo.GetDrinkInput{Name: input.DrinkName})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDrinkNotFound) {
			return nil, ErrUnknownDrink
		}
		return nil, fmt.Errorf("failed to get drink: %w", err)
	}

	entry := &models.DrinkLog{
		ID:             s.uuidGenerator.NewUUID(),
		SessionID:      session.ID,
		Username:       profile.Username,
		DrinkName:      drink.Name,
		StandardDrinks: drink.StandardDrinks(),
		ConsumedAt:     s.clock.Now(),
	}
	if err := s.drinkLogRepo.AddDrinkLog(ctx, &drinkLogRepo.AddDrinkLogInput{Entry: entry}); err != nil {
		return nil, fmt.Errorf("failed to log drink: %w", err)
	}

	metrics.RecordDrink()

	estimate, err := s.estimateBAC(ctx, profile, session)
	if err != nil {
		return nil, err
	}

	return &LogDrinkOutput{
		Entry:        entry,
		EstimatedBAC: estimate,
	}, nil
}

// GetRecommendations suggests drinks for the drinker's current session
func (s *service) GetRecommendations(ctx context.Context, input *GetRecommendationsInput) (*GetRecommendationsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	profile, err := s.getProfile(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	session, err := s.currentSession(ctx, profile.Username)
	if err != nil {
		return nil, err
	}

	currentBAC, source, err := s.resolveBAC(ctx, profile, session, input.BAC)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalogRepo.GetCatalog(ctx, &catalogRepo.GetCatalogInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	result, err := s.engine.Recommend(&recommend.RecommendInput{
		Profile:    profile,
		Session:    session,
		CurrentBAC: currentBAC,
		Catalog:    catalog.Drinks,
		Now:        s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordRecommendation(string(result.Path), result.Qualified)
	s.logger.Debug().
		Str("username", profile.Username).
		Str("session_id", session.ID).
		Float64("bac", currentBAC).
		Str("bac_source", string(source)).
		Str("path", string(result.Path)).
		Int("qualified", result.Qualified).
		Msg("recommendation served")

	return &GetRecommendationsOutput{
		Session:    session,
		CurrentBAC: currentBAC,
		BACSource:  source,
		Drinks:     result.Drinks,
		Path:       result.Path,
		Qualified:  result.Qualified,
	}, nil
}

// GetDriveStatus reports when the drinker will be at or under the legal limit
func (s *service) GetDriveStatus(ctx context.Context, input *GetDriveStatusInput) (*GetDriveStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	profile, err := s.getProfile(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	session, err := s.currentSession(ctx, profile.Username)
	if err != nil {
		return nil, err
	}

	currentBAC, source, err := s.resolveBAC(ctx, profile, session, input.BAC)
	if err != nil {
		return nil, err
	}

	wait, err := bac.TimeUntilCanDrive(profile, currentBAC)
	if err != nil {
		return nil, err
	}

	canDriveAt := s.clock.Now().Add(wait)
	output := &GetDriveStatusOutput{
		CurrentBAC:        currentBAC,
		BACSource:         source,
		TimeUntilCanDrive: wait,
		CanDriveAt:        canDriveAt,
		DriveTime:         session.DriveTime,
	}
	if session.HasDriveTime() {
		output.OnTrack = !canDriveAt.After(*session.DriveTime)
	}

	return output, nil
}

// ImportCatalog adds or replaces catalog drinks in the given order
func (s *service) ImportCatalog(ctx context.Context, input *ImportCatalogInput) (*ImportCatalogOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	for i := range input.Drinks {
		drink := input.Drinks[i]
		if err := s.catalogRepo.SaveDrink(ctx, &catalogRepo.SaveDrinkInput{Drink: &drink}); err != nil {
			return nil, fmt.Errorf("failed to save drink %q: %w", drink.Name, err)
		}
	}

	s.logger.Info().Int("drinks", len(input.Drinks)).Msg("catalog imported")

	return &ImportCatalogOutput{
		Imported: len(input.Drinks),
	}, nil
}

// ListDrinks returns the catalog
func (s *service) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	catalog, err := s.catalogRepo.GetCatalog(ctx, &catalogRepo.GetCatalogInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	return &ListDrinksOutput{
		Drinks: catalog.Drinks,
	}, nil
}

func (s *service) getProfile(ctx context.Context, username string) (*models.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrMissingUsername
	}

	profile, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{Username: username})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (s *service) currentSession(ctx context.Context, username string) (*models.Session, error) {
	output, err := s.sessionRepo.GetSessionsForProfile(ctx, &sessionRepo.GetSessionsForProfileInput{
		Username: username,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	session := sessions.Current(username, output.Sessions, s.clock.Now())
	if session == nil {
		return nil, ErrNoActiveSession
	}

	return session, nil
}

// resolveBAC picks the BAC to work from: an explicit value, then the latest
// reading of the session, then an estimate from the drinks logged in it.
func (s *service) resolveBAC(ctx context.Context, profile *models.Profile, session *models.Session, explicit *float64) (float64, models.ReadingSource, error) {
	if explicit != nil {
		if err := models.ValidateBAC(*explicit); err != nil {
			return 0, "", err
		}
		return *explicit, models.ReadingSourceManual, nil
	}

	latest, err := s.readingRepo.GetLatestReading(ctx, &readingRepo.GetLatestReadingInput{SessionID: session.ID})
	if err != nil {
		return 0, "", fmt.Errorf("failed to get latest reading: %w", err)
	}
	if latest != nil {
		return latest.BAC, latest.Source, nil
	}

	estimate, err := s.estimateBAC(ctx, profile, session)
	if err != nil {
		return 0, "", err
	}
	return estimate, models.ReadingSourceEstimate, nil
}

func (s *service) estimateBAC(ctx context.Context, profile *models.Profile, session *models.Session) (float64, error) {
	logs, err := s.drinkLogRepo.GetDrinkLogsForSession(ctx, &drinkLogRepo.GetDrinkLogsForSessionInput{
		SessionID: session.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get drink logs: %w", err)
	}

	var elapsed time.Duration
	if len(logs.Entries) > 0 {
		elapsed = s.clock.Now().Sub(logs.Entries[0].ConsumedAt)
	}

	return bac.Estimate(profile, logs.TotalStandardDrinks(), elapsed)
}
