package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/bactrack/internal/bac"
	"github.com/KirkDiggler/bactrack/internal/common/clock"
	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Subcommand names
const (
	SubcommandRegister  = "register"
	SubcommandSession   = "session"
	SubcommandReading   = "reading"
	SubcommandDrink     = "drink"
	SubcommandRecommend = "recommend"
	SubcommandDrive     = "drive"
)

// BACCommand handles the /bac command. The Discord user ID is the username.
type BACCommand struct {
	BaseCommand
	service tracker.Service
	clock   clock.Clock
	logger  zerolog.Logger
}

// NewBACCommand creates a new bac command handler
func NewBACCommand(service tracker.Service, clk clock.Clock, logger zerolog.Logger) *BACCommand {
	minBAC := 0.0
	minWeight := 1.0

	return &BACCommand{
		BaseCommand: BaseCommand{
			Name:        "bac",
			Description: "Track your drinking session and get drink suggestions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRegister,
					Description: "Register or update your profile",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "sex",
							Description: "Sex used for BAC coefficients",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "male", Value: string(models.SexMale)},
								{Name: "female", Value: string(models.SexFemale)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "weight",
							Description: "Body weight in kilograms",
							Required:    true,
							MinValue:    &minWeight,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSession,
					Description: "Start a drinking session",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "max_bac",
							Description: "BAC you want to stay under, e.g. 0.08",
							Required:    true,
							MinValue:    &minBAC,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "drive_in_hours",
							Description: "Hours from now you need to be able to drive",
							MinValue:    &minBAC,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandReading,
					Description: "Record a BAC reading",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "bac",
							Description: "Measured BAC",
							Required:    true,
							MinValue:    &minBAC,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDrink,
					Description: "Log a drink from the catalog",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Drink name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRecommend,
					Description: "Suggest drinks that keep you under your limits",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "bac",
							Description: "Current BAC, defaults to your latest reading or estimate",
							MinValue:    &minBAC,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDrive,
					Description: "Check when you can drive",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "bac",
							Description: "Current BAC, defaults to your latest reading or estimate",
							MinValue:    &minBAC,
						},
					},
				},
			},
		},
		service: service,
		clock:   clk,
		logger:  logger,
	}
}

// Handle processes a Discord interaction for the bac command
func (c *BACCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	response := c.Execute(context.Background(), interactionUserID(i), sub.Name, sub.Options)
	return Respond(s, i, response)
}

// Execute runs a subcommand for a user and builds the response
func (c *BACCommand) Execute(ctx context.Context, userID, subcommand string, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponseData {
	if userID == "" {
		return errorResponse("Could not identify you.")
	}

	opts := optionMap(options)

	var (
		response *discordgo.InteractionResponseData
		err      error
	)
	switch subcommand {
	case SubcommandRegister:
		response, err = c.register(ctx, userID, opts)
	case SubcommandSession:
		response, err = c.startSession(ctx, userID, opts)
	case SubcommandReading:
		response, err = c.recordReading(ctx, userID, opts)
	case SubcommandDrink:
		response, err = c.logDrink(ctx, userID, opts)
	case SubcommandRecommend:
		response, err = c.recommend(ctx, userID, numberOption(opts, "bac"))
	case SubcommandDrive:
		response, err = c.driveStatus(ctx, userID, numberOption(opts, "bac"))
	default:
		return errorResponse(fmt.Sprintf("Unknown subcommand: %s", subcommand))
	}

	if err != nil {
		msg, known := errorMessage(err)
		if !known {
			c.logger.Error().
				Err(err).
				Str("user_id", userID).
				Str("subcommand", subcommand).
				Msg("bac command failed")
		}
		return errorResponse(msg)
	}

	return response
}

func (c *BACCommand) register(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponseData, error) {
	sex := stringOption(opts, "sex")
	var weight float64
	if w := numberOption(opts, "weight"); w != nil {
		weight = *w
	}

	output, err := c.service.Register(ctx, &tracker.RegisterInput{
		Username: userID,
		Sex:      sex,
		WeightKg: weight,
	})
	if err == nil {
		return renderProfile("Profile registered", output.Profile), nil
	}
	if !errors.Is(err, tracker.ErrUsernameTaken) {
		return nil, err
	}

	updated, err := c.service.UpdateProfile(ctx, &tracker.UpdateProfileInput{
		Username: userID,
		Sex:      sex,
		WeightKg: weight,
	})
	if err != nil {
		return nil, err
	}
	return renderProfile("Profile updated", updated.Profile), nil
}

func (c *BACCommand) startSession(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponseData, error) {
	input := &tracker.StartSessionInput{
		Username: userID,
	}
	if maxBAC := numberOption(opts, "max_bac"); maxBAC != nil {
		input.MaxBAC = *maxBAC
	}
	if hours := numberOption(opts, "drive_in_hours"); hours != nil {
		driveTime := c.clock.Now().Add(time.Duration(*hours * float64(time.Hour)))
		input.DriveTime = &driveTime
	}

	output, err := c.service.StartSession(ctx, input)
	if err != nil {
		return nil, err
	}
	return renderSession(output.Session), nil
}

func (c *BACCommand) recordReading(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponseData, error) {
	value := numberOption(opts, "bac")
	if value == nil {
		return nil, models.ErrInvalidBAC
	}

	output, err := c.service.RecordReading(ctx, &tracker.RecordReadingInput{
		Username: userID,
		BAC:      *value,
		Source:   models.ReadingSourceManual,
	})
	if err != nil {
		return nil, err
	}
	return renderReading(output.Reading), nil
}

func (c *BACCommand) logDrink(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponseData, error) {
	output, err := c.service.LogDrink(ctx, &tracker.LogDrinkInput{
		Username:  userID,
		DrinkName: stringOption(opts, "name"),
	})
	if err != nil {
		return nil, err
	}
	return renderDrinkLog(output), nil
}

func (c *BACCommand) recommend(ctx context.Context, userID string, current *float64) (*discordgo.InteractionResponseData, error) {
	output, err := c.service.GetRecommendations(ctx, &tracker.GetRecommendationsInput{
		Username: userID,
		BAC:      current,
	})
	if err != nil {
		return nil, err
	}
	return renderRecommendations(output), nil
}

func (c *BACCommand) driveStatus(ctx context.Context, userID string, current *float64) (*discordgo.InteractionResponseData, error) {
	output, err := c.service.GetDriveStatus(ctx, &tracker.GetDriveStatusInput{
		Username: userID,
		BAC:      current,
	})
	if err != nil {
		return nil, err
	}
	return renderDriveStatus(output), nil
}

// errorMessage turns service errors into user-facing text.
// The bool is false for errors the user cannot act on.
func errorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, tracker.ErrProfileNotFound):
		return "You are not registered yet. Use `/bac register` first.", true
	case errors.Is(err, tracker.ErrNoActiveSession):
		return "You have no active session. Use `/bac session` to start one.", true
	case errors.Is(err, tracker.ErrUnknownDrink):
		return "That drink is not in the catalog.", true
	case errors.Is(err, models.ErrMissingMaxBAC):
		return "A session needs a max BAC above zero.", true
	case errors.Is(err, models.ErrInvalidBAC):
		return "BAC must be zero or more.", true
	case errors.Is(err, models.ErrUnsupportedSex):
		return "Sex must be male or female.", true
	case errors.Is(err, models.ErrInvalidWeight):
		return "Weight must be a positive number of kilograms.", true
	case errors.Is(err, bac.ErrNonFinite):
		return "Those numbers are out of range for the BAC model.", true
	default:
		return "Something went wrong, try again later.", false
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func numberOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) *float64 {
	opt, ok := opts[name]
	if !ok {
		return nil
	}
	value := opt.FloatValue()
	return &value
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	return opt.StringValue()
}
