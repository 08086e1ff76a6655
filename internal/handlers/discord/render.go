package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/recommend"
	"github.com/KirkDiggler/bactrack/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonRecommendAgain = "recommend_again"
	ButtonDriveStatus    = "drive_status"
)

func errorResponse(message string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Error",
				Description: message,
				Color:       colorError,
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

func ephemeralEmbed(embed *discordgo.MessageEmbed, components ...discordgo.MessageComponent) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
	if len(components) > 0 {
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: components},
		}
	}
	return data
}

func sessionButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Suggest drinks",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonRecommendAgain,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🍺",
			},
		},
		discordgo.Button{
			Label:    "Can I drive?",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonDriveStatus,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🚗",
			},
		},
	}
}

func formatBAC(value float64) string {
	return fmt.Sprintf("%.3f", value)
}

func formatTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:t>", t.Unix())
}

func renderProfile(title string, p *models.Profile) *discordgo.InteractionResponseData {
	return ephemeralEmbed(&discordgo.MessageEmbed{
		Title: title,
		Color: colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Sex", Value: string(p.Sex), Inline: true},
			{Name: "Weight", Value: fmt.Sprintf("%.1f kg", p.WeightKg), Inline: true},
		},
	})
}

func renderSession(s *models.Session) *discordgo.InteractionResponseData {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Max BAC", Value: formatBAC(s.MaxBAC), Inline: true},
		{Name: "Started", Value: formatTime(s.StartTime), Inline: true},
	}
	if s.HasDriveTime() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Drive at", Value: formatTime(*s.DriveTime), Inline: true,
		})
	}

	return ephemeralEmbed(&discordgo.MessageEmbed{
		Title:  "Session started",
		Color:  colorSuccess,
		Fields: fields,
	}, sessionButtons()...)
}

func renderReading(r *models.Reading) *discordgo.InteractionResponseData {
	return ephemeralEmbed(&discordgo.MessageEmbed{
		Title:       "Reading recorded",
		Description: fmt.Sprintf("BAC %s (%s)", formatBAC(r.BAC), r.Source),
		Color:       colorSuccess,
	}, sessionButtons()...)
}

func renderDrinkLog(output *tracker.LogDrinkOutput) *discordgo.InteractionResponseData {
	return ephemeralEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Logged %s", output.Entry.DrinkName),
		Description: fmt.Sprintf("%.2f standard drinks", output.Entry.StandardDrinks),
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Estimated BAC", Value: formatBAC(output.EstimatedBAC), Inline: true},
		},
	}, sessionButtons()...)
}

func renderRecommendations(output *tracker.GetRecommendationsOutput) *discordgo.InteractionResponseData {
	embed := &discordgo.MessageEmbed{
		Title: "Drink suggestions",
		Color: colorSuccess,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("BAC %s from %s", formatBAC(output.CurrentBAC), output.BACSource),
		},
	}

	if len(output.Drinks) == 0 {
		embed.Color = colorWarning
		embed.Description = "Nothing in the catalog keeps you under your limit. Time for water."
		if output.Path == recommend.PathDriveTime {
			embed.Description = "Nothing in the catalog lets you drive on time. Time for water."
		}
		return ephemeralEmbed(embed, sessionButtons()...)
	}

	var lines []string
	for _, drink := range output.Drinks {
		line := fmt.Sprintf("**%s** (%.2f standard drinks)", drink.Name, drink.StandardDrinks())
		if drink.Type != "" {
			line += " " + drink.Type
		}
		lines = append(lines, line)
	}
	embed.Description = strings.Join(lines, "\n")
	if output.Qualified > len(output.Drinks) {
		embed.Description += fmt.Sprintf("\n\n%d of %d options shown", len(output.Drinks), output.Qualified)
	}

	return ephemeralEmbed(embed, sessionButtons()...)
}

func renderDriveStatus(output *tracker.GetDriveStatusOutput) *discordgo.InteractionResponseData {
	embed := &discordgo.MessageEmbed{
		Title: "Drive status",
		Color: colorSuccess,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("BAC %s from %s", formatBAC(output.CurrentBAC), output.BACSource),
		},
	}

	if output.TimeUntilCanDrive <= 0 {
		embed.Description = "You are at or under the legal limit."
	} else {
		embed.Color = colorWarning
		embed.Description = fmt.Sprintf("Under the legal limit in %s, at %s.",
			output.TimeUntilCanDrive.Round(time.Minute), formatTime(output.CanDriveAt))
	}

	if output.DriveTime != nil {
		status := "On track"
		if !output.OnTrack {
			status = "Not on track"
			embed.Color = colorError
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Planned drive", Value: fmt.Sprintf("%s (%s)", formatTime(*output.DriveTime), status),
		})
	}

	return ephemeralEmbed(embed)
}
