package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CraftMarket_Go/internal/catalog"
)

// ErrInvalidWebhookURL is returned for URLs that are not Discord webhook URLs
var ErrInvalidWebhookURL = errors.New(ErrMsgInvalidWebhookURL)

// webhookExecutor is the subset of *discordgo.Session used to post messages
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord posts reload results to a webhook
type Discord struct {
	session   webhookExecutor
	webhookID string
	token     string
}

// NewDiscord parses a webhook URL of the form
// https://discord.com/api/webhooks/{id}/{token}.
func NewDiscord(webhookURL string) (*Discord, error) {
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}
	return &Discord{session: session, webhookID: id, token: token}, nil
}

func parseWebhookURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", "", ErrInvalidWebhookURL
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 || parts[len(parts)-3] != "webhooks" {
		return "", "", ErrInvalidWebhookURL
	}
	id, token := parts[len(parts)-2], parts[len(parts)-1]
	if _, err := strconv.ParseUint(id, 10, 64); err != nil || token == "" {
		return "", "", ErrInvalidWebhookURL
	}
	return id, token, nil
}

// ReloadFinished posts one embed per reload
func (d *Discord) ReloadFinished(ctx context.Context, event catalog.ReloadEvent) error {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{reloadEmbed(event)},
	}
	if _, err := d.session.WebhookExecute(d.webhookID, d.token, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf(ErrMsgExecuteWebhook, err)
	}
	return nil
}

func reloadEmbed(event catalog.ReloadEvent) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterText,
		},
	}
	duration := &discordgo.MessageEmbedField{
		Name:   FieldDuration,
		Value:  event.Duration.Round(time.Millisecond).String(),
		Inline: true,
	}

	if event.Err != nil {
		embed.Title = TitleReloadFailed
		embed.Description = event.Err.Error()
		embed.Color = ColorFailure
		embed.Fields = []*discordgo.MessageEmbedField{duration}
		return embed
	}

	embed.Title = TitleReloadSucceeded
	embed.Color = ColorSuccess
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: FieldItems, Value: strconv.Itoa(event.Stats.Items), Inline: true},
		{Name: FieldRecipes, Value: strconv.Itoa(event.Stats.Recipes), Inline: true},
		duration,
	}
	return embed
}
