package formatting

import (
	"fmt"
	"strings"

	"gamestatus-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxTitleLen       = 256
	maxDescriptionLen = 4096
	maxFieldLen       = 1024
	maxColumns        = 6
)

var markdownEscaper = strings.NewReplacer("*", "\\*", "_", "\\_", "~", "\\~", "`", "\\`", "|", "\\|", ">", "\\>")

// StatusEmbed renders the live message of a status from its effective options.
// A nil or offline info renders the offline variant.
func StatusEmbed(status *domain.Status, info *domain.ServerInfo) *discordgo.MessageEmbed {
	values := domain.FormatValues(status, info)
	online := info != nil && info.Online

	titleOpt, descOpt, colorOpt, imageOpt := "offlineTitle", "offlineDescription", "offlineColor", "offlineImage"
	if online {
		titleOpt, descOpt, colorOpt, imageOpt = "title", "description", "color", "image"
	}

	embed := &discordgo.MessageEmbed{
		Title:       truncate(domain.Format(stringOption(status, titleOpt), values), maxTitleLen),
		Description: truncate(domain.Format(stringOption(status, descOpt), values), maxDescriptionLen),
		Color:       int(intOption(status, colorOpt)),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s | %s", GameTitle(status.Game), status.Address),
		},
		Timestamp: timestamp(),
	}

	if image := stringOption(status, imageOpt); image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: image}
	}

	if online && boolOption(status, "showPlayers") {
		embed.Fields = playerFields(info, int(intOption(status, "columns")), listOption(status, "dots"))
	}

	return embed
}

// playerFields spreads the named players over inline columns. Each row is prefixed
// with the next dot, cycling.
func playerFields(info *domain.ServerInfo, columns int, dots []string) []*discordgo.MessageEmbedField {
	var names []string
	for _, p := range info.Players {
		if p.Name != "" && !p.Bot {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}

	columns = min(max(columns, 1), maxColumns, len(names))
	perColumn := (len(names) + columns - 1) / columns

	fields := make([]*discordgo.MessageEmbedField, 0, columns)
	for c := 0; c < columns; c++ {
		start := c * perColumn
		if start >= len(names) {
			break
		}
		end := min(start+perColumn, len(names))

		var b strings.Builder
		for row, name := range names[start:end] {
			if len(dots) > 0 {
				b.WriteString(dots[row%len(dots)])
				b.WriteString(" ")
			}
			b.WriteString(markdownEscaper.Replace(name))
			b.WriteString("\n")
		}

		fieldName := "\u200b"
		if c == 0 {
			fieldName = fmt.Sprintf("Players %d/%d", info.NumPlayers, info.MaxPlayers)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fieldName,
			Value:  truncate(b.String(), maxFieldLen),
			Inline: true,
		})
	}
	return fields
}

// GameTitle title-cases a game name for display. Casers are stateful, so one is
// built per call.
func GameTitle(game string) string {
	return cases.Title(language.English).String(game)
}

func stringOption(s *domain.Status, name string) string {
	v, _ := s.Option(name).(string)
	return v
}

func intOption(s *domain.Status, name string) int64 {
	v, _ := s.Option(name).(int64)
	return v
}

func boolOption(s *domain.Status, name string) bool {
	v, _ := s.Option(name).(bool)
	return v
}

func listOption(s *domain.Status, name string) []string {
	v, _ := s.Option(name).([]string)
	return v
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
