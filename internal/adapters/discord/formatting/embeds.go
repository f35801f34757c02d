package formatting

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"gamestatus-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const maxEmbedFields = 25

// StatusListEmbed enumerates the statuses of a channel by position.
func StatusListEmbed(statuses []*domain.Status) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("%d Active statuses", len(statuses)),
		Fields:    make([]*discordgo.MessageEmbedField, 0, min(len(statuses), maxEmbedFields)),
		Timestamp: timestamp(),
	}

	for i, st := range statuses {
		if i == maxEmbedFields {
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("%d more not shown", len(statuses)-maxEmbedFields),
			}
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("#%d", i),
			Value:  Identity(st),
			Inline: false,
		})
	}
	return embed
}

// StatusOptionsEmbed shows every option explicitly set on a status.
func StatusOptionsEmbed(index int, status *domain.Status) *discordgo.MessageEmbed {
	options := status.Options()
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	slices.Sort(names)

	fields := make([]*discordgo.MessageEmbedField, 0, len(names))
	for _, name := range names {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  "```json\n" + jsonValue(options[name]) + "\n```",
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("#%d", index),
		Description: Identity(status),
		Fields:      fields,
		Timestamp:   timestamp(),
	}
}

func OptionResetEmbed(index int, status *domain.Status, name string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("#%d", index),
		Description: fmt.Sprintf("%s\nReset: `%s`\n%s", Identity(status), name, Warning),
		Timestamp:   timestamp(),
	}
}

func OptionSetEmbed(index int, status *domain.Status, name string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("#%d", index),
		Description: fmt.Sprintf("%s\nSet: `%s=%s`\n%s", Identity(status), name, OptionString(status.Option(name)), Warning),
		Timestamp:   timestamp(),
	}
}

// HelpEntry is one command as shown by help.
type HelpEntry struct {
	Name    string
	Summary string
}

func HelpListEmbed(prefix string, entries []HelpEntry) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(entries))
	for _, e := range entries {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  prefix + e.Name,
			Value: e.Summary,
		})
	}
	return &discordgo.MessageEmbed{
		Title:       "Commands",
		Description: fmt.Sprintf("Use `%shelp <command>` for details", prefix),
		Fields:      fields,
	}
}

func HelpCommandEmbed(prefix, name, help string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       prefix + name,
		Description: truncate(help, maxDescriptionLen),
	}
}

// OptionString renders an option value the way users type it.
func OptionString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(val)
	}
}

// OptionsHelp lists every option with its type and default.
func OptionsHelp() string {
	var b strings.Builder
	for _, name := range domain.OptionNames() {
		spec, _ := domain.LookupOption(name)
		fmt.Fprintf(&b, "- `%s` (%s) default `%s`\n", name, spec.Kind, encodeJSON(spec.Default, ""))
	}
	return b.String()
}

// FormattablesHelp lists the placeholders accepted in titles and descriptions.
func FormattablesHelp() string {
	placeholders := make([]string, len(domain.Formattables))
	for i, f := range domain.Formattables {
		placeholders[i] = "{" + f + "}"
	}
	return codeList(placeholders)
}

func jsonValue(v any) string {
	return encodeJSON(v, "  ")
}

func encodeJSON(v any, indent string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
