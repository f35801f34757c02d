package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Formattables are the {placeholders} expanded in status titles and descriptions.
var Formattables = []string{
	"name",
	"map",
	"game",
	"connect",
	"numplayers",
	"validplayers",
	"numbots",
	"maxplayers",
	"ping",
	"motd",
	"version",
	"lastseen",
}

const lastSeenLayout = "2006-01-02 15:04"

// FormatValues builds the placeholder values for a status. info may be nil when the
// server has never answered.
func FormatValues(s *Status, info *ServerInfo) map[string]string {
	values := map[string]string{
		"name":         s.Name,
		"map":          "",
		"game":         s.Game,
		"connect":      s.Address,
		"numplayers":   "0",
		"validplayers": "0",
		"numbots":      "0",
		"maxplayers":   "0",
		"ping":         "0",
		"motd":         "",
		"version":      "",
		"lastseen":     formatLastSeen(s.LastSeen, s.Option("timezoneOffset")),
	}

	if info == nil {
		return values
	}

	if info.Name != "" {
		values["name"] = info.Name
	}
	if info.Connect != "" {
		values["connect"] = info.Connect
	}
	values["map"] = info.Map
	values["numplayers"] = strconv.Itoa(info.NumPlayers)
	values["validplayers"] = strconv.Itoa(info.ValidPlayers())
	values["numbots"] = strconv.Itoa(info.NumBots)
	values["maxplayers"] = strconv.Itoa(info.MaxPlayers)
	values["ping"] = strconv.FormatInt(info.Ping.Milliseconds(), 10)
	values["motd"] = info.MOTD
	values["version"] = info.Version

	return values
}

// Format replaces every {key} in template with its value. Unknown placeholders are kept.
func Format(template string, values map[string]string) string {
	if !strings.Contains(template, "{") {
		return template
	}

	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func formatLastSeen(t time.Time, offset any) string {
	if t.IsZero() {
		return "never"
	}

	hours, _ := offset.(float64)
	seconds := int(hours * 3600)
	zone := time.FixedZone(utcOffsetName(seconds), seconds)
	return t.In(zone).Format(lastSeenLayout) + " " + zone.String()
}

func utcOffsetName(seconds int) string {
	if seconds == 0 {
		return "UTC"
	}
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h, m := seconds/3600, (seconds%3600)/60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}
