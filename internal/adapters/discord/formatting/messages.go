package formatting

import (
	"fmt"
	"strings"

	"gamestatus-bot/internal/core/domain"
)

const (
	MsgPermissionDenied = "You do not have permission to use this command."
	MsgCommandError     = "Something went wrong while running that command."
	MsgNoStatuses       = "There are no status messages in this channel"
	MsgStatusUsage      = "Usage: `status <game> <address>`"
	MsgRemoveUsage      = "Usage: `statusremove <index>`"

	// Warning appended to every option change; the live message only changes on the next refresh.
	Warning = "_Changes will not take effect until after the status has updated_"
)

func MsgInvalidIndex(count int) string {
	if count == 0 {
		return MsgNoStatuses
	}
	return fmt.Sprintf("Please enter a valid status ID (between 0 and %d)", count-1)
}

func MsgUnknownOption(name string) string {
	return fmt.Sprintf("Unknown option `%s`. Available options: %s", name, codeList(domain.OptionNames()))
}

func MsgInvalidOptionValue(name string) string {
	spec, ok := domain.LookupOption(name)
	if !ok {
		return MsgUnknownOption(name)
	}
	return fmt.Sprintf("Invalid value for `%s`, expected %s.", name, spec.Kind)
}

func MsgUnsupportedGame(game string) string {
	return fmt.Sprintf("Unsupported game `%s`.", game)
}

func MsgUnknownCommand(name string) string {
	return fmt.Sprintf("Unknown command `%s`.", name)
}

func MsgStatusCreated(status *domain.Status) string {
	return fmt.Sprintf("Now tracking %s", Identity(status))
}

func MsgStatusRemoved(status *domain.Status) string {
	return fmt.Sprintf("Stopped tracking %s", Identity(status))
}

// Identity is the one-line description of a status used in every reply.
func Identity(status *domain.Status) string {
	return fmt.Sprintf("%s [`%s`] <%s>", status.Name, status.Address, status.MessageLink())
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}
