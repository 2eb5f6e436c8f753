package command

import (
	"fmt"
	"strings"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
)

type subSpec struct {
	Sub         Subcommand
	Usage       string
	Description string
	minArgs     int
	maxArgs     int // -1 for free text
}

var campaignSubs = []subSpec{
	{Sub: SubHelp, Usage: "help", Description: "Displays this help.", maxArgs: -1},
	{Sub: SubList, Usage: "list", Description: "Lists all campaigns.", maxArgs: 0},
	{Sub: SubDetails, Usage: "details <campaign-id|campaign-name>", Description: "Display a detailed overview about one campaign. If multiple are found, all matches will be shown.", minArgs: 1, maxArgs: -1},
	{Sub: SubAdd, Usage: "add <name> [description]", Description: "Add a new campaign. Quote names with spaces.", minArgs: 1, maxArgs: -1},
	{Sub: SubDelete, Usage: "delete <campaign-name> <campaign-id>", Description: "Deletes a campaign. This cannot be undone!", minArgs: 2, maxArgs: -1},
	{Sub: SubDescription, Usage: "description <campaign-id> <description>", Description: "Update the description of a campaign.", minArgs: 2, maxArgs: -1},
	{Sub: SubSession, Usage: "session <campaign-id> <YYYY-MM-DD hh:mmAM/PM|clear>", Description: "Set the time of the next session.", minArgs: 2, maxArgs: -1},
	{Sub: SubRole, Usage: "role <campaign-id> <role|clear>", Description: "Set the role that gets pinged.", minArgs: 2, maxArgs: 2},
	{Sub: SubChannel, Usage: "channel <campaign-id> <channel|clear>", Description: "Set the channel reminders are posted to.", minArgs: 2, maxArgs: 2},
	{Sub: SubNotification, Usage: "notification <campaign-id> <true|false>", Description: "Also remind at 09:00 on game day.", minArgs: 2, maxArgs: 2},
}

var oneshotSubs = []subSpec{
	{Sub: SubHelp, Usage: "help", Description: "Displays this help.", maxArgs: -1},
	{Sub: SubList, Usage: "list", Description: "Lists all oneshots.", maxArgs: 0},
	{Sub: SubDetails, Usage: "details <oneshot-id|oneshot-name>", Description: "Display a detailed overview about one oneshot. If multiple are found, all matches will be shown.", minArgs: 1, maxArgs: -1},
	{Sub: SubAdd, Usage: "add <name> [description]", Description: "Add a new oneshot. Quote names with spaces.", minArgs: 1, maxArgs: -1},
	{Sub: SubDelete, Usage: "delete <oneshot-name> <oneshot-id>", Description: "Deletes a oneshot. This cannot be undone!", minArgs: 2, maxArgs: -1},
	{Sub: SubDescription, Usage: "description <oneshot-id> <description>", Description: "Update the description of a oneshot.", minArgs: 2, maxArgs: -1},
	{Sub: SubChannel, Usage: "channel <oneshot-id> <channel|clear>", Description: "Update the channel of a oneshot.", minArgs: 2, maxArgs: 2},
	{Sub: SubTime, Usage: "time <oneshot-id> <YYYY-MM-DD hh:mmAM/PM|clear>", Description: "Update the time of a oneshot.", minArgs: 2, maxArgs: -1},
	{Sub: SubRole, Usage: "role <oneshot-id> <role|clear>", Description: "Set the role that gets pinged.", minArgs: 2, maxArgs: 2},
}

func lookup(category Category, sub Subcommand) (subSpec, bool) {
	subs := campaignSubs
	if category == CategoryOneshot {
		subs = oneshotSubs
	}

	for _, s := range subs {
		if s.Sub == sub {
			return s, true
		}
	}
	return subSpec{}, false
}

type HelpEntry struct {
	Name  string
	Value string
}

type Help struct {
	Title       string
	Description string
	Colour      int
	Entries     []HelpEntry
}

// Invocation tells the help texts how commands are typed on the current platform.
type Invocation struct {
	Prefix      string // "$" on Discord, "/" on Slack
	HelpCommand string // "help" on Discord, "eventhelp" on Slack
}

func (inv Invocation) Category(category Category) string {
	return inv.Prefix + string(category)
}

func (inv Invocation) Help() string {
	return inv.Prefix + inv.HelpCommand
}

func Overview(inv Invocation) *Help {
	return &Help{
		Title:       "Help - Overview",
		Description: fmt.Sprintf("Type `%s category` for more info on a category and its subcommands.", inv.Help()),
		Colour:      domain.ColorBlurple,
		Entries: []HelpEntry{
			{Name: string(CategoryCampaign), Value: "Create and manage your campaigns."},
			{Name: string(CategoryOneshot), Value: "Create and manage your oneshots."},
		},
	}
}

// SubcommandHelp returns the subcommand list of category, or nil when the category is unknown.
func SubcommandHelp(category Category) *Help {
	var (
		subs   []subSpec
		title  string
		colour int
	)

	switch category {
	case CategoryCampaign:
		subs, title, colour = campaignSubs, "Managing Campaigns - Help", domain.ColorPurple
	case CategoryOneshot:
		subs, title, colour = oneshotSubs, "Managing Oneshots - Help", domain.ColorDarkGold
	default:
		return nil
	}

	help := &Help{
		Title:       title,
		Description: "The following sub-commands are available:",
		Colour:      colour,
	}
	for _, s := range subs {
		help.Entries = append(help.Entries, HelpEntry{Name: s.Usage, Value: s.Description})
	}

	return help
}

// ParseCategory reads the optional argument of the help command.
func ParseCategory(arg string) Category {
	return Category(strings.ToLower(strings.TrimSpace(arg)))
}
