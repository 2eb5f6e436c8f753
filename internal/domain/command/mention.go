package command

import (
	"regexp"
	"strings"
)

var (
	// <@&123> on Discord, <!subteam^S123|name> or <!subteam^S123> on Slack
	roleMention = regexp.MustCompile(`^<(?:@&|!subteam\^)([^|>\s]+)(?:\|[^>]*)?>$`)
	// <#123> on Discord, <#C123|name> on Slack
	channelMention = regexp.MustCompile(`^<#([^|>\s]+)(?:\|[^>]*)?>$`)
	// <@123>, <@!123> on Discord, <@U123|name> on Slack
	userMention = regexp.MustCompile(`^<@!?([^&|>\s][^|>\s]*)(?:\|[^>]*)?>$`)
)

// RoleRef returns the role id behind a mention. Bare ids and "clear" pass through unchanged.
func RoleRef(arg string) string {
	return unwrap(roleMention, arg)
}

// ChannelRef returns the channel id behind a mention.
func ChannelRef(arg string) string {
	return unwrap(channelMention, arg)
}

// UserRef returns the user id behind a mention.
func UserRef(arg string) string {
	return unwrap(userMention, arg)
}

func unwrap(re *regexp.Regexp, arg string) string {
	arg = strings.TrimSpace(arg)
	if m := re.FindStringSubmatch(arg); m != nil {
		return m[1]
	}
	return arg
}
