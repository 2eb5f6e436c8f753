package handlers

import (
	"context"
	"fmt"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/command"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

func (r *Router) campaign(ctx context.Context, actor entity.Actor, cmd *command.Command) *Reply {
	svc := r.services.Campaign

	switch cmd.Sub {
	case command.SubList:
		campaigns, err := svc.List(ctx)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		if len(campaigns) == 0 {
			return info(fmt.Sprintf("There are no campaigns yet. Add one with `%s add <name>`.", r.inv.Category(command.CategoryCampaign)))
		}

		reply := info(fmt.Sprintf("%d campaigns", len(campaigns)))
		reply.Title = "Campaigns"
		for _, c := range campaigns {
			reply.Fields = append(reply.Fields, r.eventField(c.Schedule(), c.Description, c.CreatorID, false))
		}
		return reply

	case command.SubDetails:
		campaigns, err := svc.Details(ctx, cmd.Rest(0))
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}

		reply := info("")
		reply.Title = "Campaign Details"
		for _, c := range campaigns {
			reply.Fields = append(reply.Fields, r.eventField(c.Schedule(), c.Description, c.CreatorID, true))
		}
		return reply

	case command.SubAdd:
		c, err := svc.Add(ctx, actor, cmd.Args[0], cmd.Rest(1))
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		return info(fmt.Sprintf("Successfully added the campaign %s with id %d.", c.Name, c.ID))

	case command.SubDelete:
		name, id, err := deleteArgs(cmd)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		c, err := svc.Delete(ctx, actor, name, id)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		return info(fmt.Sprintf("Successfully deleted the campaign %s.", c.Name))

	case command.SubDescription:
		id, err := cmd.ID(0)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		c, err := svc.UpdateDescription(ctx, actor, id, cmd.Rest(1))
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		return info(fmt.Sprintf("Successfully updated the description of %s.", c.Name))

	case command.SubSession:
		id, err := cmd.ID(0)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		c, err := svc.UpdateSession(ctx, actor, id, cmd.Rest(1))
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		if c.SessionTime == "" {
			return info(fmt.Sprintf("Cleared the next session of %s.", c.Name))
		}
		return info(fmt.Sprintf("Successfully changed the next session of %s to %s.", c.Name, c.SessionTime))

	case command.SubRole:
		id, err := cmd.ID(0)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		c, err := svc.UpdateRole(ctx, actor, id, command.RoleRef(cmd.Args[1]))
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		return info(fmt.Sprintf("Successfully changed the role of %s to %s.", c.Name, r.reference(c.RoleID, r.mentions.Role)))

	case command.SubChannel:
		id, err := cmd.ID(0)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		c, err := svc.UpdateChannel(ctx, actor, id, command.ChannelRef(cmd.Args[1]))
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		return info(fmt.Sprintf("Successfully changed the channel of %s to %s.", c.Name, r.reference(c.ChannelID, r.mentions.Channel)))

	case command.SubNotification:
		id, err := cmd.ID(0)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		enabled, err := cmd.Flag(1)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		c, err := svc.UpdateExtraNotification(ctx, actor, id, enabled)
		if err != nil {
			return r.fail(entity.KindCampaign, err)
		}
		if c.ExtraNotification {
			return info(fmt.Sprintf("%s now also gets a reminder on the morning of game day.", c.Name))
		}
		return info(fmt.Sprintf("%s no longer gets a reminder on the morning of game day.", c.Name))
	}

	return helpReply(command.SubcommandHelp(command.CategoryCampaign))
}
