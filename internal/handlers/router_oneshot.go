package handlers

import (
	"context"
	"fmt"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/command"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

func (r *Router) oneshot(ctx context.Context, actor entity.Actor, cmd *command.Command) *Reply {
	svc := r.services.Oneshot

	switch cmd.Sub {
	case command.SubList:
		oneshots, err := svc.List(ctx)
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		if len(oneshots) == 0 {
			return info(fmt.Sprintf("There are no oneshots yet. Add one with `%s add <name>`.", r.inv.Category(command.CategoryOneshot)))
		}

		reply := info(fmt.Sprintf("%d oneshots", len(oneshots)))
		reply.Title = "Oneshots"
		for _, o := range oneshots {
			reply.Fields = append(reply.Fields, r.eventField(o.Schedule(), o.Description, o.CreatorID, false))
		}
		return reply

	case command.SubDetails:
		oneshots, err := svc.Details(ctx, cmd.Rest(0))
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}

		reply := info("")
		reply.Title = "Oneshot Details"
		for _, o := range oneshots {
			reply.Fields = append(reply.Fields, r.eventField(o.Schedule(), o.Description, o.CreatorID, true))
		}
		return reply

	case command.SubAdd:
		o, err := svc.Add(ctx, actor, cmd.Args[0], cmd.Rest(1))
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		return info(fmt.Sprintf("Successfully added the oneshot %s with id %d.", o.Name, o.ID))

	case command.SubDelete:
		name, id, err := deleteArgs(cmd)
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		o, err := svc.Delete(ctx, actor, name, id)
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		return info(fmt.Sprintf("Successfully deleted the oneshot %s.", o.Name))

	case command.SubDescription:
		id, err := cmd.ID(0)
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		o, err := svc.UpdateDescription(ctx, actor, id, cmd.Rest(1))
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		return info(fmt.Sprintf("Successfully updated the description of %s.", o.Name))

	case command.SubTime:
		id, err := cmd.ID(0)
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		o, err := svc.UpdateTime(ctx, actor, id, cmd.Rest(1))
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		if o.Time == "" {
			return info(fmt.Sprintf("Cleared the time of %s.", o.Name))
		}
		return info(fmt.Sprintf("Successfully changed the time of %s to %s.", o.Name, o.Time))

	case command.SubRole:
		id, err := cmd.ID(0)
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		o, err := svc.UpdateRole(ctx, actor, id, command.RoleRef(cmd.Args[1]))
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		return info(fmt.Sprintf("Successfully changed the role of %s to %s.", o.Name, r.reference(o.RoleID, r.mentions.Role)))

	case command.SubChannel:
		id, err := cmd.ID(0)
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		o, err := svc.UpdateChannel(ctx, actor, id, command.ChannelRef(cmd.Args[1]))
		if err != nil {
			return r.fail(entity.KindOneshot, err)
		}
		return info(fmt.Sprintf("Successfully changed the channel of %s to %s.", o.Name, r.reference(o.ChannelID, r.mentions.Channel)))
	}

	return helpReply(command.SubcommandHelp(command.CategoryOneshot))
}
