package service

import (
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

// rolePolicy gates commands on role membership. An empty role list lets everyone in.
type rolePolicy struct {
	campaignRoles []string
	oneshotRoles  []string
	adminRoles    []string
}

func NewAccessPolicy(campaignRoles, oneshotRoles, adminRoles []string) contract.AccessPolicy {
	return &rolePolicy{
		campaignRoles: campaignRoles,
		oneshotRoles:  oneshotRoles,
		adminRoles:    adminRoles,
	}
}

func (p *rolePolicy) CanUse(actor entity.Actor, kind entity.Kind) bool {
	roles := p.campaignRoles
	if kind == entity.KindOneshot {
		roles = p.oneshotRoles
	}

	if len(roles) == 0 {
		return true
	}

	return actor.HasAnyRole(roles) || actor.HasAnyRole(p.adminRoles)
}

func (p *rolePolicy) CanModify(actor entity.Actor, creatorID string) bool {
	return actor.UserID == creatorID || actor.HasAnyRole(p.adminRoles)
}
