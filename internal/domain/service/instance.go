package service

import (
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Campaign contract.CampaignService
	Oneshot  contract.OneshotService
	Policy   contract.AccessPolicy
}

func NewInstance(dm contract.DataManager, policy contract.AccessPolicy, source *time.Location, log *zap.SugaredLogger) *Instance {
	return &Instance{
		Campaign: newCampaign(dm, policy, source, log),
		Oneshot:  newOneshot(dm, policy, source, log),
		Policy:   policy,
	}
}
