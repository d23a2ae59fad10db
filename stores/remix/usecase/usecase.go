package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/log"
	"github.com/remixer-xyz/goapi/base/validator"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/remix"
	"github.com/remixer-xyz/goapi/service/chain/contract"
	"github.com/remixer-xyz/goapi/service/pinata"
)

const (
	minRevenueShare = 0
	maxRevenueShare = 100
)

var timeNow = time.Now

type impl struct {
	pinata  pinata.Service
	remixer contract.Remixer
	repo    remix.Repo
}

func New(pinata pinata.Service, remixer contract.Remixer, repo remix.Repo) remix.Usecase {
	return &impl{
		pinata:  pinata,
		remixer: remixer,
		repo:    repo,
	}
}

// Publish walks one request through the whole pipeline: image upload,
// metadata build and upload, salt derivation, on-chain submission and
// receipt wait. It fails fast at the first broken stage and never leaves
// a half-registered coin behind.
func (im *impl) Publish(c ctx.Ctx, req *remix.PublishRequest) (*remix.PublishResult, error) {
	if err := validateRequest(req); err != nil {
		c.WithField("err", err).Warn("invalid publish request")
		return nil, err
	}

	stage := remix.StageIdle

	if !im.remixer.HasSigner(req.ChainId) {
		stage = remix.Transition(stage, remix.EventSignerMissing)
		return nil, &remix.PublicationError{Stage: stage, Err: domain.ErrNoWalletConnected}
	}

	stage = remix.Transition(stage, remix.EventStepOk)
	imageCid, err := im.pinata.Pin(c, req.Image, req.ImageFilename)
	if err != nil {
		c.WithField("err", err).Error("pinata.Pin failed")
		return nil, &remix.PublicationError{Stage: stage, Err: err}
	}
	c.WithField("imageCid", imageCid).Info("image pinned")

	stage = remix.Transition(stage, remix.EventStepOk)
	md, err := remix.BuildMetadata(req.Name, req.Description, imageCid)
	if err != nil {
		c.WithField("err", err).Error("remix.BuildMetadata failed")
		return nil, &remix.PublicationError{Stage: stage, Err: err}
	}

	stage = remix.Transition(stage, remix.EventStepOk)
	metadataCid, err := im.pinata.PinJson(c, md, remix.MetadataFilename(req.Name))
	if err != nil {
		c.WithField("err", err).Error("pinata.PinJson failed")
		return nil, &remix.PublicationError{Stage: stage, Err: err}
	}
	metadataUri := "ipfs://" + metadataCid

	stage = remix.Transition(stage, remix.EventStepOk)
	seed := req.IdempotencySeed
	if seed == "" {
		seed = uuid.NewString()
	}
	salt := remix.DeriveSalt(seed)

	creators := req.Creators
	if len(creators) == 0 {
		creators = []domain.Address{req.PayoutRecipient}
	}

	stage = remix.Transition(stage, remix.EventStepOk)
	txHash, err := im.remixer.CreateRemixerCoin(c, req.ChainId, req.PayoutRecipient, creators, metadataUri, req.Name, req.Symbol, req.RevenueShare, salt)
	if err != nil {
		c.WithField("err", err).Error("remixer.CreateRemixerCoin failed")
		return nil, &remix.PublicationError{Stage: stage, Err: err}
	}
	c.WithField("txHash", txHash).Info("creation tx submitted")

	stage = remix.Transition(stage, remix.EventStepOk)
	coinAddress, err := im.remixer.WaitCoinAddress(c, req.ChainId, txHash)
	if err != nil {
		if err == domain.ErrTransactionReverted {
			stage = remix.Transition(stage, remix.EventTxReverted)
		}
		c.WithFields(log.Fields{
			"err":    err,
			"txHash": txHash,
		}).Error("remixer.WaitCoinAddress failed")
		return nil, &remix.PublicationError{Stage: stage, Err: err}
	}
	stage = remix.Transition(stage, remix.EventTxConfirmed)
	c.WithField("stage", stage).Info("coin created")

	record := &remix.PublishedRemix{
		CoinAddress:     coinAddress,
		ChainId:         req.ChainId,
		Name:            req.Name,
		Symbol:          req.Symbol,
		MetadataUri:     metadataUri,
		PayoutRecipient: req.PayoutRecipient.ToLower(),
		Creators:        creators,
		RevenueShare:    req.RevenueShare,
		TxHash:          txHash,
		CreatedAt:       timeNow(),
	}
	if err := im.repo.Insert(c, record); err != nil {
		// the coin exists on chain, a missing feed entry is not fatal
		c.WithFields(log.Fields{
			"err":         err,
			"coinAddress": coinAddress,
		}).Error("repo.Insert failed")
	}

	return &remix.PublishResult{
		CoinAddress: coinAddress,
		TxHash:      txHash,
		ImageCid:    imageCid,
		MetadataUri: metadataUri,
	}, nil
}

func (im *impl) Feed(c ctx.Ctx, offset, limit int) ([]*remix.PublishedRemix, int, error) {
	records, err := im.repo.List(c, offset, limit)
	if err != nil {
		c.WithField("err", err).Error("repo.List failed")
		return nil, 0, err
	}
	total, err := im.repo.Count(c)
	if err != nil {
		c.WithField("err", err).Error("repo.Count failed")
		return nil, 0, err
	}
	return records, total, nil
}

func (im *impl) Get(c ctx.Ctx, coinAddress domain.Address) (*remix.PublishedRemix, error) {
	record, err := im.repo.FindOne(c, coinAddress)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).Error("repo.FindOne failed")
		}
		return nil, err
	}
	return record, nil
}

func validateRequest(req *remix.PublishRequest) error {
	if req == nil {
		return domain.ErrInvalidInput
	}
	if req.Name == "" || req.Symbol == "" || req.Description == "" {
		return domain.ErrInvalidInput
	}
	if len(req.Image) == 0 {
		return domain.ErrInvalidInput
	}
	if !validator.IsValidAddress(string(req.PayoutRecipient)) {
		return domain.ErrInvalidAddress
	}
	for _, creator := range req.Creators {
		if !validator.IsValidAddress(string(creator)) {
			return domain.ErrInvalidAddress
		}
	}
	if req.RevenueShare < minRevenueShare || req.RevenueShare > maxRevenueShare {
		return domain.ErrInvalidInput
	}
	return nil
}
