package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/remix"
	remixMocks "github.com/remixer-xyz/goapi/domain/remix/mocks"
	contractMocks "github.com/remixer-xyz/goapi/service/chain/contract/mocks"
	pinataMocks "github.com/remixer-xyz/goapi/service/pinata/mocks"
)

const (
	testChainId = domain.ChainId(8453)
	payoutAddr  = domain.Address("0x00000000000000000000000000000000000000aa")
	coinAddr    = domain.Address("0x00000000000000000000000000000000000000cc")
	testTxHash  = domain.TxHash("0xdeadbeef")
)

func validRequest() *remix.PublishRequest {
	return &remix.PublishRequest{
		Name:            "My Remix",
		Symbol:          "RMX",
		Description:     "a remix of a remix",
		Image:           []byte{0x89, 'P', 'N', 'G'},
		ImageFilename:   "cover.png",
		PayoutRecipient: payoutAddr,
		RevenueShare:    50,
		IdempotencySeed: "seed-1",
		ChainId:         testChainId,
	}
}

func newPipeline() (remix.Usecase, *pinataMocks.Service, *contractMocks.Remixer, *remixMocks.Repo) {
	pin := &pinataMocks.Service{}
	remixer := &contractMocks.Remixer{}
	repo := &remixMocks.Repo{}
	return New(pin, remixer, repo), pin, remixer, repo
}

func TestPublish(t *testing.T) {
	c := bCtx.Background()
	uc, pin, remixer, repo := newPipeline()

	remixer.On("HasSigner", testChainId).Return(true)
	pin.On("Pin", mock.Anything, mock.Anything, "cover.png").Return("Qm1", nil)
	pin.On("PinJson", mock.Anything, mock.MatchedBy(func(md *remix.Metadata) bool {
		return md.Name == "My Remix" && md.Image == "ipfs://Qm1"
	}), "RemixerCoinMetadata_my-remix.json").Return("Qm2", nil)

	salt := remix.DeriveSalt("seed-1")
	remixer.On("CreateRemixerCoin",
		mock.Anything, testChainId, payoutAddr, []domain.Address{payoutAddr},
		"ipfs://Qm2", "My Remix", "RMX", 50, salt,
	).Return(testTxHash, nil)
	remixer.On("WaitCoinAddress", mock.Anything, testChainId, testTxHash).Return(coinAddr, nil)

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(r *remix.PublishedRemix) bool {
		return r.CoinAddress == coinAddr && r.TxHash == testTxHash && r.MetadataUri == "ipfs://Qm2"
	})).Return(nil)

	res, err := uc.Publish(c, validRequest())
	require.NoError(t, err)
	assert.Equal(t, coinAddr, res.CoinAddress)
	assert.Equal(t, testTxHash, res.TxHash)
	assert.Equal(t, "Qm1", res.ImageCid)
	assert.Equal(t, "ipfs://Qm2", res.MetadataUri)

	pin.AssertExpectations(t)
	remixer.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestPublishValidation(t *testing.T) {
	c := bCtx.Background()
	uc, _, _, _ := newPipeline()

	tests := []struct {
		name    string
		mutate  func(*remix.PublishRequest)
		wantErr error
	}{
		{"empty name", func(r *remix.PublishRequest) { r.Name = "" }, domain.ErrInvalidInput},
		{"empty symbol", func(r *remix.PublishRequest) { r.Symbol = "" }, domain.ErrInvalidInput},
		{"empty description", func(r *remix.PublishRequest) { r.Description = "" }, domain.ErrInvalidInput},
		{"empty image", func(r *remix.PublishRequest) { r.Image = nil }, domain.ErrInvalidInput},
		{"bad payout address", func(r *remix.PublishRequest) { r.PayoutRecipient = "payout" }, domain.ErrInvalidAddress},
		{"bad creator address", func(r *remix.PublishRequest) { r.Creators = []domain.Address{"nope"} }, domain.ErrInvalidAddress},
		{"revenue share over limit", func(r *remix.PublishRequest) { r.RevenueShare = 101 }, domain.ErrInvalidInput},
		{"negative revenue share", func(r *remix.PublishRequest) { r.RevenueShare = -1 }, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Publish(c, req)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestPublishNoWallet(t *testing.T) {
	c := bCtx.Background()
	uc, _, remixer, _ := newPipeline()

	remixer.On("HasSigner", testChainId).Return(false)

	_, err := uc.Publish(c, validRequest())
	require.Error(t, err)

	var pubErr *remix.PublicationError
	require.True(t, errors.As(err, &pubErr))
	assert.Equal(t, remix.StageNoWallet, pubErr.Stage)
	assert.True(t, errors.Is(err, domain.ErrNoWalletConnected))
}

func TestPublishImageUploadFails(t *testing.T) {
	c := bCtx.Background()
	uc, pin, remixer, _ := newPipeline()

	remixer.On("HasSigner", testChainId).Return(true)
	pin.On("Pin", mock.Anything, mock.Anything, "cover.png").Return("", domain.ErrUploadFailed)

	_, err := uc.Publish(c, validRequest())

	var pubErr *remix.PublicationError
	require.True(t, errors.As(err, &pubErr))
	assert.Equal(t, remix.StageUploadingImage, pubErr.Stage)
	remixer.AssertNotCalled(t, "CreateRemixerCoin",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishMetadataUploadFails(t *testing.T) {
	c := bCtx.Background()
	uc, pin, remixer, _ := newPipeline()

	remixer.On("HasSigner", testChainId).Return(true)
	pin.On("Pin", mock.Anything, mock.Anything, "cover.png").Return("Qm1", nil)
	pin.On("PinJson", mock.Anything, mock.Anything, mock.Anything).Return("", domain.ErrUploadFailed)

	_, err := uc.Publish(c, validRequest())

	var pubErr *remix.PublicationError
	require.True(t, errors.As(err, &pubErr))
	assert.Equal(t, remix.StageUploadingMetadata, pubErr.Stage)
}

func TestPublishSubmissionRejected(t *testing.T) {
	c := bCtx.Background()
	uc, pin, remixer, _ := newPipeline()

	remixer.On("HasSigner", testChainId).Return(true)
	pin.On("Pin", mock.Anything, mock.Anything, "cover.png").Return("Qm1", nil)
	pin.On("PinJson", mock.Anything, mock.Anything, mock.Anything).Return("Qm2", nil)
	remixer.On("CreateRemixerCoin",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(domain.TxHash(""), domain.ErrSubmissionRejected)

	_, err := uc.Publish(c, validRequest())

	var pubErr *remix.PublicationError
	require.True(t, errors.As(err, &pubErr))
	assert.Equal(t, remix.StageSubmitting, pubErr.Stage)
}

func TestPublishReverted(t *testing.T) {
	c := bCtx.Background()
	uc, pin, remixer, repo := newPipeline()

	remixer.On("HasSigner", testChainId).Return(true)
	pin.On("Pin", mock.Anything, mock.Anything, "cover.png").Return("Qm1", nil)
	pin.On("PinJson", mock.Anything, mock.Anything, mock.Anything).Return("Qm2", nil)
	remixer.On("CreateRemixerCoin",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(testTxHash, nil)
	remixer.On("WaitCoinAddress", mock.Anything, testChainId, testTxHash).Return(domain.Address(""), domain.ErrTransactionReverted)

	_, err := uc.Publish(c, validRequest())

	var pubErr *remix.PublicationError
	require.True(t, errors.As(err, &pubErr))
	assert.Equal(t, remix.StageReverted, pubErr.Stage)
	assert.True(t, errors.Is(err, domain.ErrTransactionReverted))
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestPublishFeedInsertFailureIsNotFatal(t *testing.T) {
	c := bCtx.Background()
	uc, pin, remixer, repo := newPipeline()

	remixer.On("HasSigner", testChainId).Return(true)
	pin.On("Pin", mock.Anything, mock.Anything, "cover.png").Return("Qm1", nil)
	pin.On("PinJson", mock.Anything, mock.Anything, mock.Anything).Return("Qm2", nil)
	remixer.On("CreateRemixerCoin",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(testTxHash, nil)
	remixer.On("WaitCoinAddress", mock.Anything, testChainId, testTxHash).Return(coinAddr, nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	res, err := uc.Publish(c, validRequest())
	require.NoError(t, err)
	assert.Equal(t, coinAddr, res.CoinAddress)
}

func TestFeed(t *testing.T) {
	c := bCtx.Background()
	uc, _, _, repo := newPipeline()

	records := []*remix.PublishedRemix{{CoinAddress: coinAddr}}
	repo.On("List", mock.Anything, 0, 20).Return(records, nil)
	repo.On("Count", mock.Anything).Return(35, nil)

	got, total, err := uc.Feed(c, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Equal(t, 35, total)
}

func TestFeedCountFailure(t *testing.T) {
	c := bCtx.Background()
	uc, _, _, repo := newPipeline()

	repo.On("List", mock.Anything, 0, 20).Return([]*remix.PublishedRemix{}, nil)
	repo.On("Count", mock.Anything).Return(0, errors.New("mongo down"))

	_, _, err := uc.Feed(c, 0, 20)
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	c := bCtx.Background()
	uc, _, _, repo := newPipeline()

	record := &remix.PublishedRemix{CoinAddress: coinAddr, Name: "Doge"}
	repo.On("FindOne", mock.Anything, coinAddr).Return(record, nil)

	got, err := uc.Get(c, coinAddr)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestGetNotFound(t *testing.T) {
	c := bCtx.Background()
	uc, _, _, repo := newPipeline()

	repo.On("FindOne", mock.Anything, coinAddr).Return(nil, domain.ErrNotFound)

	_, err := uc.Get(c, coinAddr)
	assert.Equal(t, domain.ErrNotFound, err)
}
