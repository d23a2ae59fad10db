package remix

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
)

// Stage is one step of the publication pipeline. Failure stages are
// user-visible so callers can tell where a publish broke.
type Stage string

const (
	StageIdle              Stage = "idle"
	StageUploadingImage    Stage = "image-upload"
	StageBuildingMetadata  Stage = "metadata-validation"
	StageUploadingMetadata Stage = "metadata-upload"
	StageDerivingSalt      Stage = "salt-derivation"
	StageSubmitting        Stage = "submission"
	StageAwaitingReceipt   Stage = "receipt"
	StageSucceeded         Stage = "succeeded"
	StageReverted          Stage = "reverted"
	StageNoWallet          Stage = "no-wallet"
)

// Event is the outcome of one pipeline step
type Event string

const (
	EventStepOk        Event = "stepOk"
	EventStepFailed    Event = "stepFailed"
	EventTxConfirmed   Event = "txConfirmed"
	EventTxReverted    Event = "txReverted"
	EventSignerMissing Event = "signerMissing"
)

var happyPath = map[Stage]Stage{
	StageIdle:              StageUploadingImage,
	StageUploadingImage:    StageBuildingMetadata,
	StageBuildingMetadata:  StageUploadingMetadata,
	StageUploadingMetadata: StageDerivingSalt,
	StageDerivingSalt:      StageSubmitting,
	StageSubmitting:        StageAwaitingReceipt,
	StageAwaitingReceipt:   StageSucceeded,
}

// Transition is the pure step function of the publication pipeline. It
// owns no state and performs no side effects, so the pipeline shape can
// be tested without any network. Terminal stages absorb every event.
func Transition(stage Stage, ev Event) Stage {
	if IsTerminal(stage) {
		return stage
	}
	switch ev {
	case EventSignerMissing:
		return StageNoWallet
	case EventStepFailed:
		return stage
	case EventTxReverted:
		if stage == StageAwaitingReceipt {
			return StageReverted
		}
		return stage
	case EventStepOk, EventTxConfirmed:
		if next, ok := happyPath[stage]; ok {
			return next
		}
	}
	return stage
}

// IsTerminal reports whether the pipeline can advance past the stage
func IsTerminal(stage Stage) bool {
	switch stage {
	case StageSucceeded, StageReverted, StageNoWallet:
		return true
	}
	return false
}

// PublicationError tags a pipeline failure with the stage it happened in
type PublicationError struct {
	Stage Stage
	Err   error
}

func (e *PublicationError) Error() string {
	return fmt.Sprintf("publication failed at %s: %v", e.Stage, e.Err)
}

func (e *PublicationError) Unwrap() error {
	return e.Err
}

// PublishRequest is the immutable input of one publication attempt
type PublishRequest struct {
	Name            string
	Symbol          string
	Description     string
	Image           []byte
	ImageFilename   string
	PayoutRecipient domain.Address
	Creators        []domain.Address
	RevenueShare    int
	IdempotencySeed string
	ChainId         domain.ChainId
}

// Metadata is the canonical coin metadata document pinned behind the token uri
type Metadata struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// BuildMetadata constructs and validates a metadata document from an
// uploaded image cid. It performs no I/O and must run before any
// metadata upload is attempted.
func BuildMetadata(name, description, imageCid string) (*Metadata, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	imageCid = strings.TrimSpace(imageCid)
	if name == "" || description == "" {
		return nil, domain.ErrInvalidMetadata
	}
	if imageCid == "" || strings.ContainsAny(imageCid, ":/ ") {
		return nil, domain.ErrInvalidMetadata
	}
	return &Metadata{
		Name:        name,
		Image:       fmt.Sprintf("ipfs://%s", imageCid),
		Description: description,
	}, nil
}

// MetadataFilename derives the pinned json filename from the coin name
func MetadataFilename(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	return fmt.Sprintf("RemixerCoinMetadata_%s.json", slug)
}

// DeriveSalt converts an idempotency seed into the fixed-width token the
// Remixer contract uses to dedupe creation requests. Same seed, same salt,
// always.
func DeriveSalt(seed string) [32]byte {
	return crypto.Keccak256Hash([]byte(seed))
}

// PublishResult is handed to the caller once a publication succeeds
type PublishResult struct {
	CoinAddress domain.Address `json:"coinAddress"`
	TxHash      domain.TxHash  `json:"txHash"`
	ImageCid    string         `json:"imageCid"`
	MetadataUri string         `json:"metadataUri"`
}

// PublishedRemix is the feed record of a successfully published coin
type PublishedRemix struct {
	CoinAddress     domain.Address `json:"coinAddress" bson:"coinAddress"`
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	Name            string         `json:"name" bson:"name"`
	Symbol          string         `json:"symbol" bson:"symbol"`
	MetadataUri     string         `json:"metadataUri" bson:"metadataUri"`
	PayoutRecipient domain.Address `json:"payoutRecipient" bson:"payoutRecipient"`
	Creators        []domain.Address `json:"creators" bson:"creators"`
	RevenueShare    int            `json:"revenueShare" bson:"revenueShare"`
	TxHash          domain.TxHash  `json:"txHash" bson:"txHash"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
}

type Usecase interface {
	Publish(ctx.Ctx, *PublishRequest) (*PublishResult, error)
	// Feed returns one page of the feed plus the total record count
	Feed(c ctx.Ctx, offset, limit int) ([]*PublishedRemix, int, error)
	Get(c ctx.Ctx, coinAddress domain.Address) (*PublishedRemix, error)
}

type Repo interface {
	Insert(ctx.Ctx, *PublishedRemix) error
	List(c ctx.Ctx, offset, limit int) ([]*PublishedRemix, error)
	FindOne(c ctx.Ctx, coinAddress domain.Address) (*PublishedRemix, error)
	Count(c ctx.Ctx) (int, error)
}
