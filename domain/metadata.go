package domain

import (
	"encoding/json"

	"github.com/remixer-xyz/goapi/base/ctx"
)

// Metadata is the raw metadata document stored behind a token uri
type Metadata struct {
	json.RawMessage
}

// ResourceReaderRepository reads the content behind one uri scheme
type ResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type MetadataUseCase interface {
	GetFromUri(ctx.Ctx, string) (*Metadata, error)
}
