package usecase

import (
	"encoding/json"
	"net/url"
	"strings"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/log"
	"github.com/remixer-xyz/goapi/domain"
)

type MetadataUseCaseCfg struct {
	HttpReader domain.ResourceReaderRepository
	IpfsReader domain.ResourceReaderRepository
}

type impl struct {
	httpReader domain.ResourceReaderRepository
	ipfsReader domain.ResourceReaderRepository
}

func New(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	return &impl{
		httpReader: cfg.HttpReader,
		ipfsReader: cfg.IpfsReader,
	}
}

// GetFromUri resolves a token uri and returns the metadata document behind
// it. ipfs:// uris go through the node api, http(s) through plain fetch.
func (u *impl) GetFromUri(c bCtx.Ctx, rawUrl string) (*domain.Metadata, error) {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, err
	}

	var data []byte
	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		cid := strings.TrimPrefix(rawUrl, "ipfs://")
		cid = strings.TrimPrefix(cid, "ipfs/")
		data, err = u.ipfsReader.Get(c, cid)
	default:
		return nil, domain.ErrUnsupportedSchema
	}
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("resource read failed")
		return nil, err
	}

	if !json.Valid(data) {
		c.WithField("url", rawUrl).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return &domain.Metadata{RawMessage: data}, nil
}
