package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"mime/multipart"
	"net/http"
	"path"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
)

const (
	defaultEndpoint    = "https://api.pinata.cloud"
	pinPath            = "/pinning/pinFileToIPFS"
	pinJsonPath        = "/pinning/pinJSONToIPFS"
	defaultMaxFileSize = 10 << 20 // 10 MB
	defaultTimeout     = 30 * time.Second
)

type ClientCfg struct {
	Endpoint    string
	Jwt         string
	HttpClient  http.Client
	Timeout     time.Duration
	MaxFileSize int64
}

type impl struct {
	endpoint    string
	jwt         string
	client      http.Client
	timeout     time.Duration
	maxFileSize int64
}

func New(cfg *ClientCfg) Service {
	im := &impl{
		endpoint:    cfg.Endpoint,
		jwt:         cfg.Jwt,
		client:      cfg.HttpClient,
		timeout:     cfg.Timeout,
		maxFileSize: cfg.MaxFileSize,
	}
	if im.endpoint == "" {
		im.endpoint = defaultEndpoint
	}
	if im.timeout == 0 {
		im.timeout = defaultTimeout
	}
	if im.maxFileSize == 0 {
		im.maxFileSize = defaultMaxFileSize
	}
	return im
}

func (im *impl) Pin(c ctx.Ctx, blob []byte, filename string, optFns ...Options) (string, error) {
	if len(blob) == 0 {
		return "", domain.ErrInvalidInput
	}
	if int64(len(blob)) > im.maxFileSize {
		c.WithFields(map[string]interface{}{
			"size":  len(blob),
			"limit": im.maxFileSize,
		}).Warn("file exceeds size limit")
		return "", domain.ErrSizeExceeded
	}

	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	if path.Ext(filename) == "" {
		filename += mimetype.Detect(blob).Extension()
	}

	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", filename); err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return "", err
	} else if _, err := fw.Write(blob); err != nil {
		c.WithField("err", err).Error("fw.Write failed")
		return "", err
	}

	if opts.Metadata != nil {
		if b, err := json.Marshal(opts.Metadata); err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", err
		} else {
			w.WriteField("pinataMetadata", string(b))
		}
	}

	if opts.Options != nil {
		if b, err := json.Marshal(opts.Options); err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", err
		} else {
			w.WriteField("pinataOptions", string(b))
		}
	}

	w.Close()

	return im.post(c, pinPath, w.FormDataContentType(), &b)
}

func (im *impl) PinJson(c ctx.Ctx, value interface{}, filename string, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	if opts.Metadata == nil && filename != "" {
		opts.Metadata = &PinataMetadata{Name: filename}
	}

	opts.PinataContent = StringifyBigInts(value)

	body, err := json.Marshal(opts)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	return im.post(c, pinJsonPath, "application/json", bytes.NewBuffer(body))
}

func (im *impl) post(c ctx.Ctx, apiPath, contentType string, body *bytes.Buffer) (string, error) {
	timeoutCtx, cancel := ctx.WithTimeout(c, im.timeout)
	defer cancel()

	url := fmt.Sprintf("%s%s", im.endpoint, apiPath)

	req, err := http.NewRequestWithContext(timeoutCtx, "POST", url, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+im.jwt)

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithField("err", err).Error("client.Do failed")
		return "", xerrors.Errorf("pin request: %s: %w", err, domain.ErrUploadFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p := struct {
			Error string `json:"error"`
		}{}
		json.NewDecoder(resp.Body).Decode(&p)
		c.WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"error":  p.Error,
		}).Error("pin request rejected")
		return "", xerrors.Errorf("pin rejected with status %d: %w", resp.StatusCode, domain.ErrUploadFailed)
	}

	p := struct {
		IpfsHash string `json:"IpfsHash"`
	}{}

	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		c.WithField("err", err).Error("decode pin response failed")
		return "", err
	}

	if p.IpfsHash == "" {
		return "", xerrors.Errorf("pin response missing cid: %w", domain.ErrUploadFailed)
	}

	return p.IpfsHash, nil
}

// StringifyBigInts rewrites big.Int values inside maps and slices into
// decimal strings so the document survives json encoding unchanged
func StringifyBigInts(value interface{}) interface{} {
	switch v := value.(type) {
	case *big.Int:
		return v.String()
	case big.Int:
		return v.String()
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = StringifyBigInts(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = StringifyBigInts(e)
		}
		return out
	default:
		return value
	}
}
