package zora

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/log"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
	"github.com/remixer-xyz/goapi/domain/explore"
	"github.com/remixer-xyz/goapi/domain/keys"
	"github.com/remixer-xyz/goapi/service/cache"
	"github.com/remixer-xyz/goapi/service/cache/provider/primitive"
)

const defaultEndpoint = "https://api-sdk.zora.engineering"

// upstream list type names per explore category
var listTypes = map[explore.Category]string{
	explore.CategoryTopGainers:       "TOP_GAINERS",
	explore.CategoryMostValuable:     "MOST_VALUABLE",
	explore.CategoryNew:              "NEW",
	explore.CategoryTopVolume24h:     "TOP_VOLUME_24H",
	explore.CategoryLastTraded:       "LAST_TRADED",
	explore.CategoryLastTradedUnique: "LAST_TRADED_UNIQUE",
}

func NewClient(cfg *ClientCfg) Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &client{
		endpoint: endpoint,
		apikey:   cfg.Apikey,
		client:   cfg.HttpClient,
		timeout:  timeout,
		exploreCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "zora_explore_cache",
			Cache: primitive.NewPrimitive("zora_explore_cache", 4),
		}),
	}
}

type client struct {
	endpoint     string
	apikey       string
	client       http.Client
	timeout      time.Duration
	exploreCache cache.Service
}

func (c *client) GetProfileBalances(ctx bCtx.Ctx, identifier string, count int, after string) (*coin.BalancePage, error) {
	params := url.Values{
		"identifier": {identifier},
		"count":      {strconv.Itoa(count)},
	}
	if after != "" {
		params.Set("after", after)
	}
	url := fmt.Sprintf("%s/profileBalances?%s", c.endpoint, params.Encode())
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &profileBalancesResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	if resp.Profile == nil {
		return nil, ErrProfileNotFound
	}

	page := &coin.BalancePage{}
	for _, edge := range resp.Profile.CoinBalances.Edges {
		if edge.Node == nil {
			continue
		}
		page.Balances = append(page.Balances, edge.Node)
	}
	if resp.Profile.CoinBalances.PageInfo.HasNextPage {
		page.NextCursor = resp.Profile.CoinBalances.PageInfo.EndCursor
	}
	return page, nil
}

func (c *client) GetCoin(ctx bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*coin.Coin, error) {
	params := url.Values{
		"chainId": {strconv.Itoa(int(chainId))},
		"address": {address.ToLowerStr()},
	}
	url := fmt.Sprintf("%s/coin?%s", c.endpoint, params.Encode())
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &coinResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	if resp.Zora20Token == nil {
		return nil, ErrCoinNotFound
	}
	return resp.Zora20Token, nil
}

func (c *client) GetCoins(ctx bCtx.Ctx, chainId domain.ChainId, addresses []domain.Address) ([]*coin.Coin, error) {
	lowered := make([]string, len(addresses))
	for i, a := range addresses {
		lowered[i] = a.ToLowerStr()
	}
	params := url.Values{
		"chainId":   {strconv.Itoa(int(chainId))},
		"addresses": {strings.Join(lowered, ",")},
	}
	url := fmt.Sprintf("%s/coins?%s", c.endpoint, params.Encode())
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &coinsResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp.Zora20Tokens, nil
}

func (c *client) GetExploreList(ctx bCtx.Ctx, category explore.Category, count int) ([]*coin.Coin, error) {
	listType, ok := listTypes[category]
	if !ok {
		return nil, domain.ErrBadParamInput
	}

	key := keys.CacheKey(listType, strconv.Itoa(count))
	var coins []*coin.Coin
	if err := c.exploreCache.GetByFunc(ctx, key, &coins, func() (interface{}, error) {
		res, err := c.getExploreList(ctx, listType, count)
		if err != nil {
			return nil, err
		}
		return &res, nil
	}); err != nil {
		return nil, err
	}
	return coins, nil
}

func (c *client) getExploreList(ctx bCtx.Ctx, listType string, count int) ([]*coin.Coin, error) {
	params := url.Values{
		"listType": {listType},
		"count":    {strconv.Itoa(count)},
	}
	url := fmt.Sprintf("%s/explore?%s", c.endpoint, params.Encode())
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &exploreResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	coins := make([]*coin.Coin, 0, len(resp.ExploreList.Edges))
	for _, edge := range resp.ExploreList.Edges {
		if edge.Node == nil {
			continue
		}
		coins = append(coins, edge.Node)
	}
	return coins, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	if c.apikey != "" {
		req.Header.Set("X-API-KEY", c.apikey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
