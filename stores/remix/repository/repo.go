package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/remix"
	"github.com/remixer-xyz/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) remix.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, record *remix.PublishedRemix) error {
	record.CoinAddress = record.CoinAddress.ToLower()
	record.PayoutRecipient = record.PayoutRecipient.ToLower()
	if err := im.q.Insert(c, domain.TablePublishedRemixes, record); err != nil && err != query.ErrDuplicateKey {
		c.WithField("err", err).Error("insert published remix failed")
		return err
	}
	return nil
}

func (im *impl) List(c ctx.Ctx, offset, limit int) ([]*remix.PublishedRemix, error) {
	res := []*remix.PublishedRemix{}
	if err := im.q.Search(c, domain.TablePublishedRemixes, offset, limit, "-createdAt", bson.M{}, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, coinAddress domain.Address) (*remix.PublishedRemix, error) {
	res := &remix.PublishedRemix{}
	selector := bson.M{"coinAddress": coinAddress.ToLower()}
	if err := im.q.FindOne(c, domain.TablePublishedRemixes, selector, res); err != nil {
		if err == query.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Count(c ctx.Ctx) (int, error) {
	n, err := im.q.Count(c, domain.TablePublishedRemixes, bson.M{})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}
