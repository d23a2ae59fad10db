package usecase

import (
	"github.com/viney-shih/goroutines"

	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/log"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/explore"
	"github.com/remixer-xyz/goapi/service/zora"
)

const defaultSectionSize = 10

type impl struct {
	zora zora.Client
}

func New(z zora.Client) explore.Usecase {
	return &impl{zora: z}
}

func (im *impl) GetSection(c ctx.Ctx, category explore.Category, count int) (*explore.Section, error) {
	if !category.Valid() {
		return nil, domain.ErrBadParamInput
	}
	if count <= 0 {
		count = defaultSectionSize
	}
	coins, err := im.zora.GetExploreList(c, category, count)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"category": category,
		}).Error("zora.GetExploreList failed")
		return nil, err
	}
	return &explore.Section{Category: category, Coins: coins}, nil
}

// GetAllSections fetches every leaderboard concurrently. A failed section
// carries its error so the rest of the page still renders.
func (im *impl) GetAllSections(c ctx.Ctx, count int) ([]*explore.Section, error) {
	if count <= 0 {
		count = defaultSectionSize
	}

	b := goroutines.NewBatch(len(explore.Categories), goroutines.WithBatchSize(len(explore.Categories)))
	defer b.Close()
	for _, category := range explore.Categories {
		cat := category
		b.Queue(func() (interface{}, error) {
			coins, err := im.zora.GetExploreList(c, cat, count)
			if err != nil {
				c.WithFields(log.Fields{
					"err":      err,
					"category": cat,
				}).Error("zora.GetExploreList failed")
				return &explore.Section{Category: cat, Err: err}, nil
			}
			return &explore.Section{Category: cat, Coins: coins}, nil
		})
	}
	b.QueueComplete()

	byCategory := make(map[explore.Category]*explore.Section, len(explore.Categories))
	for ret := range b.Results() {
		section := ret.Value().(*explore.Section)
		byCategory[section.Category] = section
	}

	// keep display order stable regardless of completion order
	sections := make([]*explore.Section, 0, len(explore.Categories))
	for _, category := range explore.Categories {
		sections = append(sections, byCategory[category])
	}
	return sections, nil
}
