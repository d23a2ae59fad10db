package healthcheck

import (
	"github.com/remixer-xyz/goapi/base/ctx"
)

type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}
