package cmd

import (
	"github.com/fox-one/pkg/store/db"

	"lendpool/core"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

type accessControl struct{}

func (accessControl) CanSetPrice(userID string) bool {
	return cfg.IsAdmin(userID)
}

func provideAccessControl() core.AccessControl {
	return accessControl{}
}
