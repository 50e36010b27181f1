package handlers

import (
	"romix/internal/config"
	"romix/internal/services"
	"romix/internal/store"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	AdminHandler    *AdminHandler
}

func NewDeps(st *store.Store, cfg config.Config) *Deps {
	checkoutSvc := services.NewCheckoutService(cfg.WhatsAppPhone)

	return &Deps{
		CatalogHandler:  &CatalogHandler{Store: st},
		ProductHandler:  &ProductHandler{Store: st},
		CartHandler:     &CartHandler{Store: st},
		CheckoutHandler: &CheckoutHandler{Store: st, Checkout: checkoutSvc},
		AdminHandler:    &AdminHandler{Store: st},
	}
}
