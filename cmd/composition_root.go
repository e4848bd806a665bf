package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rapidxcel/internal/adapters/out/postgres"
	"rapidxcel/internal/core/application/usecases/commands"
	"rapidxcel/internal/core/application/usecases/queries"
	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	serviceArea    services.ServiceArea
	pricer         services.Pricer
	reservationTTL time.Duration
}

// NewCompositionRoot wires the domain services from configuration and prepares
// the unit of work factory. Fails fast on unparseable configuration values.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	pinCodes := strings.Split(config.ServiceablePinCodes, ",")
	for i, code := range pinCodes {
		pinCodes[i] = strings.TrimSpace(code)
	}

	rate, err := kernel.MoneyFromString(config.ShippingRatePerUnit)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid shipping rate %q: %w", config.ShippingRatePerUnit, err)
	}

	pricer, err := services.NewPricer(rate)
	if err != nil {
		return CompositionRoot{}, err
	}

	ttlMinutes, err := strconv.Atoi(config.ReservationTTLMinutes)
	if err != nil || ttlMinutes <= 0 {
		return CompositionRoot{}, fmt.Errorf("invalid reservation TTL %q: must be a positive number of minutes", config.ReservationTTLMinutes)
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		serviceArea:    services.NewServiceArea(pinCodes),
		pricer:         pricer,
		reservationTTL: time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.ReservationUoWFactory = FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.serviceArea, c.pricer, c.reservationTTL)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.ConfirmOrderUoWFactory = FuncConfirmOrderUoWFactory(func() commands.ConfirmOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.pricer)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseExpiredReservationsCommandHandler() commands.ReleaseExpiredReservationsCommandHandler {
	var f commands.ReservationUoWFactory = FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseExpiredReservationsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetStocksQueryHandler() queries.GetStocksQueryHandler {
	return queries.NewGetStocksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncConfirmOrderUoWFactory func() commands.ConfirmOrderUoW

func (f FuncConfirmOrderUoWFactory) Create() commands.ConfirmOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
