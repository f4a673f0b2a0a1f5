package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/CH-Shireesha/teacher-management/core/payment"
)

type paymentApi struct {
	service *payment.Service
}

func registerPaymentAPI(g *echo.Group, svc *payment.Service) {
	api := paymentApi{service: svc}

	pg := g.Group("/payments")
	pg.GET("", api.paymentQuery)
	pg.POST("", api.paymentCreate)
	pg.GET("/:id", api.paymentRetrieve)
	pg.GET("/upi/:txn", api.upiStatus)
	pg.DELETE("/upi/:txn", api.upiCancel)
}

// Handlers

func (api *paymentApi) paymentQuery(ctx echo.Context) error {
	filter := new(payment.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	payments, err := api.service.Filter(*filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payments)
}

// paymentCreate records a payment. Direct methods complete immediately;
// the UPI method starts a simulated gateway flow and answers 202 with the
// pending record, which flips to completed once processing finishes.
func (api *paymentApi) paymentCreate(ctx echo.Context) error {
	data := new(payment.NewPayment)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	if data.Method == payment.MethodUpi {
		p, flow, err := api.service.CreateUpi(*data, nil)
		if err != nil {
			return err
		}
		if err = flow.Initiate(); err != nil {
			return err
		}
		return ctx.JSON(http.StatusAccepted, p)
	}

	p, err := api.service.Create(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *paymentApi) paymentRetrieve(ctx echo.Context) error {
	p, err := api.service.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

// upiStatus polls a UPI payment by transaction id.
func (api *paymentApi) upiStatus(ctx echo.Context) error {
	p, err := api.service.GetByTransactionID(ctx.Param("txn"))
	if err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *paymentApi) upiCancel(ctx echo.Context) error {
	if err := api.service.CancelUpi(ctx.Param("txn")); err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			return errHttpNotFound
		}
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
