// Package http exposes the marketplace operations over a REST API built on
// echo. Handlers translate requests into commands and queries, and map domain
// errors onto HTTP status codes.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cardmarket/internal/core/application/usecases/commands"
	"cardmarket/internal/core/application/usecases/queries"
	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/core/ports"
	"cardmarket/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerIntermediaryHandler commands.RegisterIntermediaryCommandHandler
	loginIntermediaryHandler    commands.LoginIntermediaryCommandHandler
	removeIntermediaryHandler   commands.RemoveIntermediaryCommandHandler
	planShipmentHandler         commands.PlanShipmentCommandHandler
	activateShipmentHandler     commands.ActivateShipmentCommandHandler
	generateOrderHandler        commands.GenerateOrderCommandHandler
	markSellerSentHandler       commands.MarkSellerSentCommandHandler
	dispatchShipmentHandler     commands.DispatchShipmentCommandHandler
	receiveShipmentHandler      commands.ReceiveShipmentCommandHandler
	markDeliveredHandler        commands.MarkDeliveredCommandHandler
	markWithdrawnHandler        commands.MarkWithdrawnCommandHandler
	cancelShipmentHandler       commands.CancelShipmentCommandHandler
	deleteShipmentHandler       commands.DeleteShipmentCommandHandler
	updateShipmentHandler       commands.UpdateShipmentDetailsCommandHandler
	createPurchaseHandler       commands.CreatePurchaseCommandHandler
	attachPurchaseHandler       commands.AttachPurchaseCommandHandler
	detachPurchaseHandler       commands.DetachPurchaseCommandHandler
	setPurchaseStatusHandler    commands.SetPurchaseStatusCommandHandler

	// Query handlers
	getShipmentsHandler         queries.GetShipmentsQueryHandler
	getShipmentPurchasesHandler queries.GetShipmentPurchasesQueryHandler

	tokenSigner ports.TokenSigner
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	RegisterIntermediary commands.RegisterIntermediaryCommandHandler
	LoginIntermediary    commands.LoginIntermediaryCommandHandler
	RemoveIntermediary   commands.RemoveIntermediaryCommandHandler
	PlanShipment         commands.PlanShipmentCommandHandler
	ActivateShipment     commands.ActivateShipmentCommandHandler
	GenerateOrder        commands.GenerateOrderCommandHandler
	MarkSellerSent       commands.MarkSellerSentCommandHandler
	DispatchShipment     commands.DispatchShipmentCommandHandler
	ReceiveShipment      commands.ReceiveShipmentCommandHandler
	MarkDelivered        commands.MarkDeliveredCommandHandler
	MarkWithdrawn        commands.MarkWithdrawnCommandHandler
	CancelShipment       commands.CancelShipmentCommandHandler
	DeleteShipment       commands.DeleteShipmentCommandHandler
	UpdateShipment       commands.UpdateShipmentDetailsCommandHandler
	CreatePurchase       commands.CreatePurchaseCommandHandler
	AttachPurchase       commands.AttachPurchaseCommandHandler
	DetachPurchase       commands.DetachPurchaseCommandHandler
	SetPurchaseStatus    commands.SetPurchaseStatusCommandHandler
	GetShipments         queries.GetShipmentsQueryHandler
	GetShipmentPurchases queries.GetShipmentPurchasesQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(handlers ServerHandlers, tokenSigner ports.TokenSigner) *Server {
	return &Server{
		registerIntermediaryHandler: handlers.RegisterIntermediary,
		loginIntermediaryHandler:    handlers.LoginIntermediary,
		removeIntermediaryHandler:   handlers.RemoveIntermediary,
		planShipmentHandler:         handlers.PlanShipment,
		activateShipmentHandler:     handlers.ActivateShipment,
		generateOrderHandler:        handlers.GenerateOrder,
		markSellerSentHandler:       handlers.MarkSellerSent,
		dispatchShipmentHandler:     handlers.DispatchShipment,
		receiveShipmentHandler:      handlers.ReceiveShipment,
		markDeliveredHandler:        handlers.MarkDelivered,
		markWithdrawnHandler:        handlers.MarkWithdrawn,
		cancelShipmentHandler:       handlers.CancelShipment,
		deleteShipmentHandler:       handlers.DeleteShipment,
		updateShipmentHandler:       handlers.UpdateShipment,
		createPurchaseHandler:       handlers.CreatePurchase,
		attachPurchaseHandler:       handlers.AttachPurchase,
		detachPurchaseHandler:       handlers.DetachPurchase,
		setPurchaseStatusHandler:    handlers.SetPurchaseStatus,
		getShipmentsHandler:         handlers.GetShipments,
		getShipmentPurchasesHandler: handlers.GetShipmentPurchases,
		tokenSigner:                 tokenSigner,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. Registration,
// login and purchase creation are public; everything else requires a bearer
// token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/intermediaries", s.RegisterIntermediary)
	api.POST("/auth/login", s.Login)
	api.POST("/purchases", s.CreatePurchase)

	authed := api.Group("", BearerAuth(s.tokenSigner))

	authed.DELETE("/intermediaries/:intermediaryID", s.RemoveIntermediary)

	authed.POST("/shipments", s.PlanShipment)
	authed.GET("/shipments", s.GetShipments)
	authed.PATCH("/shipments/:shipmentID", s.UpdateShipmentDetails)
	authed.DELETE("/shipments/:shipmentID", s.DeleteShipment)

	authed.POST("/shipments/:shipmentID/activate", s.ActivateShipment)
	authed.POST("/shipments/:shipmentID/generate-order", s.GenerateOrder)
	authed.POST("/shipments/:shipmentID/seller-sent", s.MarkSellerSent)
	authed.POST("/shipments/:shipmentID/dispatch", s.DispatchShipment)
	authed.POST("/shipments/:shipmentID/receive", s.ReceiveShipment)
	authed.POST("/shipments/:shipmentID/delivered", s.MarkDelivered)
	authed.POST("/shipments/:shipmentID/withdrawn", s.MarkWithdrawn)
	authed.POST("/shipments/:shipmentID/cancel", s.CancelShipment)

	authed.GET("/shipments/:shipmentID/purchases", s.GetShipmentPurchases)
	authed.POST("/shipments/:shipmentID/purchases/:purchaseID", s.AttachPurchase)
	authed.DELETE("/shipments/:shipmentID/purchases/:purchaseID", s.DetachPurchase)

	authed.PUT("/purchases/:purchaseID/status", s.SetPurchaseStatus)
}

// RegisterIntermediary handles POST /api/v1/intermediaries.
func (s *Server) RegisterIntermediary(ctx echo.Context) error {
	var request RegisterIntermediaryRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	intermediaryID := kernel.NewUUID()
	cmd, err := commands.NewRegisterIntermediaryCommand(
		intermediaryID, request.Name, request.Email, request.City, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerIntermediaryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: intermediaryID.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewLoginIntermediaryCommand(request.Email, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.loginIntermediaryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// RemoveIntermediary handles DELETE /api/v1/intermediaries/:intermediaryID.
// The cascade report is returned even when parts of it failed.
func (s *Server) RemoveIntermediary(ctx echo.Context) error {
	intermediaryID, err := kernel.UUIDFromString(ctx.Param("intermediaryID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid intermediary ID",
		})
	}

	cmd, err := commands.NewRemoveIntermediaryCommand(intermediaryID)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.removeIntermediaryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	status := http.StatusOK
	if len(report.Failures) > 0 {
		status = http.StatusMultiStatus
	}
	return ctx.JSON(status, report)
}

// PlanShipment handles POST /api/v1/shipments. The authenticated intermediary
// becomes the shipment's origin.
func (s *Server) PlanShipment(ctx echo.Context) error {
	origin, ok := actorID(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	var request PlanShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var destination *kernel.UUID
	if request.DestinationIntermediaryID != nil {
		id, err := kernel.UUIDFromString(*request.DestinationIntermediaryID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "invalid destination intermediary ID",
			})
		}
		destination = &id
	}

	var price *kernel.Money
	if request.PricePerPurchaseCents != nil {
		currency := kernel.DefaultCurrency
		if request.PricePerPurchaseCurrency != nil {
			currency = *request.PricePerPurchaseCurrency
		}
		money, err := kernel.NewMoney(*request.PricePerPurchaseCents, currency)
		if err != nil {
			return respondError(ctx, err)
		}
		price = &money
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewPlanShipmentCommand(
		shipmentID, origin, destination,
		request.MinPurchaseThreshold, price, request.ScheduledDispatchDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.planShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// GetShipments handles GET /api/v1/shipments?role=origin|destination|either.
func (s *Server) GetShipments(ctx echo.Context) error {
	actor, ok := actorID(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	role := queries.ShipmentRole(ctx.QueryParam("role"))
	if role == "" {
		role = queries.RoleEither
	}

	query, err := queries.NewGetShipmentsQuery(actor, role)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipmentResponse, len(rows))
	for i, row := range rows {
		response[i] = ShipmentResponse{
			ID:                    row.ID.String(),
			Status:                row.Status,
			OriginIntermediaryID:  row.OriginIntermediaryID.String(),
			MinPurchaseThreshold:  row.MinPurchaseThreshold,
			ScheduledDispatchDate: row.ScheduledDispatchDate,
			PurchaseCount:         row.PurchaseCount,
		}
		if row.DestinationIntermediaryID != nil {
			destination := row.DestinationIntermediaryID.String()
			response[i].DestinationIntermediaryID = &destination
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateShipmentDetails handles PATCH /api/v1/shipments/:shipmentID.
func (s *Server) UpdateShipmentDetails(ctx echo.Context) error {
	shipmentID, actor, err := s.shipmentAndActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateShipmentDetailsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewUpdateShipmentDetailsCommand(
		shipmentID, actor, request.Notes, request.ScheduledDispatchDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:shipmentID.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, actor, err := s.shipmentAndActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActivateShipment handles POST /api/v1/shipments/:shipmentID/activate.
func (s *Server) ActivateShipment(ctx echo.Context) error {
	shipmentID, actor, err := s.shipmentAndActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewActivateShipmentCommand(shipmentID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.activateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GenerateOrder handles POST /api/v1/shipments/:shipmentID/generate-order.
func (s *Server) GenerateOrder(ctx echo.Context) error {
	shipmentID, actor, err := s.shipmentAndActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewGenerateOrderCommand(shipmentID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.generateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkSellerSent handles POST /api/v1/shipments/:shipmentID/seller-sent.
// Recorded on behalf of sellers, so no ownership check applies.
func (s *Server) MarkSellerSent(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid shipment ID",
		})
	}

	cmd, err := commands.NewMarkSellerSentCommand(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markSellerSentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchShipment handles POST /api/v1/shipments/:shipmentID/dispatch.
func (s *Server) DispatchShipment(ctx echo.Context) error {
	shipmentID, actor, err := s.shipmentAndActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request DispatchShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewDispatchShipmentCommand(shipmentID, actor, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.dispatchShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveShipment handles POST /api/v1/shipments/:shipmentID/receive.
func (s *Server) ReceiveShipment(ctx echo.Context) error {
	shipmentID, actor, err := s.shipmentAndActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReceiveShipmentCommand(shipmentID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.receiveShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/shipments/:shipmentID/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	shipmentID, actor, err := s.shipmentAndActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(shipmentID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkWithdrawn handles POST /api/v1/shipments/:shipmentID/withdrawn.
func (s *Server) MarkWithdrawn(ctx echo.Context) error {
	shipmentID, actor, err := s.shipmentAndActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkWithdrawnCommand(shipmentID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markWithdrawnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/:shipmentID/cancel.
func (s *Server) CancelShipment(ctx echo.Context) error {
	shipmentID, actor, err := s.shipmentAndActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(shipmentID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentPurchases handles GET /api/v1/shipments/:shipmentID/purchases.
func (s *Server) GetShipmentPurchases(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid shipment ID",
		})
	}

	query, err := queries.NewGetShipmentPurchasesQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getShipmentPurchasesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PurchaseResponse, len(rows))
	for i, row := range rows {
		response[i] = PurchaseResponse{
			ID:              row.ID.String(),
			BuyerID:         row.BuyerID.String(),
			Status:          row.Status,
			TotalCents:      row.TotalCents,
			TotalCurrency:   row.TotalCurrency,
			DeliveryAddress: row.DeliveryAddress,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePurchase handles POST /api/v1/purchases.
func (s *Server) CreatePurchase(ctx echo.Context) error {
	var request CreatePurchaseRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	buyerID, err := kernel.UUIDFromString(request.BuyerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid buyer ID",
		})
	}

	lineItems := make([]purchase.LineItem, 0, len(request.LineItems))
	for _, item := range request.LineItems {
		cardID, err := kernel.UUIDFromString(item.CardID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "invalid card ID",
			})
		}

		currency := item.UnitPriceCurrency
		if currency == "" {
			currency = kernel.DefaultCurrency
		}
		unitPrice, err := kernel.NewMoney(item.UnitPriceCents, currency)
		if err != nil {
			return respondError(ctx, err)
		}

		lineItem, err := purchase.NewLineItem(cardID, item.CardName, item.Quantity, unitPrice)
		if err != nil {
			return respondError(ctx, err)
		}
		lineItems = append(lineItems, lineItem)
	}

	purchaseID := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseCommand(purchaseID, buyerID, lineItems, request.DeliveryAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createPurchaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: purchaseID.String()})
}

// AttachPurchase handles POST /api/v1/shipments/:shipmentID/purchases/:purchaseID.
func (s *Server) AttachPurchase(ctx echo.Context) error {
	shipmentID, purchaseID, err := s.shipmentAndPurchase(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAttachPurchaseCommand(shipmentID, purchaseID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.attachPurchaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DetachPurchase handles DELETE /api/v1/shipments/:shipmentID/purchases/:purchaseID.
func (s *Server) DetachPurchase(ctx echo.Context) error {
	shipmentID, purchaseID, err := s.shipmentAndPurchase(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDetachPurchaseCommand(shipmentID, purchaseID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.detachPurchaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPurchaseStatus handles PUT /api/v1/purchases/:purchaseID/status.
func (s *Server) SetPurchaseStatus(ctx echo.Context) error {
	purchaseID, err := kernel.UUIDFromString(ctx.Param("purchaseID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid purchase ID",
		})
	}

	var request SetPurchaseStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewSetPurchaseStatusCommand(purchaseID, request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setPurchaseStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// shipmentAndActor extracts the shipment path parameter and the authenticated
// actor. Failures come back as classified errors for respondError.
func (s *Server) shipmentAndActor(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("shipmentID", err)
	}

	actor, ok := actorID(ctx)
	if !ok {
		return kernel.UUID{}, kernel.UUID{}, errs.NewUnauthorizedError("token")
	}

	return shipmentID, actor, nil
}

func (s *Server) shipmentAndPurchase(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("shipmentID", err)
	}

	purchaseID, err := kernel.UUIDFromString(ctx.Param("purchaseID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("purchaseID", err)
	}

	return shipmentID, purchaseID, nil
}
