package services

import (
	"context"
	"errors"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/models/response_models"
	"safari/pkg/utils"
)

const (
	paymentCurrency         = string(stripe.CurrencyUSD)
	monthlyDonationProduct  = "Monthly Donation"
	subscriptionPaymentFlow = "default_incomplete"
)

// PaymentGateway is the slice of the Stripe API the donation flows use.
type PaymentGateway interface {
	NewPaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	NewPrice(params *stripe.PriceParams) (*stripe.Price, error)
	NewSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error)
}

type stripeGateway struct {
	api *client.API
}

// NewStripeGateway returns nil when secretKey is empty so callers can
// detect the unconfigured case.
func NewStripeGateway(secretKey string) PaymentGateway {
	if secretKey == "" {
		return nil
	}
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &stripeGateway{api: sc}
}

func (g *stripeGateway) NewPaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return g.api.PaymentIntents.New(params)
}

func (g *stripeGateway) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return g.api.Customers.New(params)
}

func (g *stripeGateway) NewPrice(params *stripe.PriceParams) (*stripe.Price, error) {
	return g.api.Prices.New(params)
}

func (g *stripeGateway) NewSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return g.api.Subscriptions.New(params)
}

type PaymentService interface {
	CreateDonationIntent(ctx context.Context, req request_models.CreateDonationIntentRequest) (*response_models.DonationIntentResponse, error)
	CreateSubscription(ctx context.Context, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error)
}

type paymentService struct {
	gateway PaymentGateway
	log     *zap.Logger
}

func NewPaymentService(gateway PaymentGateway, log *zap.Logger) PaymentService {
	return &paymentService{gateway: gateway, log: log.Named("payment")}
}

func (p *paymentService) CreateDonationIntent(ctx context.Context, req request_models.CreateDonationIntentRequest) (*response_models.DonationIntentResponse, error) {
	if p.gateway == nil {
		return nil, utils.ErrPaymentNotConfigured
	}
	cents, err := toCents(req.Amount)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(cents),
		Currency: stripe.String(paymentCurrency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.DonationType != "" {
		params.AddMetadata("donationType", req.DonationType)
	}

	intent, err := p.gateway.NewPaymentIntent(params)
	if err != nil {
		return nil, p.providerError("create payment intent", err)
	}

	p.log.Info("payment intent created", zap.String("intent_id", intent.ID), zap.Int64("amount_cents", cents))
	return &response_models.DonationIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// CreateSubscription creates the customer, a monthly price for the given
// amount and an incomplete subscription whose first invoice the client
// confirms with the returned secret.
func (p *paymentService) CreateSubscription(ctx context.Context, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	if p.gateway == nil {
		return nil, utils.ErrPaymentNotConfigured
	}
	cents, err := toCents(req.Amount)
	if err != nil {
		return nil, err
	}

	customerParams := &stripe.CustomerParams{
		Email:         stripe.String(req.Email),
		Name:          stripe.String(req.Name),
		PaymentMethod: stripe.String(req.PaymentMethod),
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(req.PaymentMethod),
		},
	}
	customerParams.Context = ctx
	customer, err := p.gateway.NewCustomer(customerParams)
	if err != nil {
		return nil, p.providerError("create customer", err)
	}

	priceParams := &stripe.PriceParams{
		Currency:   stripe.String(paymentCurrency),
		UnitAmount: stripe.Int64(cents),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(monthlyDonationProduct),
		},
	}
	priceParams.Context = ctx
	price, err := p.gateway.NewPrice(priceParams)
	if err != nil {
		return nil, p.providerError("create price", err)
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(customer.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(price.ID)},
		},
		DefaultPaymentMethod: stripe.String(req.PaymentMethod),
		PaymentBehavior:      stripe.String(subscriptionPaymentFlow),
	}
	subParams.Context = ctx
	subParams.AddExpand("latest_invoice.payment_intent")
	sub, err := p.gateway.NewSubscription(subParams)
	if err != nil {
		return nil, p.providerError("create subscription", err)
	}

	resp := &response_models.SubscriptionResponse{SubscriptionID: sub.ID}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		resp.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}

	p.log.Info("subscription created",
		zap.String("subscription_id", sub.ID),
		zap.String("customer_id", customer.ID),
		zap.Int64("amount_cents", cents),
	)
	return resp, nil
}

// providerError keeps card decline messages, which are written for the
// payer, and hides everything else.
func (p *paymentService) providerError(op string, err error) error {
	p.log.Error("stripe call failed", zap.String("op", op), zap.Error(err))

	perr := &utils.ProviderError{Kind: utils.ErrPaymentProvider, Err: err}
	var serr *stripe.Error
	if errors.As(err, &serr) && serr.Type == stripe.ErrorTypeCard {
		perr.PublicMessage = serr.Msg
	}
	return perr
}

func toCents(amount float64) (int64, error) {
	cents := int64(math.Round(amount * 100))
	if cents < 1 {
		return 0, utils.NewValidationError("amount", "gt", "must be at least 0.01")
	}
	return cents, nil
}
