package services

import (
	"context"
	"sync"

	"github.com/stripe/stripe-go/v76"
)

type fakeTransport struct {
	mu   sync.Mutex
	sent []OutgoingMail
	err  error
}

func (f *fakeTransport) Name() string { return "fake" }

func (f *fakeTransport) Send(_ context.Context, msg OutgoingMail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeTransport) messages() []OutgoingMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]OutgoingMail(nil), f.sent...)
}

type fakeGateway struct {
	intentParams       *stripe.PaymentIntentParams
	customerParams     *stripe.CustomerParams
	priceParams        *stripe.PriceParams
	subscriptionParams *stripe.SubscriptionParams

	intentErr       error
	subscriptionErr error
}

func (f *fakeGateway) NewPaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.intentParams = params
	if f.intentErr != nil {
		return nil, f.intentErr
	}
	return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil
}

func (f *fakeGateway) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	f.customerParams = params
	return &stripe.Customer{ID: "cus_123"}, nil
}

func (f *fakeGateway) NewPrice(params *stripe.PriceParams) (*stripe.Price, error) {
	f.priceParams = params
	return &stripe.Price{ID: "price_123"}, nil
}

func (f *fakeGateway) NewSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	f.subscriptionParams = params
	if f.subscriptionErr != nil {
		return nil, f.subscriptionErr
	}
	return &stripe.Subscription{
		ID: "sub_123",
		LatestInvoice: &stripe.Invoice{
			PaymentIntent: &stripe.PaymentIntent{ClientSecret: "sub_secret"},
		},
	}, nil
}
