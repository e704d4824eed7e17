package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/pkg/utils"
)

func TestPaymentServiceNotConfigured(t *testing.T) {
	svc := NewPaymentService(NewStripeGateway(""), zap.NewNop())

	_, err := svc.CreateDonationIntent(context.Background(), request_models.CreateDonationIntentRequest{Amount: 10})
	if !errors.Is(err, utils.ErrPaymentNotConfigured) {
		t.Fatalf("expected ErrPaymentNotConfigured, got %v", err)
	}
	_, err = svc.CreateSubscription(context.Background(), request_models.CreateSubscriptionRequest{Amount: 10})
	if !errors.Is(err, utils.ErrPaymentNotConfigured) {
		t.Fatalf("expected ErrPaymentNotConfigured, got %v", err)
	}
}

func TestCreateDonationIntent(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(gw, zap.NewNop())

	resp, err := svc.CreateDonationIntent(context.Background(), request_models.CreateDonationIntentRequest{Amount: 19.99, DonationType: "conservation"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ClientSecret != "pi_123_secret" {
		t.Fatalf("unexpected secret %q", resp.ClientSecret)
	}
	if got := *gw.intentParams.Amount; got != 1999 {
		t.Fatalf("expected 1999 cents, got %d", got)
	}
	if *gw.intentParams.Currency != "usd" {
		t.Fatalf("expected usd, got %q", *gw.intentParams.Currency)
	}
	if gw.intentParams.Metadata["donationType"] != "conservation" {
		t.Fatalf("donationType metadata missing: %v", gw.intentParams.Metadata)
	}
}

func TestCreateDonationIntentRejectsSubCentAmounts(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{}, zap.NewNop())

	_, err := svc.CreateDonationIntent(context.Background(), request_models.CreateDonationIntentRequest{Amount: 0.004})
	var verr *utils.ValidationError
	if !errors.As(err, &verr) || verr.Fields[0].Field != "amount" {
		t.Fatalf("expected amount validation error, got %v", err)
	}
}

func TestCreateSubscription(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(gw, zap.NewNop())

	resp, err := svc.CreateSubscription(context.Background(), request_models.CreateSubscriptionRequest{
		Email:         "jane@x.com",
		Name:          "Jane",
		PaymentMethod: "pm_card_visa",
		Amount:        25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SubscriptionID != "sub_123" || resp.ClientSecret != "sub_secret" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if *gw.customerParams.InvoiceSettings.DefaultPaymentMethod != "pm_card_visa" {
		t.Fatal("payment method should become the customer's default")
	}
	if *gw.priceParams.UnitAmount != 2500 || *gw.priceParams.Recurring.Interval != "month" {
		t.Fatalf("unexpected price params %+v", gw.priceParams)
	}
	if *gw.subscriptionParams.Customer != "cus_123" || *gw.subscriptionParams.Items[0].Price != "price_123" {
		t.Fatal("subscription should bind the new customer and price")
	}
	if *gw.subscriptionParams.PaymentBehavior != "default_incomplete" {
		t.Fatalf("unexpected payment behavior %q", *gw.subscriptionParams.PaymentBehavior)
	}
}

func TestPaymentProviderErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"card errors keep their message", &stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."}, "Your card was declined."},
		{"api errors are hidden", &stripe.Error{Type: stripe.ErrorTypeAPI, Msg: "internal detail"}, ""},
		{"transport errors are hidden", errors.New("dial tcp: timeout"), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewPaymentService(&fakeGateway{intentErr: tc.err}, zap.NewNop())

			_, err := svc.CreateDonationIntent(context.Background(), request_models.CreateDonationIntentRequest{Amount: 5})
			var perr *utils.ProviderError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ProviderError, got %v", err)
			}
			if !errors.Is(err, utils.ErrPaymentProvider) {
				t.Fatal("provider error should wrap ErrPaymentProvider")
			}
			if perr.PublicMessage != tc.wantMsg {
				t.Fatalf("expected public message %q, got %q", tc.wantMsg, perr.PublicMessage)
			}
		})
	}
}
