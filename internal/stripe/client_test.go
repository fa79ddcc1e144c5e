package stripe_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/visapath/eligibility-backend/internal/stripe"
)

func TestExtractPaymentIntentID(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr string
	}{
		{
			name: "typical succeeded event",
			data: `{"id":"pi_3Qx","object":"payment_intent","amount":4900,"status":"succeeded"}`,
			want: "pi_3Qx",
		},
		{
			name:    "missing id",
			data:    `{"object":"payment_intent","amount":4900}`,
			wantErr: "payment intent id is empty",
		},
		{
			name:    "malformed payload",
			data:    `{"id":`,
			wantErr: "unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := stripe.Event{
				ID:      "evt_1",
				Type:    "payment_intent.succeeded",
				DataRaw: json.RawMessage(tt.data),
			}
			got, err := stripe.ExtractPaymentIntentID(event)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("got err %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
