package bridge_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"kitten-shop/internal/adapters/gateway/bridge"
	"kitten-shop/internal/domain/orders"
)

func TestGateway_SendsEncodedPayload(t *testing.T) {
	var sent string
	gw, err := bridge.New(func(data string) { sent = data })
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}

	o := orders.Order{
		Type:  "order",
		Name:  "Анна",
		Phone: "123",
		Items: []orders.Item{{ID: 1, Name: "Амур", Price: 42000}},
		Total: 42000,
		TS:    time.Now(),
	}
	if err := gw.Send(context.Background(), o); err != nil {
		t.Fatalf("send: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(sent), &decoded); err != nil {
		t.Fatalf("sent data is not json: %v", err)
	}
	if decoded["type"] != "order" || decoded["total"] != float64(42000) {
		t.Fatalf("decoded = %v", decoded)
	}
	items, ok := decoded["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v", decoded["items"])
	}
}

func TestNew_RequiresSendFunc(t *testing.T) {
	if _, err := bridge.New(nil); err == nil {
		t.Fatal("expected error for nil send func")
	}
}
