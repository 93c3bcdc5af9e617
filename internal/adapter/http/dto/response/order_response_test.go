package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"rocket_help/internal/domain/entities"
	"rocket_help/internal/usecase"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("open order omits close fields", func(t *testing.T) {
		res := FromOrder(entities.Order{ID: "1", Patrimony: "9231123", Description: "no video", Status: entities.OrderStatusOpen, CreatedAt: now})
		if res.ID != "1" || res.Patrimony != "9231123" || res.Status != "open" || !res.CreatedAt.Equal(now) {
			t.Fatalf("unexpected mapped fields: %+v", res)
		}

		body, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(body), "closed_at") || strings.Contains(string(body), "solution") {
			t.Fatalf("unexpected close fields in %s", body)
		}
	})

	t.Run("closed order", func(t *testing.T) {
		res := FromOrder(entities.Order{ID: "1", Status: entities.OrderStatusClosed, Solution: "Replaced cable", CreatedAt: now, ClosedAt: &now})
		if res.Status != "closed" || res.Solution != "Replaced cable" || res.ClosedAt == nil || !res.ClosedAt.Equal(now) {
			t.Fatalf("unexpected mapped fields: %+v", res)
		}
	})

	t.Run("list never nil", func(t *testing.T) {
		if res := FromOrders(nil); res == nil || len(res) != 0 {
			t.Fatalf("expected empty slice, got %#v", res)
		}
	})
}

func TestFromSession(t *testing.T) {
	exp := time.Now().UTC()
	res := FromSession(usecase.Session{
		Token:     "jwt",
		ExpiresAt: exp,
		User:      entities.User{ID: "u-1", Email: "tech@example.com", Name: "Tech", PasswordHash: "hash"},
	})
	if res.Token != "jwt" || !res.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected session: %+v", res)
	}
	if res.User.ID != "u-1" || res.User.Email != "tech@example.com" || res.User.Name != "Tech" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
}
