package orders

import (
	"errors"
	"testing"
	"time"

	"kitten-shop/internal/domain/catalog"
)

func TestBuildOrder(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	items := []catalog.Cat{
		{ID: 1, Name: "Амур", Breed: "Донской сфинкс", Price: 42000},
		{ID: 2, Name: "Василиса", Breed: "Донской сфинкс", Price: 36000},
	}

	o, err := BuildOrder(OrderForm{
		Name:    "  Анна  ",
		Phone:   " +7 900 000-00-00 ",
		Address: "Москва",
	}, items, now)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if o.Type != "order" {
		t.Errorf("type = %q", o.Type)
	}
	if o.Name != "Анна" || o.Phone != "+7 900 000-00-00" {
		t.Errorf("fields not trimmed: name=%q phone=%q", o.Name, o.Phone)
	}
	if len(o.Items) != 2 || o.Items[0].Name != "Амур" || o.Items[1].Breed != "Донской сфинкс" {
		t.Errorf("items snapshot = %+v", o.Items)
	}
	if o.Total != 78000 {
		t.Errorf("total = %d, want 78000", o.Total)
	}
	if !o.TS.Equal(now) {
		t.Errorf("ts = %v", o.TS)
	}
}

func TestBuildOrder_EmptyCart(t *testing.T) {
	_, err := BuildOrder(OrderForm{Name: "Анна", Phone: "123"}, nil, time.Now())
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("err = %v, want ErrCartEmpty", err)
	}
}

func TestBuildFeedback_SubjectLabels(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{SubjectQuestion, "Вопрос о котах"},
		{SubjectBooking, "Запись на просмотр"},
		{SubjectReview, "Отзыв о питомнике"},
		{SubjectDelivery, "Вопрос о доставке"},
		{SubjectOther, "Другое"},
		{"", "Другое"},
		{"spam", "Другое"},
	}
	for _, c := range cases {
		f := BuildFeedback(FeedbackForm{Name: "Анна", Subject: c.code, Message: "привет"}, time.Now())
		if f.Subject != c.want {
			t.Errorf("subject %q mapped to %q, want %q", c.code, f.Subject, c.want)
		}
	}
}

func TestBuildFeedback_Trims(t *testing.T) {
	f := BuildFeedback(FeedbackForm{
		Name:    " Анна ",
		Contact: " @anna ",
		Subject: SubjectQuestion,
		Message: "  вопрос  ",
	}, time.Now())

	if f.Type != "feedback" {
		t.Errorf("type = %q", f.Type)
	}
	if f.Name != "Анна" || f.Contact != "@anna" || f.Message != "вопрос" {
		t.Errorf("fields not trimmed: %+v", f)
	}
}
