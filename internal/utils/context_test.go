package utils

import (
	"context"
	"testing"

	"github.com/vibeqa/auth-service/models"
)

func TestGetIdentityFromContext_Found(t *testing.T) {
	want := models.AuthenticatedIdentity{UserID: 42, Email: "a@x.com"}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, want)

	got, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected identity to be found")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	_, ok := GetIdentityFromContext(ctx)
	if ok {
		t.Error("expected ok=false for value of wrong type")
	}
}
