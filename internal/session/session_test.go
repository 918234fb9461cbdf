package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"

	"basobasFront/internal/models"
	"basobasFront/internal/storage"
)

func TestCheckDecisions(t *testing.T) {
	cases := []struct {
		name     string
		sess     models.Session
		required string
		want     Decision
	}{
		{"no token", models.Session{}, models.RoleUser, Unauthenticated},
		{"user on user route", models.Session{Token: "t", Role: models.RoleUser}, models.RoleUser, Authorized},
		{"user on admin route", models.Session{Token: "t", Role: models.RoleUser}, models.RoleAdmin, Forbidden},
		{"admin on admin route", models.Session{Token: "t", Role: models.RoleAdmin}, models.RoleAdmin, Authorized},
		{"admin on user route", models.Session{Token: "t", Role: models.RoleAdmin}, models.RoleUser, Authorized},
		{"token without role on user route", models.Session{Token: "t"}, models.RoleUser, Authorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Check(tc.sess, tc.required); got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}

func TestStoreRoundTripAndMalformed(t *testing.T) {
	kv := storage.NewMemoryStore()
	store := NewStore(kv)
	ctx := context.Background()

	// Never written: logged out, no error.
	sess, err := store.Load(ctx, "dev")
	if err != nil || sess.LoggedIn() {
		t.Fatalf("expected logged-out session, got %+v err=%v", sess, err)
	}

	want := models.Session{UserID: "u1", Name: "Anita", Role: models.RoleAdmin, Token: "tok"}
	if err := store.Save(ctx, "dev", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	sess, err = store.Load(ctx, "dev")
	if err != nil || sess != want {
		t.Fatalf("Load: %+v err=%v", sess, err)
	}

	// Corrupt payloads read as logged out, never error.
	kv.Set(ctx, "session/dev", []byte("garbage"))
	sess, err = store.Load(ctx, "dev")
	if err != nil || sess.LoggedIn() {
		t.Fatalf("malformed session should read as logged out, got %+v err=%v", sess, err)
	}

	if err := store.Clear(ctx, "dev"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
}

func TestHydrateFromToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: "u42",
		Role:   models.RoleAdmin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	sess := Hydrate(models.Session{Token: signed})
	if sess.UserID != "u42" || sess.Role != models.RoleAdmin {
		t.Fatalf("hydrate missed claims: %+v", sess)
	}

	// Existing fields win over token claims.
	sess = Hydrate(models.Session{Token: signed, UserID: "u1", Role: models.RoleUser})
	if sess.UserID != "u1" || sess.Role != models.RoleUser {
		t.Fatalf("hydrate overwrote fields: %+v", sess)
	}

	// Opaque (non-JWT) tokens stay usable; identity just stays empty.
	sess = Hydrate(models.Session{Token: "opaque"})
	if !sess.LoggedIn() || sess.UserID != "" {
		t.Fatalf("opaque token mishandled: %+v", sess)
	}
}
