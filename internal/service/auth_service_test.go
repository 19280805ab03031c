package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/auth"
	"github.com/arblack/trade-tracker/internal/testutil"
)

func TestAuthService_SignupAndLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("signup then login round-trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		user, token, err := svc.Signup(ctx, request.SignupRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "correct horse battery",
		})
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		if token == "" {
			t.Error("Signup returned empty token")
		}
		if user.IsAdmin {
			t.Error("New users must not be admins")
		}

		loggedIn, token, err := svc.Login(ctx, request.LoginRequest{
			Username: "alice",
			Password: "correct horse battery",
		})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if loggedIn.ID != user.ID {
			t.Errorf("Login returned wrong user: %s != %s", loggedIn.ID, user.ID)
		}

		resolved, err := svc.Authenticate(ctx, token)
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if resolved.ID != user.ID {
			t.Errorf("Token resolved to wrong user: %s != %s", resolved.ID, user.ID)
		}
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		req := request.SignupRequest{Username: "bob", Email: "bob@example.com", Password: "password123"}
		if _, _, err := svc.Signup(ctx, req); err != nil {
			t.Fatalf("First signup failed: %v", err)
		}

		_, _, err := svc.Signup(ctx, req)
		if !errors.Is(err, apperrors.ErrUsernameTaken) {
			t.Errorf("Expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("rejects wrong password and unknown user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		hash, err := auth.HashPassword("password123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		testutil.NewUser().WithUsername("carol").WithPasswordHash(hash).Build(t, db)

		_, _, err = svc.Login(ctx, request.LoginRequest{Username: "carol", Password: "wrong"})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
		}

		_, _, err = svc.Login(ctx, request.LoginRequest{Username: "nobody", Password: "password123"})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
		}
	})
}

func TestAuthService_Bans(t *testing.T) {
	ctx := context.Background()

	t.Run("banned user cannot log in", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		hash, err := auth.HashPassword("password123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		user := testutil.NewUser().WithUsername("dave").WithPasswordHash(hash).Build(t, db)

		if _, err := svc.BanUser(ctx, user.ID, request.BanUserRequest{Permanent: true}); err != nil {
			t.Fatalf("BanUser failed: %v", err)
		}

		_, _, err = svc.Login(ctx, request.LoginRequest{Username: "dave", Password: "password123"})
		if !errors.Is(err, apperrors.ErrUserBanned) {
			t.Errorf("Expected ErrUserBanned, got %v", err)
		}
	})

	t.Run("ban invalidates existing sessions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		_, token, err := svc.Signup(ctx, request.SignupRequest{
			Username: "erin", Email: "erin@example.com", Password: "password123",
		})
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}

		resolved, err := svc.Authenticate(ctx, token)
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}

		if _, err := svc.BanUser(ctx, resolved.ID, request.BanUserRequest{DurationHours: 24}); err != nil {
			t.Fatalf("BanUser failed: %v", err)
		}

		if _, err := svc.Authenticate(ctx, token); !errors.Is(err, apperrors.ErrUserBanned) {
			t.Errorf("Expected ErrUserBanned, got %v", err)
		}
	})

	t.Run("zero duration lifts a timed ban", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		hash, err := auth.HashPassword("password123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		user := testutil.NewUser().WithUsername("frank").WithPasswordHash(hash).Build(t, db)

		if _, err := svc.BanUser(ctx, user.ID, request.BanUserRequest{DurationHours: 24}); err != nil {
			t.Fatalf("BanUser failed: %v", err)
		}
		if _, err := svc.BanUser(ctx, user.ID, request.BanUserRequest{}); err != nil {
			t.Fatalf("Unban failed: %v", err)
		}

		if _, _, err := svc.Login(ctx, request.LoginRequest{Username: "frank", Password: "password123"}); err != nil {
			t.Errorf("Expected login to succeed after unban, got %v", err)
		}
	})

	t.Run("listing reports ban state", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		banned := testutil.NewUser().WithUsername("a_banned").Build(t, db)
		testutil.NewUser().WithUsername("b_free").Build(t, db)

		if _, err := svc.BanUser(ctx, banned.ID, request.BanUserRequest{Permanent: true}); err != nil {
			t.Fatalf("BanUser failed: %v", err)
		}

		users, err := svc.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("Expected 2 users, got %d", len(users))
		}
		if !users[0].Banned || !users[0].Permanent {
			t.Errorf("Expected first user banned permanently: %+v", users[0])
		}
		if users[1].Banned {
			t.Errorf("Expected second user not banned: %+v", users[1])
		}
	})
}
