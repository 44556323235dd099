package cli

import (
	"strings"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/habitual/internal/keyring"
)

func TestKeyringSetCmd(t *testing.T) {
	gokeyring.MockInit()
	defer func() { _ = keyring.DeleteToken() }()

	tests := []struct {
		name      string
		token     string
		want      string
		wantError bool
	}{
		{name: "plain token", token: "abc123def456", want: "abc123def456"},
		{name: "token is trimmed", token: "  tok-9876 \n", want: "tok-9876"},
		{name: "empty token", token: "   ", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newTestContext(nil)
			cmd := &KeyringSetCmd{Token: tt.token}

			err := cmd.Run(ctx)
			if (err != nil) != tt.wantError {
				t.Fatalf("KeyringSetCmd.Run() error = %v, wantError %v", err, tt.wantError)
			}
			if err != nil {
				return
			}

			stored, getErr := keyring.GetToken()
			if getErr != nil {
				t.Fatalf("Failed to retrieve stored token: %v", getErr)
			}
			if stored != tt.want {
				t.Errorf("Stored token = %q, want %q", stored, tt.want)
			}
			if !strings.Contains(out.String(), "stored") {
				t.Errorf("output = %q, want confirmation", out.String())
			}
		})
	}
}

func TestKeyringGetCmd(t *testing.T) {
	gokeyring.MockInit()
	defer func() { _ = keyring.DeleteToken() }()

	ctx, out := newTestContext(nil)

	// Nothing stored yet
	if err := (&KeyringGetCmd{}).Run(ctx); err == nil {
		t.Fatal("expected error when no token is stored")
	}

	if err := keyring.SetToken("secret-token-wxyz"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	if err := (&KeyringGetCmd{}).Run(ctx); err != nil {
		t.Fatalf("KeyringGetCmd.Run() error = %v", err)
	}

	got := strings.TrimSpace(out.String())
	if got != "*************wxyz" {
		t.Errorf("output = %q, want masked token", got)
	}
	if strings.Contains(got, "secret") {
		t.Error("token must not be printed in clear text")
	}
}

func TestKeyringDeleteCmd(t *testing.T) {
	gokeyring.MockInit()

	if err := keyring.SetToken("to-delete"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}

	ctx, _ := newTestContext(nil)
	if err := (&KeyringDeleteCmd{}).Run(ctx); err != nil {
		t.Fatalf("KeyringDeleteCmd.Run() error = %v", err)
	}
	if _, err := keyring.GetToken(); err != keyring.ErrNotFound {
		t.Errorf("GetToken() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting again reports that nothing is stored
	if err := (&KeyringDeleteCmd{}).Run(ctx); err == nil {
		t.Error("expected error deleting a missing token")
	}
}

func TestKeyringStatusCmd(t *testing.T) {
	gokeyring.MockInit()
	defer func() { _ = keyring.DeleteToken() }()

	ctx, out := newTestContext(nil)
	if err := (&KeyringStatusCmd{}).Run(ctx); err != nil {
		t.Fatalf("KeyringStatusCmd.Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "No API token stored") {
		t.Errorf("output = %q, want missing-token notice", out.String())
	}

	if err := keyring.SetToken("abc"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	out.Reset()
	if err := (&KeyringStatusCmd{}).Run(ctx); err != nil {
		t.Fatalf("KeyringStatusCmd.Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "API token is stored") {
		t.Errorf("output = %q, want stored-token notice", out.String())
	}
}
