package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habitual/internal/keyring"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store the API token in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored API token (masked)."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the API token from the OS keyring."`
	Status KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
}

// KeyringSetCmd stores the API bearer token in the OS keyring
type KeyringSetCmd struct {
	Token string `arg:"" help:"API bearer token."`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	if err := keyring.SetToken(cmd.Token); err != nil {
		return err
	}
	ctx.println("✓ API token stored in OS keyring")
	return nil
}

// KeyringGetCmd prints the stored token with all but the last characters masked
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *Context) error {
	token, err := keyring.GetToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API token found in keyring. Use 'habitual keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve API token from keyring: %w", err)
	}
	ctx.println(keyring.Mask(token))
	return nil
}

// KeyringDeleteCmd removes the API token from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API token found in keyring")
		}
		return err
	}
	ctx.println("✓ API token deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		ctx.println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}

	ctx.println("✓ OS keyring is available")
	if _, err := keyring.GetToken(); err == nil {
		ctx.println("✓ API token is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		ctx.println("ℹ No API token stored in keyring")
	}
	return nil
}
