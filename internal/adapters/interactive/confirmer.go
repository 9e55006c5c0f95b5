// Package interactive prompts the user on the terminal.
package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// Confirmer implements usecase.Confirmer with a y/N prompt. Signing moves
// funds; consent is never assumed, so non-interactive runs refuse unless
// the caller passed an explicit skip flag upstream.
type Confirmer struct {
	nonInteractive bool
}

// NewConfirmer creates a new terminal confirmer
func NewConfirmer(cfg *config.RuntimeConfig) *Confirmer {
	return &Confirmer{nonInteractive: cfg.NonInteractive}
}

// Confirm asks the user to approve the prompt.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.nonInteractive {
		return false, fmt.Errorf("confirmation required but running non-interactively (use --yes to skip)")
	}

	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	if _, err := p.Run(); err != nil {
		// promptui reports a declined confirm as ErrAbort
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

var _ usecase.Confirmer = (*Confirmer)(nil)
