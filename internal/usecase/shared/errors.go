package shared

import (
	"raffle-engine/internal/infra"
	"raffle-engine/internal/pkg/errs"
)

// NotFoundAs turns a repository NOT_FOUND into the engine's NotFound kind.
// Other errors pass through unchanged.
func NotFoundAs(err error, what string) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrapf(err, "%s not found", what), errs.ErrNotFound)
	}
	return err
}
