package resolver

import (
	"context"
	"path/filepath"

	"github.com/gofrs/flock"

	"scentid/internal/fileutil"
	"scentid/internal/logging"
)

// lockName is the advisory lock file guarding concurrent applies against the
// same image directory.
const lockName = ".scentid.lock"

// Apply performs the plan's renames sequentially under a directory lock. Each
// failure is recorded on its entry and the batch continues; renames already
// applied are never rolled back. The error return covers only batch-level
// conditions (lock contention, cancellation).
func (r *Resolver) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || len(plan.Entries) == 0 {
		return nil
	}

	lock := flock.New(filepath.Join(plan.Dir, lockName))
	locked, err := lock.TryLock()
	if err != nil {
		return Wrap(ErrApply, "apply", "acquire directory lock", err)
	}
	if !locked {
		return Wrap(ErrLocked, "apply", "another apply is running against "+plan.Dir, nil)
	}
	defer func() { _ = lock.Unlock() }()

	for i := range plan.Entries {
		entry := &plan.Entries[i]
		if !entry.Renameable() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		src := filepath.Join(plan.Dir, entry.Source)
		dst := filepath.Join(plan.Dir, entry.Target)
		if err := fileutil.Rename(src, dst); err != nil {
			entry.ApplyError = err.Error()
			r.logger.Error("rename failed",
				logging.String("source", entry.Source),
				logging.String("target", entry.Target),
				logging.Error(err))
			continue
		}
		entry.Applied = true
		r.logger.Info("renamed",
			logging.String("source", entry.Source),
			logging.String("target", entry.Target))
	}

	r.logger.Info("apply finished",
		logging.String("dir", plan.Dir),
		logging.Int("applied", plan.Applied()),
		logging.Int("failed", plan.Failed()))
	return nil
}
