package cli

import (
	"context"
	"fmt"

	csync "github.com/iudanet/carddavsync/internal/sync"
)

// Sync синхронизирует одну коллекцию текущего пользователя
func (c *Cli) Sync(ctx context.Context, collectionID string) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	col, err := c.ownedCollection(ctx, collectionID)
	if err != nil {
		return err
	}

	c.io.Printf("Synchronizing %s...\n", col.Label)

	result, err := c.manager.SynchronizeCollection(ctx, col.ID)
	if err != nil {
		return fmt.Errorf("synchronization failed (%s): %w", csync.ErrorKind(err), err)
	}

	c.io.Println()
	if result.Clean {
		c.io.Println("✓ Synchronization completed successfully!")
	} else {
		c.io.Println("! Synchronization finished with connection errors")
	}
	c.io.Println()
	c.printResult(result)

	if !result.Clean {
		return fmt.Errorf("%w: %d contact(s) could not be fetched", ErrIncomplete, len(result.Failed))
	}
	return nil
}

// SyncUser синхронизирует все коллекции текущего пользователя
func (c *Cli) SyncUser(ctx context.Context) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()

	results, err := c.manager.SynchronizeAllCollectionsForUser(ctx, c.userID)
	return c.reportMany(results, err)
}

// SyncAll проход по всем коллекциям всех пользователей
func (c *Cli) SyncAll(ctx context.Context) error {
	c.io.Println("=== Sweep ===")
	c.io.Println()

	results, err := c.manager.SynchronizeAll(ctx)
	return c.reportMany(results, err)
}

func (c *Cli) reportMany(results []csync.CollectionResult, err error) error {
	if err != nil && results == nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if len(results) == 0 {
		c.io.Println("No collections to synchronize.")
		return err
	}

	failed := 0
	for _, r := range results {
		label := r.Collection.Label
		switch {
		case r.Err != nil:
			failed++
			c.io.Printf("✗ %s: %s error: %v\n", label, csync.ErrorKind(r.Err), r.Err)
		case r.Result != nil && !r.Result.Clean:
			failed++
			c.io.Printf("! %s: incomplete, %d contact(s) not fetched\n", label, len(r.Result.Failed))
		default:
			c.io.Printf("✓ %s\n", label)
		}
		if r.Result != nil {
			c.printResult(r.Result)
		}
		c.io.Println()
	}

	if err != nil {
		return fmt.Errorf("synchronization interrupted: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d collection(s)", ErrIncomplete, failed, len(results))
	}
	c.io.Printf("All %d collection(s) are synchronized.\n", len(results))
	return nil
}

func (c *Cli) printResult(r *csync.Result) {
	c.io.Printf("Added:     %d\n", r.Added)
	c.io.Printf("Updated:   %d\n", r.Updated)
	c.io.Printf("Deleted:   %d\n", r.Deleted)
	c.io.Printf("Unchanged: %d\n", r.Unchanged)
	if r.Skipped > 0 {
		c.io.Printf("Skipped (empty): %d\n", r.Skipped)
	}
	if len(r.Failed) > 0 {
		c.io.Printf("Failed:    %d\n", len(r.Failed))
	}
}
