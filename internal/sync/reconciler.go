package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/carddavsync/internal/carddav"
	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
	"github.com/iudanet/carddavsync/internal/vcf"
)

// Result итог прохода синхронизации одной коллекции
type Result struct {
	Failed    []string // id ресурсов, пропущенных из-за сетевой ошибки
	Added     int
	Updated   int
	Deleted   int
	Unchanged int
	Skipped   int // пустые тела
	AnyChange bool
	Clean     bool // проход завершён без ошибок соединения
}

// Reconciler синхронизирует одну коллекцию.
// Не допускает параллельных вызовов: их сериализует Manager.
type Reconciler struct {
	collection *models.Collection
	remote     Remote
	store      storage.ContactStorage
	logger     *slog.Logger
}

// NewReconciler creates a reconciler for one collection
func NewReconciler(collection *models.Collection, remote Remote, store storage.ContactStorage, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		collection: collection,
		remote:     remote,
		store:      store,
		logger:     logger.With("collection_id", collection.ID),
	}
}

// Synchronize приводит локальный кэш к состоянию сервера.
//  1. Проверка доступности, при отказе кэш не трогается
//  2. Снимок: список ресурсов без тел и локальные change-токены
//  3. Add/Update с загрузкой тел
//  4. Удаление записей, которых нет на сервере
//
// Ошибка списка прерывает проход до любых изменений кэша.
// Отмена ctx проверяется между ресурсами, удаление при отмене не выполняется.
func (r *Reconciler) Synchronize(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if !r.remote.CheckConnection(ctx) {
		return result, ErrConnectionFailure
	}

	elements, err := r.remote.List(ctx, false)
	if err != nil {
		return result, fmt.Errorf("failed to list remote resources: %w", err)
	}

	local, err := r.store.ListMetadata(ctx, r.collection.ID)
	if err != nil {
		return result, fmt.Errorf("failed to load local metadata: %w", err)
	}

	plan := Diff(elements, local)
	result.Clean = true
	result.Unchanged = len(plan.Unchanged)

	r.logger.Info("Starting synchronization",
		"remote", len(elements),
		"local", len(local),
		"add", len(plan.Add),
		"update", len(plan.Update),
		"delete", len(plan.Delete),
	)

	for _, e := range plan.Add {
		if err := ctx.Err(); err != nil {
			return r.finish(result), err
		}
		stored, err := r.apply(ctx, e, result)
		if err != nil {
			return r.finish(result), err
		}
		if stored {
			result.Added++
		}
	}

	for _, e := range plan.Update {
		if err := ctx.Err(); err != nil {
			return r.finish(result), err
		}
		stored, err := r.apply(ctx, e, result)
		if err != nil {
			return r.finish(result), err
		}
		if stored {
			result.Updated++
		}
	}

	for _, id := range plan.Delete {
		if err := ctx.Err(); err != nil {
			return r.finish(result), err
		}
		if err := r.store.Delete(ctx, r.collection.ID, id); err != nil {
			return r.finish(result), fmt.Errorf("failed to delete %s: %w", id, err)
		}
		r.logger.Debug("Contact removed", "resource_id", id)
		result.Deleted++
	}

	r.finish(result)
	r.logger.Info("Synchronization completed",
		"added", result.Added,
		"updated", result.Updated,
		"deleted", result.Deleted,
		"unchanged", result.Unchanged,
		"skipped", result.Skipped,
		"failed", len(result.Failed),
		"clean", result.Clean,
	)
	return result, nil
}

func (r *Reconciler) finish(result *Result) *Result {
	result.AnyChange = result.Added+result.Updated+result.Deleted > 0
	return result
}

// apply загружает тело и сохраняет запись. Сетевая ошибка по ресурсу
// не прерывает проход: ресурс попадает в Failed, проход становится не чистым.
// Ошибка хранилища прерывает проход.
func (r *Reconciler) apply(ctx context.Context, e models.RemoteElement, result *Result) (bool, error) {
	c, err := r.fetch(ctx, e)
	switch {
	case errors.Is(err, carddav.ErrConnection):
		r.logger.Warn("Failed to fetch contact", "resource_id", e.ID, "error", err)
		result.Failed = append(result.Failed, e.ID)
		result.Clean = false
		return false, nil
	case err != nil:
		return false, err
	case c == nil:
		r.logger.Warn("Server returned empty body, skipping", "resource_id", e.ID)
		result.Skipped++
		return false, nil
	}

	if err := r.store.Upsert(ctx, c); err != nil {
		return false, fmt.Errorf("failed to store %s: %w", e.ID, err)
	}
	return true, nil
}

// fetch собирает запись кэша из удалённого элемента, догружая тело при
// необходимости. Возвращает nil без ошибки для пустого тела.
func (r *Reconciler) fetch(ctx context.Context, e models.RemoteElement) (*models.Contact, error) {
	body := e.VCard
	if body == "" {
		// запрос по ресурсу доводится до конца даже при отмене прохода
		doc, err := r.remote.Read(context.WithoutCancel(ctx), e.ID)
		if err != nil {
			return nil, err
		}
		body = doc
	}
	if body == "" {
		return nil, nil
	}

	index, err := vcf.Extract(body)
	if err != nil {
		// документ непрозрачен для синхронизации, храним без индекса
		r.logger.Warn("Failed to extract index fields", "resource_id", e.ID, "error", err)
	}

	return &models.Contact{
		CollectionID: r.collection.ID,
		ResourceID:   e.ID,
		ETag:         e.ETag,
		LastModified: e.LastModified,
		VCard:        body,
		Index:        index,
	}, nil
}

// PushCreate создаёт ресурс на сервере и затем кэширует его.
// Возвращает LocalID новой записи.
func (r *Reconciler) PushCreate(ctx context.Context, document string) (int64, error) {
	if r.collection.ReadOnly {
		return 0, ErrReadOnly
	}

	id, err := r.remote.Create(ctx, document)
	if err != nil {
		return 0, fmt.Errorf("failed to create remote contact: %w", err)
	}
	r.logger.Info("Contact created on server", "resource_id", id)

	stored, err := r.resync(ctx, []string{id})
	if err != nil {
		return 0, fmt.Errorf("contact %s created but not cached: %w", id, err)
	}
	c, ok := stored[id]
	if !ok {
		return 0, fmt.Errorf("contact %s created but not visible: %w", id, storage.ErrContactNotFound)
	}
	return c.LocalID, nil
}

// PushUpdate перезаписывает ресурс на сервере и затем обновляет кэш
func (r *Reconciler) PushUpdate(ctx context.Context, localID int64, document string) error {
	if r.collection.ReadOnly {
		return ErrReadOnly
	}

	c, err := r.store.GetContactByLocalID(ctx, r.collection.ID, localID)
	if err != nil {
		return fmt.Errorf("failed to find contact %d: %w", localID, err)
	}

	if err := r.remote.Update(ctx, c.ResourceID, document); err != nil {
		return fmt.Errorf("failed to update remote contact: %w", err)
	}
	r.logger.Info("Contact updated on server", "resource_id", c.ResourceID)

	if _, err := r.resync(ctx, []string{c.ResourceID}); err != nil {
		// сервер уже принял запись, кэш догонит на следующем проходе
		r.logger.Warn("Failed to refresh cache after update", "resource_id", c.ResourceID, "error", err)
	}
	return nil
}

// PushDelete удаляет ресурсы на сервере и затем из кэша.
// Возвращает число удалённых. Ошибки отдельных ресурсов объединяются,
// их записи в кэше остаются.
func (r *Reconciler) PushDelete(ctx context.Context, localIDs []int64) (int, error) {
	if r.collection.ReadOnly {
		return 0, ErrReadOnly
	}

	var (
		errs    []error
		deleted []string
	)
	for _, localID := range localIDs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		c, err := r.store.GetContactByLocalID(ctx, r.collection.ID, localID)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to find contact %d: %w", localID, err))
			continue
		}

		err = r.remote.Delete(context.WithoutCancel(ctx), c.ResourceID)
		if err != nil && !carddav.IsNotFound(err) {
			errs = append(errs, fmt.Errorf("failed to delete remote contact %d: %w", localID, err))
			continue
		}
		deleted = append(deleted, c.ResourceID)
	}

	if len(deleted) > 0 {
		if _, err := r.resync(context.WithoutCancel(ctx), deleted); err != nil {
			r.logger.Warn("Failed to verify deletion, removing from cache", "error", err)
			for _, id := range deleted {
				if err := r.store.Delete(ctx, r.collection.ID, id); err != nil {
					errs = append(errs, fmt.Errorf("failed to delete %s from cache: %w", id, err))
				}
			}
		}
		r.logger.Info("Contacts deleted on server", "count", len(deleted))
	}

	return len(deleted), errors.Join(errs...)
}

// resync повторяет шаги сравнения и удаления только для указанных ресурсов.
// Если сервер отклоняет addressbook-multiget, используется полный список,
// отфильтрованный по id.
func (r *Reconciler) resync(ctx context.Context, ids []string) (map[string]*models.Contact, error) {
	elements, err := r.remote.MultiGet(ctx, ids)
	var statusErr *carddav.StatusError
	if errors.As(err, &statusErr) {
		r.logger.Debug("Multiget rejected, falling back to full listing", "status", statusErr.StatusCode)
		elements, err = r.remote.List(ctx, false)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to refresh resources: %w", err)
	}

	byID := make(map[string]models.RemoteElement, len(elements))
	for _, e := range elements {
		byID[e.ID] = e
	}

	stored := make(map[string]*models.Contact, len(ids))
	for _, id := range ids {
		e, ok := byID[id]
		if !ok {
			if err := r.store.Delete(ctx, r.collection.ID, id); err != nil {
				return stored, fmt.Errorf("failed to delete %s: %w", id, err)
			}
			continue
		}

		c, err := r.fetch(ctx, e)
		if err != nil {
			return stored, err
		}
		if c == nil {
			continue
		}
		if err := r.store.Upsert(ctx, c); err != nil {
			return stored, fmt.Errorf("failed to store %s: %w", id, err)
		}
		stored[id] = c
	}
	return stored, nil
}
