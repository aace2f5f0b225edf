package sync

import (
	"slices"

	"github.com/iudanet/carddavsync/internal/models"
)

// Plan расхождение удалённого списка и локального кэша одной коллекции
type Plan struct {
	Add       []models.RemoteElement // нет в кэше
	Update    []models.RemoteElement // расходится etag или last-modified
	Unchanged []string
	Delete    []string // есть только в кэше, по возрастанию
}

// Diff строит план прохода. Повторяющиеся id удалённого списка
// обрабатываются один раз, по первому вхождению.
func Diff(remote []models.RemoteElement, local map[string]models.SyncMeta) Plan {
	var plan Plan

	pending := make(map[string]struct{}, len(local))
	for id := range local {
		pending[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(remote))
	for _, e := range remote {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}

		meta, ok := local[e.ID]
		switch {
		case !ok:
			plan.Add = append(plan.Add, e)
		case !meta.Matches(e):
			plan.Update = append(plan.Update, e)
		default:
			plan.Unchanged = append(plan.Unchanged, e.ID)
		}
		delete(pending, e.ID)
	}

	for id := range pending {
		plan.Delete = append(plan.Delete, id)
	}
	slices.Sort(plan.Delete)

	return plan
}

// Empty сообщает, что кэш уже совпадает с сервером
func (p Plan) Empty() bool {
	return len(p.Add) == 0 && len(p.Update) == 0 && len(p.Delete) == 0
}
